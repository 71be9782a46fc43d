package market

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"
	"sort"
	"strings"
	"sync"
	"time"

	"auction-market/internal/chain"
	"auction-market/internal/marketerrors"
	"auction-market/internal/models"
	"auction-market/internal/repository"
	"auction-market/utils"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=market_service.go -destination=mock_chain.go -package=market

// ChainReader is the read-only view of the auction contracts
type ChainReader interface {
	AuctionAddresses(ctx context.Context) ([]common.Address, error)
	AuctionRecord(ctx context.Context, addr common.Address) (models.AuctionRecord, error)
	Leader(ctx context.Context, addr common.Address) (*models.Leader, error)
	RevealedBids(ctx context.Context, addr common.Address) ([]models.RevealedBid, error)
	Winner(ctx context.Context, addr common.Address) (common.Address, error)
	BidHistory(ctx context.Context, addr common.Address, fromBlock, toBlock *uint64) ([]models.Bid, error)
	RegistryMetadata(ctx context.Context, addr common.Address) (models.Metadata, error)
}

// ChainWriter submits signed transactions and waits for one confirmation
type ChainWriter interface {
	CreateAuction(ctx context.Context, item string, duration time.Duration) (models.CreatedAuction, error)
	PlaceBid(ctx context.Context, addr common.Address, encodedBid string) (models.TxResult, error)
	RevealBid(ctx context.Context, addr common.Address, scaledAmount *big.Int) (models.TxResult, error)
	Finalize(ctx context.Context, addr common.Address) (models.TxResult, error)
	MirrorMetadata(ctx context.Context, addr common.Address, md models.Metadata) (models.TxResult, error)
}

// Options tunes the read retry policy and phase derivation
type Options struct {
	ReadRetries      int
	ReadRetryDelay   time.Duration
	RevealWindow     time.Duration
	MirrorTimeout    time.Duration
	MaxParallelReads int
	Now              func() time.Time
}

// DefaultOptions mirrors the behaviour of the web client: 5 attempts 1.2s apart.
func DefaultOptions() Options {
	return Options{
		ReadRetries:      5,
		ReadRetryDelay:   1200 * time.Millisecond,
		RevealWindow:     time.Hour,
		MirrorTimeout:    30 * time.Second,
		MaxParallelReads: 8,
		Now:              time.Now,
	}
}

// errNotIndexed marks a factory-listed auction the RPC node cannot read yet.
// Unlike ErrAuctionNotFound it is retried.
var errNotIndexed = errors.New("listed auction not indexed yet")

// maxDurationSeconds keeps the duration representable as a time.Duration
const maxDurationSeconds = float64(math.MaxInt64 / int64(time.Second))

// CreateAuctionInput carries what a seller fills in to open an auction
type CreateAuctionInput struct {
	Title         string
	DurationHours float64
	ImageURL      string
	Description   string
}

// MarketService reconciles on-chain auction state with the local metadata cache
type MarketService struct {
	reader ChainReader
	writer ChainWriter
	store  repository.MetadataStore
	opts   Options
	phases *PhaseTracker

	mirrors sync.WaitGroup
}

// NewMarketService creates a new MarketService instance. writer may be nil
// for a read-only deployment; writes then fail with ErrWalletMissing.
func NewMarketService(reader ChainReader, writer ChainWriter, store repository.MetadataStore, opts Options) *MarketService {
	defaults := DefaultOptions()
	if opts.ReadRetries <= 0 {
		opts.ReadRetries = defaults.ReadRetries
	}
	if opts.ReadRetryDelay < 0 {
		opts.ReadRetryDelay = 0
	}
	if opts.MirrorTimeout <= 0 {
		opts.MirrorTimeout = defaults.MirrorTimeout
	}
	if opts.MaxParallelReads <= 0 {
		opts.MaxParallelReads = defaults.MaxParallelReads
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &MarketService{
		reader: reader,
		writer: writer,
		store:  store,
		opts:   opts,
		phases: NewPhaseTracker(),
	}
}

// ListAuctions reads every auction from the factory, sorted by end time.
// When all attempts fail it serves the last cached list with Stale set.
func (s *MarketService) ListAuctions(ctx context.Context) (models.AuctionList, error) {
	var auctions []models.Auction
	err := retryRead(ctx, s.opts.ReadRetries, s.opts.ReadRetryDelay, "list auctions", func(ctx context.Context) error {
		list, err := s.fetchAuctions(ctx)
		if err != nil {
			return err
		}
		auctions = list
		return nil
	})

	now := s.opts.Now().UTC()
	if err == nil {
		if saveErr := s.store.SaveAuctionList(ctx, auctions); saveErr != nil {
			utils.Warn("service: failed to cache auction list", map[string]any{"error": saveErr.Error()})
		}
		return models.AuctionList{Auctions: auctions, FetchedAt: now}, nil
	}

	cached, cacheErr := s.store.LoadAuctionList(ctx)
	if cacheErr != nil {
		return models.AuctionList{}, fmt.Errorf("service: failed to list auctions: %w", err)
	}

	utils.Warn("service: serving cached auction list", map[string]any{
		"count": len(cached),
		"error": err.Error(),
	})
	for i := range cached {
		cached[i].Phase = s.observePhase(cached[i].Address, cached[i].EndTime, cached[i].Ended)
		cached[i].Stale = true
	}
	return models.AuctionList{Auctions: cached, Stale: true, FetchedAt: now}, nil
}

// GetAuction returns one auction with its leader and, once ended, its winner.
func (s *MarketService) GetAuction(ctx context.Context, addr common.Address) (models.Auction, error) {
	var auction models.Auction
	err := retryRead(ctx, s.opts.ReadRetries, s.opts.ReadRetryDelay, "get auction "+addr.Hex(), func(ctx context.Context) error {
		a, err := s.fetchAuctionDetail(ctx, addr)
		if err != nil {
			return err
		}
		auction = a
		return nil
	})
	if err == nil {
		return auction, nil
	}
	if errors.Is(err, marketerrors.ErrAuctionNotFound) {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", addr.Hex(), err)
	}

	cached, cacheErr := s.cachedAuction(ctx, addr)
	if cacheErr != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", addr.Hex(), err)
	}
	utils.Warn("service: serving cached auction", map[string]any{"address": addr.Hex(), "error": err.Error()})
	return cached, nil
}

// BidHistory returns the submitted bids of an auction, newest first.
func (s *MarketService) BidHistory(ctx context.Context, addr common.Address) ([]models.Bid, error) {
	var bids []models.Bid
	err := retryRead(ctx, s.opts.ReadRetries, s.opts.ReadRetryDelay, "bid history "+addr.Hex(), func(ctx context.Context) error {
		b, err := s.reader.BidHistory(ctx, addr, nil, nil)
		if err != nil {
			return err
		}
		bids = b
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bid history for %s: %w", addr.Hex(), err)
	}
	return bids, nil
}

// CreateAuction opens an auction through the factory and stores its metadata.
func (s *MarketService) CreateAuction(ctx context.Context, in CreateAuctionInput) (models.Auction, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty title", marketerrors.ErrInvalidAuction)
	}
	if math.IsNaN(in.DurationHours) || math.IsInf(in.DurationHours, 0) || in.DurationHours <= 0 {
		return models.Auction{}, fmt.Errorf("service: %w - duration must be a positive number of hours", marketerrors.ErrInvalidAuction)
	}
	if in.DurationHours*3600 > maxDurationSeconds {
		return models.Auction{}, fmt.Errorf("service: %w - duration of %g hours is too long", marketerrors.ErrInvalidAuction, in.DurationHours)
	}
	if s.writer == nil {
		return models.Auction{}, fmt.Errorf("service: create auction: %w", marketerrors.ErrWalletMissing)
	}

	seconds := int64(math.Floor(in.DurationHours * 3600))
	if seconds < 1 {
		seconds = 1
	}
	duration := time.Duration(seconds) * time.Second

	created, err := s.writer.CreateAuction(ctx, title, duration)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction %q: %w", title, err)
	}

	endTime := created.EndTime
	if endTime.IsZero() {
		endTime = s.opts.Now().Add(duration).UTC()
	}
	item := created.Item
	if item == "" {
		item = title
	}

	md, err := s.SetMetadata(ctx, created.Address, models.Metadata{
		Title:       title,
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Description: strings.TrimSpace(in.Description),
	})
	if err != nil {
		// the auction exists on-chain regardless; metadata can be re-sent later
		utils.Warn("service: failed to store metadata for new auction", map[string]any{
			"address": created.Address.Hex(),
			"error":   err.Error(),
		})
	}

	return models.Auction{
		Address:     created.Address,
		Item:        item,
		Title:       title,
		ImageURL:    md.ImageURL,
		Description: md.Description,
		EndTime:     endTime,
		EndTimeMs:   endTime.UnixMilli(),
		Phase:       s.observePhase(created.Address, endTime, false),
	}, nil
}

// PlaceBid encodes amountEth and submits it while the auction is in Bidding.
func (s *MarketService) PlaceBid(ctx context.Context, addr common.Address, amountEth string) (models.TxResult, error) {
	encoded, err := chain.EncodeBid(amountEth)
	if err != nil {
		return models.TxResult{}, fmt.Errorf("service: %w", err)
	}
	if s.writer == nil {
		return models.TxResult{}, fmt.Errorf("service: place bid: %w", marketerrors.ErrWalletMissing)
	}

	phase, _, err := s.currentPhase(ctx, addr)
	if err != nil {
		return models.TxResult{}, err
	}
	if phase != models.PhaseBidding {
		return models.TxResult{}, fmt.Errorf("service: %w - auction %s is in %s phase", marketerrors.ErrAuctionClosed, addr.Hex(), phase)
	}

	res, err := s.writer.PlaceBid(ctx, addr, encoded)
	if err != nil {
		return models.TxResult{}, fmt.Errorf("service: failed to place bid on %s: %w", addr.Hex(), err)
	}
	return res, nil
}

// RevealBid discloses the signer's bid amount during the Reveal phase.
func (s *MarketService) RevealBid(ctx context.Context, addr common.Address, amountEth string) (models.TxResult, error) {
	scaled, err := chain.ScaleAmount(amountEth)
	if err != nil {
		return models.TxResult{}, fmt.Errorf("service: %w", err)
	}
	if s.writer == nil {
		return models.TxResult{}, fmt.Errorf("service: reveal bid: %w", marketerrors.ErrWalletMissing)
	}

	phase, _, err := s.currentPhase(ctx, addr)
	if err != nil {
		return models.TxResult{}, err
	}
	if phase != models.PhaseReveal {
		return models.TxResult{}, fmt.Errorf("service: %w - auction %s is in %s phase", marketerrors.ErrNotRevealPhase, addr.Hex(), phase)
	}

	res, err := s.writer.RevealBid(ctx, addr, scaled)
	if err != nil {
		return models.TxResult{}, fmt.Errorf("service: failed to reveal bid on %s: %w", addr.Hex(), err)
	}
	return res, nil
}

// Finalize closes an auction whose bidding time is over.
func (s *MarketService) Finalize(ctx context.Context, addr common.Address) (models.TxResult, error) {
	if s.writer == nil {
		return models.TxResult{}, fmt.Errorf("service: finalize: %w", marketerrors.ErrWalletMissing)
	}

	phase, rec, err := s.currentPhase(ctx, addr)
	if err != nil {
		return models.TxResult{}, err
	}
	if rec.Ended {
		return models.TxResult{}, fmt.Errorf("service: %w - auction %s", marketerrors.ErrAlreadyFinalized, addr.Hex())
	}
	if phase == models.PhaseBidding {
		return models.TxResult{}, fmt.Errorf("service: %w - auction %s ends at %s", marketerrors.ErrAuctionActive, addr.Hex(), rec.EndTime.Format(time.RFC3339))
	}

	res, err := s.writer.Finalize(ctx, addr)
	if err != nil {
		return models.TxResult{}, fmt.Errorf("service: failed to finalize %s: %w", addr.Hex(), err)
	}
	s.phases.Observe(addr, models.PhaseClosed)
	return res, nil
}

// RevealAndFinalize reveals the signer's bid and then finalizes the auction.
// Each step waits for its confirmation; a failed reveal skips finalize.
func (s *MarketService) RevealAndFinalize(ctx context.Context, addr common.Address, amountEth string) ([]models.TxResult, error) {
	reveal, err := s.RevealBid(ctx, addr, amountEth)
	if err != nil {
		return nil, err
	}

	final, err := s.Finalize(ctx, addr)
	if err != nil {
		return []models.TxResult{reveal}, err
	}
	return []models.TxResult{reveal, final}, nil
}

// GetMetadata returns the local metadata, falling back to the registry
// contract and back-filling the local cache on a hit.
func (s *MarketService) GetMetadata(ctx context.Context, addr common.Address) (models.Metadata, error) {
	md, err := s.store.GetMetadata(ctx, addr)
	if err == nil {
		return md, nil
	}
	if !errors.Is(err, marketerrors.ErrMetadataNotFound) {
		return models.Metadata{}, fmt.Errorf("service: failed to get metadata for %s: %w", addr.Hex(), err)
	}

	remote, rerr := s.reader.RegistryMetadata(ctx, addr)
	if rerr != nil {
		if !errors.Is(rerr, marketerrors.ErrRegistryDisabled) && !errors.Is(rerr, marketerrors.ErrMetadataNotFound) {
			utils.Warn("service: registry metadata read failed", map[string]any{"address": addr.Hex(), "error": rerr.Error()})
		}
		return models.Metadata{}, fmt.Errorf("service: failed to get metadata for %s: %w", addr.Hex(), err)
	}

	remote.UpdatedAt = s.opts.Now().UTC()
	if err := s.store.SetMetadata(ctx, addr, remote); err != nil {
		utils.Warn("service: failed to back-fill metadata", map[string]any{"address": addr.Hex(), "error": err.Error()})
	}
	return remote, nil
}

// SetMetadata writes metadata locally and mirrors it to the registry in the
// background. The result depends only on the local write.
func (s *MarketService) SetMetadata(ctx context.Context, addr common.Address, md models.Metadata) (models.Metadata, error) {
	md.UpdatedAt = s.opts.Now().UTC()
	if err := s.store.SetMetadata(ctx, addr, md); err != nil {
		return models.Metadata{}, fmt.Errorf("service: failed to set metadata for %s: %w", addr.Hex(), err)
	}

	s.mirror(addr, md)
	return md, nil
}

// Wait blocks until every background registry mirror has finished.
func (s *MarketService) Wait() {
	s.mirrors.Wait()
}

func (s *MarketService) mirror(addr common.Address, md models.Metadata) {
	if s.writer == nil {
		return
	}

	s.mirrors.Add(1)
	go func() {
		defer s.mirrors.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.opts.MirrorTimeout)
		defer cancel()

		res, err := s.writer.MirrorMetadata(ctx, addr, md)
		switch {
		case errors.Is(err, marketerrors.ErrRegistryDisabled):
			utils.Debug("service: registry disabled, metadata kept local", map[string]any{"address": addr.Hex()})
		case err != nil:
			utils.Warn("service: registry mirror failed", map[string]any{"address": addr.Hex(), "error": err.Error()})
		default:
			utils.Info("service: metadata mirrored to registry", map[string]any{"address": addr.Hex(), "tx": res.TxHash.Hex()})
		}
	}()
}

func (s *MarketService) fetchAuctions(ctx context.Context) ([]models.Auction, error) {
	addrs, err := s.reader.AuctionAddresses(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]models.Auction, len(addrs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.MaxParallelReads)
	for i, addr := range addrs {
		i, addr := i, addr
		g.Go(func() error {
			rec, err := s.reader.AuctionRecord(gctx, addr)
			if errors.Is(err, marketerrors.ErrAuctionNotFound) {
				// the factory lists it, so the node just hasn't caught up
				return fmt.Errorf("auction %s: %w (%v)", addr.Hex(), errNotIndexed, err)
			}
			if err != nil {
				return err
			}
			results[i] = s.buildAuction(gctx, rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].EndTime.Before(results[j].EndTime) })
	return results, nil
}

func (s *MarketService) fetchAuctionDetail(ctx context.Context, addr common.Address) (models.Auction, error) {
	rec, err := s.reader.AuctionRecord(ctx, addr)
	if err != nil {
		return models.Auction{}, err
	}
	auction := s.buildAuction(ctx, rec)

	leader, err := s.leader(ctx, addr)
	if err != nil {
		return models.Auction{}, err
	}
	auction.Leader = leader

	if rec.Ended {
		winner, err := s.reader.Winner(ctx, addr)
		if err != nil {
			return models.Auction{}, err
		}
		if winner == (common.Address{}) && leader != nil {
			winner = leader.Bidder
		}
		if winner != (common.Address{}) {
			auction.Winner = &winner
		}
	}
	return auction, nil
}

// leader prefers the contract's own view and falls back to the reveal log.
func (s *MarketService) leader(ctx context.Context, addr common.Address) (*models.Leader, error) {
	leader, err := s.reader.Leader(ctx, addr)
	if err == nil {
		return leader, nil
	}
	utils.Debug("service: leader read failed, computing from reveals", map[string]any{"address": addr.Hex(), "error": err.Error()})

	revealed, rerr := s.reader.RevealedBids(ctx, addr)
	if rerr != nil {
		return nil, fmt.Errorf("leader: %w", errors.Join(err, rerr))
	}
	return ComputeLeader(revealed), nil
}

func (s *MarketService) buildAuction(ctx context.Context, rec models.AuctionRecord) models.Auction {
	auction := models.Auction{
		Address:   rec.Address,
		Item:      rec.Item,
		Title:     rec.Item,
		EndTime:   rec.EndTime,
		EndTimeMs: rec.EndTime.UnixMilli(),
		Ended:     rec.Ended,
		Phase:     s.observePhase(rec.Address, rec.EndTime, rec.Ended),
	}

	if md, err := s.store.GetMetadata(ctx, rec.Address); err == nil {
		if md.Title != "" {
			auction.Title = md.Title
		}
		auction.ImageURL = md.ImageURL
		auction.Description = md.Description
	}
	return auction
}

// currentPhase reads the auction record with retries and derives its phase.
func (s *MarketService) currentPhase(ctx context.Context, addr common.Address) (models.Phase, models.AuctionRecord, error) {
	var rec models.AuctionRecord
	err := retryRead(ctx, s.opts.ReadRetries, s.opts.ReadRetryDelay, "read auction "+addr.Hex(), func(ctx context.Context) error {
		r, err := s.reader.AuctionRecord(ctx, addr)
		if err != nil {
			return err
		}
		rec = r
		return nil
	})
	if err != nil {
		return 0, models.AuctionRecord{}, fmt.Errorf("service: failed to read auction %s: %w", addr.Hex(), err)
	}
	return s.observePhase(addr, rec.EndTime, rec.Ended), rec, nil
}

func (s *MarketService) observePhase(addr common.Address, endTime time.Time, ended bool) models.Phase {
	return s.phases.Observe(addr, DerivePhase(s.opts.Now(), endTime, s.opts.RevealWindow, ended))
}

func (s *MarketService) cachedAuction(ctx context.Context, addr common.Address) (models.Auction, error) {
	cached, err := s.store.LoadAuctionList(ctx)
	if err != nil {
		return models.Auction{}, err
	}
	for _, a := range cached {
		if a.Address == addr {
			a.Phase = s.observePhase(a.Address, a.EndTime, a.Ended)
			a.Stale = true
			return a, nil
		}
	}
	return models.Auction{}, fmt.Errorf("cached auction %s: %w", addr.Hex(), marketerrors.ErrAuctionNotFound)
}
