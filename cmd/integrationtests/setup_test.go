package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"auction-market/internal/chain"
	market "auction-market/internal/marketService"
	"auction-market/internal/marketerrors"
	"auction-market/internal/models"
	"auction-market/internal/repository"
	"auction-market/internal/server"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gin-gonic/gin"
)

var signer = common.HexToAddress("0x0000000000000000000000000000000000005e11")

type fakeAuction struct {
	item     string
	endTime  time.Time
	ended    bool
	winner   common.Address
	bids     []models.Bid
	revealed []models.RevealedBid
}

// fakeChain is an in-process stand-in for the factory, auction and registry
// contracts. It implements both market.ChainReader and market.ChainWriter.
type fakeChain struct {
	mu       sync.Mutex
	now      time.Time
	block    uint64
	auctions map[common.Address]*fakeAuction
	order    []common.Address
	registry map[common.Address]models.Metadata
	failing  bool
}

func newFakeChain(now time.Time) *fakeChain {
	return &fakeChain{
		now:      now,
		block:    100,
		auctions: map[common.Address]*fakeAuction{},
		registry: map[common.Address]models.Metadata{},
	}
}

func (f *fakeChain) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeChain) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// SetFailing makes every read return an RPC error until reset
func (f *fakeChain) SetFailing(failing bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing = failing
}

func (f *fakeChain) readErr() error {
	if f.failing {
		return errors.New("503 Service Unavailable")
	}
	return nil
}

func (f *fakeChain) get(addr common.Address) (*fakeAuction, error) {
	a, ok := f.auctions[addr]
	if !ok {
		return nil, fmt.Errorf("call: %w", marketerrors.ErrAuctionNotFound)
	}
	return a, nil
}

func (f *fakeChain) mine() models.TxResult {
	f.block++
	return models.TxResult{
		TxHash:      crypto.Keccak256Hash(new(big.Int).SetUint64(f.block).Bytes()),
		BlockNumber: f.block,
		GasUsed:     21000,
	}
}

func (f *fakeChain) AuctionAddresses(context.Context) ([]common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.readErr(); err != nil {
		return nil, err
	}
	return append([]common.Address(nil), f.order...), nil
}

func (f *fakeChain) AuctionRecord(_ context.Context, addr common.Address) (models.AuctionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.readErr(); err != nil {
		return models.AuctionRecord{}, err
	}
	a, err := f.get(addr)
	if err != nil {
		return models.AuctionRecord{}, err
	}
	return models.AuctionRecord{Address: addr, Item: a.item, EndTime: a.endTime, Ended: a.ended}, nil
}

func (f *fakeChain) Leader(context.Context, common.Address) (*models.Leader, error) {
	// the deployed contract has no leader() view; force the reveal-log path
	return nil, errors.New("execution reverted")
}

func (f *fakeChain) RevealedBids(_ context.Context, addr common.Address) ([]models.RevealedBid, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, err := f.get(addr)
	if err != nil {
		return nil, err
	}
	return append([]models.RevealedBid(nil), a.revealed...), nil
}

func (f *fakeChain) Winner(_ context.Context, addr common.Address) (common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, err := f.get(addr)
	if err != nil {
		return common.Address{}, err
	}
	return a.winner, nil
}

func (f *fakeChain) BidHistory(_ context.Context, addr common.Address, _, _ *uint64) ([]models.Bid, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, err := f.get(addr)
	if err != nil {
		return nil, err
	}
	bids := append([]models.Bid(nil), a.bids...)
	sort.SliceStable(bids, func(i, j int) bool { return bids[i].Timestamp.After(bids[j].Timestamp) })
	return bids, nil
}

func (f *fakeChain) RegistryMetadata(_ context.Context, addr common.Address) (models.Metadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	md, ok := f.registry[addr]
	if !ok {
		return models.Metadata{}, marketerrors.ErrMetadataNotFound
	}
	return md, nil
}

func (f *fakeChain) CreateAuction(_ context.Context, item string, duration time.Duration) (models.CreatedAuction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	addr := common.BigToAddress(big.NewInt(int64(0xa000 + len(f.order))))
	end := f.now.Add(duration).Truncate(time.Second).UTC()
	f.auctions[addr] = &fakeAuction{item: item, endTime: end}
	f.order = append(f.order, addr)
	return models.CreatedAuction{Address: addr, Item: item, EndTime: end, Seller: signer, Tx: f.mine()}, nil
}

func (f *fakeChain) PlaceBid(_ context.Context, addr common.Address, encodedBid string) (models.TxResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, err := f.get(addr)
	if err != nil {
		return models.TxResult{}, err
	}
	if !f.now.Before(a.endTime) {
		return models.TxResult{}, fmt.Errorf("execution reverted: bidding over")
	}
	if _, err := hexutil.Decode(encodedBid); err != nil {
		return models.TxResult{}, err
	}

	tx := f.mine()
	a.bids = append(a.bids, models.Bid{
		Bidder:        signer,
		EncodedAmount: encodedBid,
		Timestamp:     f.now.UTC(),
		TxHash:        tx.TxHash,
		BlockNumber:   tx.BlockNumber,
	})
	return tx, nil
}

func (f *fakeChain) RevealBid(_ context.Context, addr common.Address, scaledAmount *big.Int) (models.TxResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, err := f.get(addr)
	if err != nil {
		return models.TxResult{}, err
	}
	tx := f.mine()
	a.revealed = append(a.revealed, models.RevealedBid{
		Bidder:      signer,
		Amount:      chain.AmountFromScaled(scaledAmount),
		BlockNumber: tx.BlockNumber,
	})
	return tx, nil
}

func (f *fakeChain) Finalize(_ context.Context, addr common.Address) (models.TxResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, err := f.get(addr)
	if err != nil {
		return models.TxResult{}, err
	}
	a.ended = true
	if leader := market.ComputeLeader(a.revealed); leader != nil {
		a.winner = leader.Bidder
	}
	return f.mine(), nil
}

func (f *fakeChain) MirrorMetadata(_ context.Context, addr common.Address, md models.Metadata) (models.TxResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registry[addr] = md
	return f.mine(), nil
}

// testEnv wires the real service, store and router on top of the fake chain
type testEnv struct {
	chain   *fakeChain
	store   *repository.MemoryRepo
	service *market.MarketService
	router  *gin.Engine
}

func SetupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fc := newFakeChain(time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC))
	store := repository.NewMemoryRepo()
	svc := market.NewMarketService(fc, fc, store, market.Options{
		ReadRetries:    2,
		ReadRetryDelay: time.Millisecond,
		RevealWindow:   time.Hour,
		MirrorTimeout:  time.Second,
		Now:            fc.Now,
	})
	t.Cleanup(svc.Wait)

	return &testEnv{
		chain:   fc,
		store:   store,
		service: svc,
		router:  server.SetupRouter(svc, server.HealthInfo{ChainID: 11155111}),
	}
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}
