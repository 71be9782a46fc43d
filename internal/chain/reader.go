package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"time"

	"auction-market/internal/marketerrors"
	"auction-market/internal/models"
	"auction-market/utils"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

var errEventMismatch = errors.New("log does not match event signature")

type auctionCreatedEvent struct {
	Auction common.Address
	Item    string
	EndTime *big.Int
	Seller  common.Address
}

type bidSubmittedEvent struct {
	Bidder       common.Address
	EncryptedBid []byte
	Timestamp    *big.Int
}

type bidRevealedEvent struct {
	Bidder common.Address
	Amount *big.Int
}

// AuctionAddresses lists every auction the factory has created.
func (c *Client) AuctionAddresses(ctx context.Context) ([]common.Address, error) {
	out, err := c.call(ctx, c.factory, methodGetAllAuctions)
	if err != nil {
		return nil, err
	}

	addrs, ok := out[0].([]common.Address)
	if !ok {
		return nil, fmt.Errorf("chain: %s: unexpected result type %T", methodGetAllAuctions, out[0])
	}
	return addrs, nil
}

// AuctionRecord reads item, end time and the ended flag of one auction.
func (c *Client) AuctionRecord(ctx context.Context, addr common.Address) (models.AuctionRecord, error) {
	contract := c.auction(addr)

	itemOut, err := c.call(ctx, contract, methodItem)
	if err != nil {
		return models.AuctionRecord{}, fmt.Errorf("chain: auction %s: %w", addr.Hex(), err)
	}
	endOut, err := c.call(ctx, contract, methodEndTime)
	if err != nil {
		return models.AuctionRecord{}, fmt.Errorf("chain: auction %s: %w", addr.Hex(), err)
	}
	endedOut, err := c.call(ctx, contract, methodEnded)
	if err != nil {
		return models.AuctionRecord{}, fmt.Errorf("chain: auction %s: %w", addr.Hex(), err)
	}

	item, _ := itemOut[0].(string)
	endTime, _ := endOut[0].(*big.Int)
	ended, _ := endedOut[0].(bool)
	if endTime == nil {
		return models.AuctionRecord{}, fmt.Errorf("chain: auction %s: %s returned %T", addr.Hex(), methodEndTime, endOut[0])
	}

	return models.AuctionRecord{
		Address: addr,
		Item:    item,
		EndTime: time.Unix(endTime.Int64(), 0).UTC(),
		Ended:   ended,
	}, nil
}

// Leader reads the contract's current highest revealed bid. It returns nil
// when nobody has revealed yet.
func (c *Client) Leader(ctx context.Context, addr common.Address) (*models.Leader, error) {
	out, err := c.call(ctx, c.auction(addr), methodLeader)
	if err != nil {
		return nil, fmt.Errorf("chain: auction %s: %w", addr.Hex(), err)
	}

	bidder, _ := out[0].(common.Address)
	amount, _ := out[1].(*big.Int)
	if bidder == (common.Address{}) {
		return nil, nil
	}
	return &models.Leader{Bidder: bidder, Amount: AmountFromScaled(amount)}, nil
}

// Winner reads the finalized winner; the zero address means none was recorded.
func (c *Client) Winner(ctx context.Context, addr common.Address) (common.Address, error) {
	out, err := c.call(ctx, c.auction(addr), methodWinner)
	if err != nil {
		return common.Address{}, fmt.Errorf("chain: auction %s: %w", addr.Hex(), err)
	}
	winner, _ := out[0].(common.Address)
	return winner, nil
}

// RevealedBids returns every BidRevealed event of an auction from the
// configured start block up to the latest block.
func (c *Client) RevealedBids(ctx context.Context, addr common.Address) ([]models.RevealedBid, error) {
	from := c.startBlock
	logs, err := c.filterLogs(ctx, addr, AuctionABI.Events[EventBidRevealed].ID, &from, nil)
	if err != nil {
		return nil, err
	}

	bids := make([]models.RevealedBid, 0, len(logs))
	for _, l := range logs {
		var ev bidRevealedEvent
		if err := unpackEvent(AuctionABI, &ev, EventBidRevealed, l); err != nil {
			utils.Debug("chain: skip undecodable reveal log", map[string]any{"tx": l.TxHash.Hex(), "error": err.Error()})
			continue
		}
		bids = append(bids, models.RevealedBid{
			Bidder:      ev.Bidder,
			Amount:      AmountFromScaled(ev.Amount),
			BlockNumber: l.BlockNumber,
			LogIndex:    l.Index,
		})
	}
	return bids, nil
}

// BidHistory decodes BidSubmitted events. With no explicit range it scans
// the most recent HistoryBlockSpan blocks. Rows are sorted newest first.
func (c *Client) BidHistory(ctx context.Context, addr common.Address, fromBlock, toBlock *uint64) ([]models.Bid, error) {
	logs, err := c.filterLogs(ctx, addr, AuctionABI.Events[EventBidSubmitted].ID, fromBlock, toBlock)
	if err != nil {
		return nil, err
	}

	bids := make([]models.Bid, 0, len(logs))
	for _, l := range logs {
		var ev bidSubmittedEvent
		if err := unpackEvent(AuctionABI, &ev, EventBidSubmitted, l); err != nil {
			utils.Debug("chain: skip undecodable bid log", map[string]any{"tx": l.TxHash.Hex(), "error": err.Error()})
			continue
		}
		var ts time.Time
		if ev.Timestamp != nil {
			ts = time.Unix(ev.Timestamp.Int64(), 0).UTC()
		}
		bids = append(bids, models.Bid{
			Bidder:        ev.Bidder,
			EncodedAmount: hexutil.Encode(ev.EncryptedBid),
			Timestamp:     ts,
			TxHash:        l.TxHash,
			BlockNumber:   l.BlockNumber,
		})
	}

	sort.SliceStable(bids, func(i, j int) bool { return bids[i].Timestamp.After(bids[j].Timestamp) })
	return bids, nil
}

// RegistryMetadata reads the metadata mirrored on the registry contract.
func (c *Client) RegistryMetadata(ctx context.Context, addr common.Address) (models.Metadata, error) {
	if c.registry == nil {
		return models.Metadata{}, marketerrors.ErrRegistryDisabled
	}

	out, err := c.call(ctx, c.registry, methodGetMetadata, addr)
	if err != nil {
		return models.Metadata{}, fmt.Errorf("chain: registry metadata for %s: %w", addr.Hex(), err)
	}

	md := models.Metadata{}
	md.Title, _ = out[0].(string)
	md.ImageURL, _ = out[1].(string)
	md.Description, _ = out[2].(string)
	if md.Title == "" && md.ImageURL == "" && md.Description == "" {
		return models.Metadata{}, fmt.Errorf("chain: registry metadata for %s: %w", addr.Hex(), marketerrors.ErrMetadataNotFound)
	}
	return md, nil
}

func (c *Client) call(ctx context.Context, contract *bind.BoundContract, method string, args ...any) ([]any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}

	var out []any
	if err := contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		if errors.Is(err, bind.ErrNoCode) {
			return nil, fmt.Errorf("call %s: %w", method, marketerrors.ErrAuctionNotFound)
		}
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("call %s: empty result", method)
	}
	return out, nil
}

// filterLogs scans [fromBlock, toBlock] in windows of historySpan blocks.
// A nil toBlock means the latest block; a nil fromBlock means the last
// historySpan blocks before it. Every RPC call takes a limiter token.
func (c *Client) filterLogs(ctx context.Context, addr common.Address, topic common.Hash, fromBlock, toBlock *uint64) ([]types.Log, error) {
	var to uint64
	if toBlock != nil {
		to = *toBlock
	} else {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("chain: latest block: %w", err)
		}
		latest, err := c.backend.BlockNumber(ctx)
		if err != nil {
			return nil, fmt.Errorf("chain: latest block: %w", err)
		}
		to = latest
	}

	var from uint64
	if fromBlock != nil {
		from = *fromBlock
	} else if to >= c.historySpan {
		from = to - c.historySpan + 1
	}

	var logs []types.Log
	for start := from; start <= to; {
		end := to
		if to-start >= c.historySpan {
			end = start + c.historySpan - 1
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("chain: filter logs: %w", err)
		}
		chunk, err := c.backend.FilterLogs(ctx, ethereum.FilterQuery{
			FromBlock: new(big.Int).SetUint64(start),
			ToBlock:   new(big.Int).SetUint64(end),
			Addresses: []common.Address{addr},
			Topics:    [][]common.Hash{{topic}},
		})
		if err != nil {
			return nil, fmt.Errorf("chain: filter logs %d..%d for %s: %w", start, end, addr.Hex(), err)
		}
		logs = append(logs, chunk...)

		if end == to {
			break
		}
		start = end + 1
	}
	return logs, nil
}

// unpackEvent decodes both the data and the indexed topics of a log into out.
func unpackEvent(contractABI abi.ABI, out any, event string, l types.Log) error {
	ev, ok := contractABI.Events[event]
	if !ok {
		return fmt.Errorf("unknown event %s", event)
	}
	if len(l.Topics) == 0 || l.Topics[0] != ev.ID {
		return errEventMismatch
	}

	if len(l.Data) > 0 {
		if err := contractABI.UnpackIntoInterface(out, event, l.Data); err != nil {
			return err
		}
	}

	var indexed abi.Arguments
	for _, arg := range ev.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	return abi.ParseTopics(out, indexed, l.Topics[1:])
}
