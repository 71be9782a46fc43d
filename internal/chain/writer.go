package chain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"auction-market/internal/marketerrors"
	"auction-market/internal/models"
	"auction-market/utils"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// CreateAuction calls the factory and reads the new auction from the
// AuctionCreated event in the receipt.
func (c *Client) CreateAuction(ctx context.Context, item string, duration time.Duration) (models.CreatedAuction, error) {
	seconds := new(big.Int).SetInt64(int64(duration / time.Second))

	receipt, err := c.transact(ctx, c.factory, methodCreateAuction, item, seconds)
	if err != nil {
		return models.CreatedAuction{}, err
	}

	created, err := parseAuctionCreated(receipt.Logs)
	if err != nil {
		return models.CreatedAuction{}, fmt.Errorf("chain: tx %s: %w", receipt.TxHash.Hex(), err)
	}
	created.Tx = txResult(receipt)
	return created, nil
}

// PlaceBid submits an encoded bid (see EncodeBid).
func (c *Client) PlaceBid(ctx context.Context, addr common.Address, encodedBid string) (models.TxResult, error) {
	raw, err := hexutil.Decode(encodedBid)
	if err != nil {
		return models.TxResult{}, fmt.Errorf("chain: %w - %v", marketerrors.ErrInvalidBid, err)
	}

	receipt, err := c.transact(ctx, c.auction(addr), methodPlaceBid, raw)
	if err != nil {
		return models.TxResult{}, err
	}
	return txResult(receipt), nil
}

// RevealBid discloses the scaled amount of the signer's bid.
func (c *Client) RevealBid(ctx context.Context, addr common.Address, scaledAmount *big.Int) (models.TxResult, error) {
	receipt, err := c.transact(ctx, c.auction(addr), methodRevealBid, scaledAmount)
	if err != nil {
		return models.TxResult{}, err
	}
	return txResult(receipt), nil
}

// Finalize closes the auction on-chain and records the winner.
func (c *Client) Finalize(ctx context.Context, addr common.Address) (models.TxResult, error) {
	receipt, err := c.transact(ctx, c.auction(addr), methodFinalize)
	if err != nil {
		return models.TxResult{}, err
	}
	return txResult(receipt), nil
}

// MirrorMetadata writes metadata to the registry contract.
func (c *Client) MirrorMetadata(ctx context.Context, addr common.Address, md models.Metadata) (models.TxResult, error) {
	if c.registry == nil {
		return models.TxResult{}, marketerrors.ErrRegistryDisabled
	}

	receipt, err := c.transact(ctx, c.registry, methodSetMetadata, addr, md.Title, md.ImageURL, md.Description)
	if err != nil {
		return models.TxResult{}, err
	}
	return txResult(receipt), nil
}

// transact sends a signed call and blocks until it is mined. Provider
// errors (insufficient funds, nonce, user rejection) are wrapped unchanged.
func (c *Client) transact(ctx context.Context, contract *bind.BoundContract, method string, args ...any) (*types.Receipt, error) {
	if c.signer == nil {
		return nil, fmt.Errorf("chain: %s: %w", method, marketerrors.ErrWalletMissing)
	}

	tx, err := c.send(ctx, contract, method, args...)
	if err != nil {
		return nil, fmt.Errorf("chain: send %s: %w", method, err)
	}

	utils.Info("chain: transaction sent", map[string]any{
		"method": method,
		"tx":     tx.Hash().Hex(),
		"from":   c.signer.From.Hex(),
	})

	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("chain: wait %s (%s): %w", method, tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("chain: %s (%s): %w", method, tx.Hash().Hex(), marketerrors.ErrTxReverted)
	}

	utils.Info("chain: transaction confirmed", map[string]any{
		"method":   method,
		"tx":       tx.Hash().Hex(),
		"block":    txResult(receipt).BlockNumber,
		"gas_used": receipt.GasUsed,
	})
	return receipt, nil
}

func (c *Client) send(ctx context.Context, contract *bind.BoundContract, method string, args ...any) (*types.Transaction, error) {
	c.txMu.Lock()
	defer c.txMu.Unlock()

	opts := *c.signer
	opts.Context = ctx
	return contract.Transact(&opts, method, args...)
}

func parseAuctionCreated(logs []*types.Log) (models.CreatedAuction, error) {
	topic := FactoryABI.Events[EventAuctionCreated].ID

	for _, l := range logs {
		if l == nil || len(l.Topics) == 0 || l.Topics[0] != topic {
			continue
		}

		var ev auctionCreatedEvent
		if err := unpackEvent(FactoryABI, &ev, EventAuctionCreated, *l); err != nil {
			utils.Warn("chain: malformed AuctionCreated log", map[string]any{"error": err.Error()})
			continue
		}
		if ev.Auction == (common.Address{}) {
			continue
		}

		created := models.CreatedAuction{
			Address: ev.Auction,
			Item:    ev.Item,
			Seller:  ev.Seller,
		}
		if ev.EndTime != nil {
			created.EndTime = time.Unix(ev.EndTime.Int64(), 0).UTC()
		}
		return created, nil
	}

	return models.CreatedAuction{}, marketerrors.ErrNoCreatedEvent
}

func txResult(receipt *types.Receipt) models.TxResult {
	res := models.TxResult{
		TxHash:  receipt.TxHash,
		GasUsed: receipt.GasUsed,
	}
	if receipt.BlockNumber != nil {
		res.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return res
}
