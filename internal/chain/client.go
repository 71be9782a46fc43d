package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"sync"

	"auction-market/internal/marketerrors"
	"auction-market/utils"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/time/rate"
)

// DefaultHistoryBlockSpan bounds a single eth_getLogs query so public RPC endpoints don't time out.
const DefaultHistoryBlockSpan uint64 = 20_000

// Backend is the subset of an Ethereum JSON-RPC client the package relies on.
// *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// Config selects the contracts and the signer used by Client
type Config struct {
	FactoryAddress   common.Address
	RegistryAddress  common.Address // zero address disables the registry mirror
	ChainID          int64
	SignerKey        *ecdsa.PrivateKey // nil keeps the client read-only
	HistoryBlockSpan uint64
	StartBlock       uint64  // first block of full-history scans, usually the factory deployment
	RateLimit        float64 // read calls per second, <= 0 means unlimited
}

// Client talks to the auction factory, the auction contracts and the
// metadata registry. Reads go through a rate limiter, writes are signed
// with the configured key and wait for one confirmation.
type Client struct {
	backend     Backend
	factory     *bind.BoundContract
	registry    *bind.BoundContract
	chainID     *big.Int
	signer      *bind.TransactOpts
	limiter     *rate.Limiter
	historySpan uint64
	startBlock  uint64

	txMu sync.Mutex // serializes nonce assignment for the single signer
}

// Dial connects to rpcURL and builds a Client on top of it.
func Dial(ctx context.Context, rpcURL string, cfg Config) (*Client, error) {
	ec, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("chain: dial %s: %w", rpcURL, err)
	}

	client, err := NewClient(ctx, ec, cfg)
	if err != nil {
		ec.Close()
		return nil, err
	}
	return client, nil
}

// NewClient verifies the backend is on the configured network and binds the contracts.
func NewClient(ctx context.Context, backend Backend, cfg Config) (*Client, error) {
	want := big.NewInt(cfg.ChainID)
	got, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain: read chain id: %w", err)
	}
	if got.Cmp(want) != 0 {
		return nil, fmt.Errorf("chain: %w - connected to chainId %s, please switch to chainId %d", marketerrors.ErrWrongNetwork, got, cfg.ChainID)
	}

	c := &Client{
		backend:     backend,
		factory:     bind.NewBoundContract(cfg.FactoryAddress, FactoryABI, backend, backend, backend),
		chainID:     want,
		limiter:     newLimiter(cfg.RateLimit),
		historySpan: cfg.HistoryBlockSpan,
		startBlock:  cfg.StartBlock,
	}
	if c.historySpan == 0 {
		c.historySpan = DefaultHistoryBlockSpan
	}

	if cfg.RegistryAddress != (common.Address{}) {
		c.registry = bind.NewBoundContract(cfg.RegistryAddress, RegistryABI, backend, backend, backend)
	}

	if cfg.SignerKey != nil {
		opts, err := bind.NewKeyedTransactorWithChainID(cfg.SignerKey, want)
		if err != nil {
			return nil, fmt.Errorf("chain: build transactor: %w", err)
		}
		c.signer = opts
		utils.Info("chain: signer loaded", map[string]any{
			"address":  crypto.PubkeyToAddress(cfg.SignerKey.PublicKey).Hex(),
			"chain_id": cfg.ChainID,
		})
	}

	return c, nil
}

// SignerAddress returns the account used for writes, or the zero address when read-only.
func (c *Client) SignerAddress() common.Address {
	if c.signer == nil {
		return common.Address{}
	}
	return c.signer.From
}

// ChainID returns the network the client verified at startup.
func (c *Client) ChainID() int64 {
	return c.chainID.Int64()
}

// HasRegistry reports whether a metadata registry contract is configured.
func (c *Client) HasRegistry() bool {
	return c.registry != nil
}

// Close releases the underlying RPC connection when the backend owns one.
func (c *Client) Close() {
	if closer, ok := c.backend.(interface{ Close() }); ok {
		closer.Close()
	}
}

func (c *Client) auction(addr common.Address) *bind.BoundContract {
	return bind.NewBoundContract(addr, AuctionABI, c.backend, c.backend, c.backend)
}

func newLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}
