package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"auction-market/internal/marketerrors"
	model "auction-market/internal/models"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// MetadataStore defines the local cache for auction metadata and the last fetched auction list
type MetadataStore interface {
	GetMetadata(ctx context.Context, addr common.Address) (model.Metadata, error)
	SetMetadata(ctx context.Context, addr common.Address, md model.Metadata) error
	SaveAuctionList(ctx context.Context, auctions []model.Auction) error
	LoadAuctionList(ctx context.Context) ([]model.Auction, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of MetadataStore
type MemoryRepo struct {
	mu       sync.RWMutex
	metadata map[string]model.Metadata // key: lower-case auction address
	auctions []model.Auction           // last successfully fetched list
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		metadata: make(map[string]model.Metadata),
	}
}

// GetMetadata returns the cached metadata of an auction
func (r *MemoryRepo) GetMetadata(_ context.Context, addr common.Address) (model.Metadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	md, ok := r.metadata[addressKey(addr)]
	if !ok {
		return model.Metadata{}, fmt.Errorf("get metadata for %s: %w", addr.Hex(), marketerrors.ErrMetadataNotFound)
	}
	return md, nil
}

// SetMetadata stores metadata for an auction, replacing any previous value
func (r *MemoryRepo) SetMetadata(_ context.Context, addr common.Address, md model.Metadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.metadata[addressKey(addr)] = md
	return nil
}

// SaveAuctionList replaces the cached auction list
func (r *MemoryRepo) SaveAuctionList(_ context.Context, auctions []model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.auctions = make([]model.Auction, len(auctions))
	copy(r.auctions, auctions)
	return nil
}

// LoadAuctionList returns a copy of the cached auction list
func (r *MemoryRepo) LoadAuctionList(_ context.Context) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.auctions == nil {
		return nil, fmt.Errorf("load auction list: %w", marketerrors.ErrCacheEmpty)
	}
	out := make([]model.Auction, len(r.auctions))
	copy(out, r.auctions)
	return out, nil
}

func addressKey(addr common.Address) string {
	return strings.ToLower(addr.Hex())
}
