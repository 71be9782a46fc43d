package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"auction-market/internal/marketerrors"
	model "auction-market/internal/models"

	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
)

const (
	metadataKeyPrefix = "auction:meta:"
	auctionListKey    = "auction:list:v1"
)

// RedisRepo is a MetadataStore backed by Redis, shared by every replica of the service
type RedisRepo struct {
	client *redis.Client
}

// NewRedisClient connects to Redis and verifies the connection with a ping
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// NewRedisRepo wraps an existing Redis client
func NewRedisRepo(client *redis.Client) *RedisRepo {
	return &RedisRepo{client: client}
}

// Close releases the underlying connection pool
func (r *RedisRepo) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

// GetMetadata returns the cached metadata of an auction
func (r *RedisRepo) GetMetadata(ctx context.Context, addr common.Address) (model.Metadata, error) {
	val, err := r.client.Get(ctx, metadataKeyPrefix+addressKey(addr)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Metadata{}, fmt.Errorf("get metadata for %s: %w", addr.Hex(), marketerrors.ErrMetadataNotFound)
		}
		return model.Metadata{}, fmt.Errorf("failed to get metadata from redis: %w", err)
	}

	var md model.Metadata
	if err := json.Unmarshal(val, &md); err != nil {
		return model.Metadata{}, fmt.Errorf("failed to unmarshal metadata from redis: %w", err)
	}
	return md, nil
}

// SetMetadata stores metadata for an auction, replacing any previous value
func (r *RedisRepo) SetMetadata(ctx context.Context, addr common.Address, md model.Metadata) error {
	raw, err := json.Marshal(md)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	if err := r.client.Set(ctx, metadataKeyPrefix+addressKey(addr), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to set metadata in redis: %w", err)
	}
	return nil
}

// SaveAuctionList replaces the cached auction list
func (r *RedisRepo) SaveAuctionList(ctx context.Context, auctions []model.Auction) error {
	if auctions == nil {
		auctions = []model.Auction{}
	}
	raw, err := json.Marshal(auctions)
	if err != nil {
		return fmt.Errorf("failed to marshal auction list: %w", err)
	}

	if err := r.client.Set(ctx, auctionListKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to set auction list in redis: %w", err)
	}
	return nil
}

// LoadAuctionList returns the cached auction list
func (r *RedisRepo) LoadAuctionList(ctx context.Context) ([]model.Auction, error) {
	val, err := r.client.Get(ctx, auctionListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("load auction list: %w", marketerrors.ErrCacheEmpty)
		}
		return nil, fmt.Errorf("failed to get auction list from redis: %w", err)
	}

	var auctions []model.Auction
	if err := json.Unmarshal(val, &auctions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auction list from redis: %w", err)
	}
	if auctions == nil {
		auctions = []model.Auction{}
	}
	return auctions, nil
}
