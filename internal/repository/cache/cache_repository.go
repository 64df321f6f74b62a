package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/manzil-geoservice/internal/domain"
	"github.com/manzil-geoservice/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keySummaryTree = "hierarchy:summary_tree"
	keyTotals      = "hierarchy:totals"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redisConn *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redisConn.Client(),
		logger: redisConn.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) GetSummaryTree(ctx context.Context) ([]domain.RegionSummary, error) {
	data, err := r.Get(ctx, keySummaryTree)
	if err != nil || data == nil {
		return nil, err
	}

	var tree []domain.RegionSummary
	if err := json.Unmarshal(data, &tree); err != nil {
		r.logger.Warn("Failed to unmarshal cached summary tree", zap.Error(err))
		return nil, nil // Битый кеш считаем промахом
	}
	return tree, nil
}

func (r *cacheRepository) SetSummaryTree(ctx context.Context, tree []domain.RegionSummary, ttl time.Duration) error {
	data, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("marshal summary tree: %w", err)
	}
	return r.Set(ctx, keySummaryTree, data, ttl)
}

func (r *cacheRepository) DeleteSummaryTree(ctx context.Context) error {
	return r.Delete(ctx, keySummaryTree)
}

func (r *cacheRepository) GetTotals(ctx context.Context) (*domain.LevelCounts, error) {
	data, err := r.Get(ctx, keyTotals)
	if err != nil || data == nil {
		return nil, err
	}

	var totals domain.LevelCounts
	if err := json.Unmarshal(data, &totals); err != nil {
		r.logger.Warn("Failed to unmarshal cached totals", zap.Error(err))
		return nil, nil
	}
	return &totals, nil
}

func (r *cacheRepository) SetTotals(ctx context.Context, totals *domain.LevelCounts, ttl time.Duration) error {
	data, err := json.Marshal(totals)
	if err != nil {
		return fmt.Errorf("marshal totals: %w", err)
	}
	return r.Set(ctx, keyTotals, data, ttl)
}
