package repository

import (
	"context"
	"time"

	"github.com/manzil-geoservice/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу; (nil, nil) при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetSummaryTree получает дерево статистики из кеша
	GetSummaryTree(ctx context.Context) ([]domain.RegionSummary, error)

	// SetSummaryTree сохраняет дерево статистики в кеше
	SetSummaryTree(ctx context.Context, tree []domain.RegionSummary, ttl time.Duration) error

	// DeleteSummaryTree сбрасывает кешированное дерево
	DeleteSummaryTree(ctx context.Context) error

	// GetTotals получает глобальные счётчики из кеша
	GetTotals(ctx context.Context) (*domain.LevelCounts, error)

	// SetTotals сохраняет глобальные счётчики в кеше
	SetTotals(ctx context.Context, totals *domain.LevelCounts, ttl time.Duration) error
}
