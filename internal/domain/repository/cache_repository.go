package repository

import (
	"context"
	"time"

	"github.com/campus-mobility-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем аналитики
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetRealTimeStats получает сводку активности из кеша
	GetRealTimeStats(ctx context.Context) (*domain.RealTimeStats, error)

	// SetRealTimeStats сохраняет сводку активности в кеше
	SetRealTimeStats(ctx context.Context, stats *domain.RealTimeStats, ttl time.Duration) error

	// GetDemandPatterns получает отчет о спросе из кеша
	GetDemandPatterns(ctx context.Context, daysBack int) (*domain.DemandPatterns, error)

	// SetDemandPatterns сохраняет отчет о спросе в кеше
	SetDemandPatterns(ctx context.Context, daysBack int, patterns *domain.DemandPatterns, ttl time.Duration) error
}
