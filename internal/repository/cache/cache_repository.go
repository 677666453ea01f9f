package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/campus-mobility-service/internal/domain"
	"github.com/campus-mobility-service/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
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
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetRealTimeStats получает снимок оперативной статистики из кеша
func (r *cacheRepository) GetRealTimeStats(ctx context.Context) (*domain.RealTimeStats, error) {
	key := "stats:realtime"
	data, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var stats domain.RealTimeStats
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Error("Failed to unmarshal realtime stats from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal realtime stats: %w", err)
	}

	return &stats, nil
}

// SetRealTimeStats сохраняет снимок оперативной статистики в кеше
func (r *cacheRepository) SetRealTimeStats(ctx context.Context, stats *domain.RealTimeStats, ttl time.Duration) error {
	key := "stats:realtime"
	data, err := json.Marshal(stats)
	if err != nil {
		r.logger.Error("Failed to marshal realtime stats", zap.Error(err))
		return fmt.Errorf("marshal realtime stats: %w", err)
	}

	return r.Set(ctx, key, data, ttl)
}

// GetDemandPatterns получает паттерны спроса из кеша для заданного окна анализа
func (r *cacheRepository) GetDemandPatterns(ctx context.Context, daysBack int) (*domain.DemandPatterns, error) {
	key := fmt.Sprintf("demand:patterns:%d", daysBack)
	data, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var patterns domain.DemandPatterns
	if err := json.Unmarshal(data, &patterns); err != nil {
		r.logger.Error("Failed to unmarshal demand patterns from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal demand patterns: %w", err)
	}

	return &patterns, nil
}

// SetDemandPatterns сохраняет паттерны спроса в кеше
func (r *cacheRepository) SetDemandPatterns(ctx context.Context, daysBack int, patterns *domain.DemandPatterns, ttl time.Duration) error {
	key := fmt.Sprintf("demand:patterns:%d", daysBack)
	data, err := json.Marshal(patterns)
	if err != nil {
		r.logger.Error("Failed to marshal demand patterns", zap.Error(err))
		return fmt.Errorf("marshal demand patterns: %w", err)
	}

	return r.Set(ctx, key, data, ttl)
}
