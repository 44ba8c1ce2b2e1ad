package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"meal-recognizer/internal/infrastructure/config"
	"meal-recognizer/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// RedisStore Redis 快取，多實例部署時共享
type RedisStore struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewRedisStore 創建 Redis 快取
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Cache.RedisAddr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: client,
		config: &cfg.Cache,
	}, nil
}

// Get 獲取快取
func (s *RedisStore) Get(ctx context.Context, operation, key string) (string, error) {
	data, err := s.client.Get(ctx, s.generateKey(operation, key)).Result()
	if err != nil {
		if err == redis.Nil {
			common.LogCacheMiss(operation, key)
			return "", common.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}
	common.LogCacheHit(operation, key)
	return data, nil
}

// Set 設置快取
func (s *RedisStore) Set(ctx context.Context, operation, key, value string) error {
	if err := s.client.Set(ctx, s.generateKey(operation, key), value, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Close 關閉連接
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// generateKey 生成快取鍵
func (s *RedisStore) generateKey(operation, key string) string {
	hash := sha256.Sum256([]byte(key))
	return fmt.Sprintf("recognizer:%s:%s", operation, hex.EncodeToString(hash[:]))
}
