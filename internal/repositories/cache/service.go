package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"revas/internal/models"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Shop caching
func (s *CacheService) CacheShop(ctx context.Context, shop *models.Shop) error {
	if shop == nil {
		return errors.New("cannot cache nil shop")
	}

	keys := []string{
		s.GenerateKey("shop", "id", shop.ID),
		s.GenerateKey("shop", "number", shop.ShopNumber),
	}
	for _, key := range keys {
		if err := s.Set(ctx, key, shop); err != nil {
			return err
		}
	}
	return nil
}

func (s *CacheService) GetShop(ctx context.Context, key string) (*models.Shop, error) {
	var shop models.Shop
	found, err := s.Get(ctx, key, &shop)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.New("shop not found in cache")
	}
	return &shop, nil
}

func (s *CacheService) InvalidateShop(ctx context.Context, shopID uint) error {
	shop, err := s.GetShop(ctx, s.GenerateKey("shop", "id", shopID))
	if err != nil {
		// Nothing cached for this shop; nothing to invalidate.
		return nil
	}

	return s.Delete(ctx,
		s.GenerateKey("shop", "id", shopID),
		s.GenerateKey("shop", "number", shop.ShopNumber),
	)
}

// User caching
func (s *CacheService) CacheUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("cannot cache nil user")
	}

	keys := []string{
		s.GenerateKey("user", "id", user.ID),
		s.GenerateKey("user", "email", user.Email),
	}
	if user.Phone != "" {
		keys = append(keys, s.GenerateKey("user", "phone", user.Phone))
	}

	for _, key := range keys {
		if err := s.Set(ctx, key, user); err != nil {
			return err
		}
	}
	return nil
}

func (s *CacheService) GetUser(ctx context.Context, key string) (*models.User, error) {
	var user models.User
	found, err := s.Get(ctx, key, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.New("user not found in cache")
	}
	return &user, nil
}

func (s *CacheService) InvalidateUser(ctx context.Context, userID uint) error {
	user, err := s.GetUser(ctx, s.GenerateKey("user", "id", userID))
	if err != nil {
		return nil
	}

	keys := []string{
		s.GenerateKey("user", "id", userID),
		s.GenerateKey("user", "email", user.Email),
	}
	if user.Phone != "" {
		keys = append(keys, s.GenerateKey("user", "phone", user.Phone))
	}

	return s.Delete(ctx, keys...)
}

// FlushAll clears the whole cache. Used at startup so stale shop records
// never outlive a redeploy.
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// HealthCheck verifies the Redis connection.
func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// GetStats returns Redis connection pool statistics.
func (s *CacheService) GetStats(ctx context.Context) *redis.PoolStats {
	return s.client.PoolStats()
}

// Close closes the underlying Redis client.
func (s *CacheService) Close() error {
	return s.client.Close()
}
