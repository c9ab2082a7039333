package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/moodtrack/internal/logger"
	"github.com/sbilibin2017/moodtrack/internal/models"
)

// AnalyticsCacheRepository caches per-user mood analytics in Redis
type AnalyticsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached summaries
}

// NewAnalyticsCacheRepository creates a new repository instance with the given TTL
func NewAnalyticsCacheRepository(client *redis.Client, expiration time.Duration) *AnalyticsCacheRepository {
	return &AnalyticsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func analyticsKey(userID uuid.UUID) string {
	return fmt.Sprintf("analytics:%s", userID)
}

// Get returns the cached summary, or models.ErrNotFound on a cache miss
func (r *AnalyticsCacheRepository) Get(ctx context.Context, userID uuid.UUID) (*models.MoodAnalytics, error) {
	key := analyticsKey(userID)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	var analytics models.MoodAnalytics
	if err := json.Unmarshal(val, &analytics); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", string(val),
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", analytics.TotalEntries,
		"error", nil,
	)
	return &analytics, nil
}

// Set caches the summary with the repository TTL
func (r *AnalyticsCacheRepository) Set(ctx context.Context, userID uuid.UUID, analytics *models.MoodAnalytics) error {
	key := analyticsKey(userID)

	data, err := json.Marshal(analytics)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"entries", analytics.TotalEntries,
		"error", err,
	)
	return err
}

// Delete drops the cached summary of a user
func (r *AnalyticsCacheRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	key := analyticsKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)
	return err
}
