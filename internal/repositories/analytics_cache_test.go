package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/moodtrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestAnalyticsCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewAnalyticsCacheRepository(rdb, 2*time.Second)

	summary := &models.MoodAnalytics{
		AverageMood:    7,
		AverageDisplay: "7.0",
		TotalEntries:   6,
		Series: []models.ChartPoint{
			{Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Label: "Happy", Intensity: 7},
		},
		FactorCounts: map[string]int{"Exercise": 2},
	}

	t.Run("Set and Get", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.Set(ctx, userID, summary))

		got, err := repo.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, summary, got)
	})

	t.Run("miss returns not found", func(t *testing.T) {
		_, err := repo.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("Delete drops the entry", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.Set(ctx, userID, summary))
		require.NoError(t, repo.Delete(ctx, userID))

		_, err := repo.Get(ctx, userID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("entries expire", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.Set(ctx, userID, summary))

		time.Sleep(3 * time.Second)

		_, err := repo.Get(ctx, userID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}
