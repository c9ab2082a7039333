package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/moodtrack/internal/logger"
	"github.com/sbilibin2017/moodtrack/internal/models"
)

//go:generate mockgen -source=health.go -destination=health_mock.go -package=services

// Database connectivity values reported by the status endpoint.
const (
	DBConnected    = "Connected"
	DBDisconnected = "Disconnected"
)

const pingTimeout = 2 * time.Second

// Pinger checks database connectivity.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthService reports the server status, probing the database on every call.
type HealthService struct {
	db  Pinger
	env string
}

func NewHealthService(db Pinger, env string) *HealthService {
	return &HealthService{db: db, env: env}
}

// Status builds the status payload.
func (s *HealthService) Status(ctx context.Context) models.StatusResponse {
	return models.StatusResponse{
		Status:      "ok",
		Message:     "API is working",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		DBStatus:    s.DBStatus(ctx),
		Environment: s.env,
	}
}

// DBStatus pings the database.
func (s *HealthService) DBStatus(ctx context.Context) string {
	if s.db == nil {
		return DBDisconnected
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		logger.Log.Warnw("database ping failed", "error", err)
		return DBDisconnected
	}
	return DBConnected
}
