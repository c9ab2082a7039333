package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/moodtrack/internal/logger"
	"github.com/sbilibin2017/moodtrack/internal/models"
)

//go:generate mockgen -source=mood.go -destination=mood_mock.go -package=services

// DashboardRecentMoods is how many entries the dashboard lists.
const DashboardRecentMoods = 5

// MoodWriter defines methods for writing moods.
type MoodWriter interface {
	Save(ctx context.Context, mood *models.Mood) error
}

// MoodReader defines methods for reading moods.
type MoodReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID, order models.SortOrder) ([]models.Mood, error)
	ListRecentByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.Mood, error)
	GetByID(ctx context.Context, moodID uuid.UUID) (*models.Mood, error)
}

// AnalyticsCache caches per-user summaries.
type AnalyticsCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.MoodAnalytics, error)
	Set(ctx context.Context, userID uuid.UUID, analytics *models.MoodAnalytics) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// MoodService handles mood entries, their analytics and Kafka publishing.
type MoodService struct {
	writeRepo   MoodWriter
	readRepo    MoodReader
	cacheRepo   AnalyticsCache
	kafkaWriter KafkaWriter
}

// NewMoodService creates a new MoodService. cacheRepo and kafkaWriter may be nil.
func NewMoodService(
	writeRepo MoodWriter,
	readRepo MoodReader,
	cacheRepo AnalyticsCache,
	kafkaWriter KafkaWriter,
) *MoodService {
	return &MoodService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
	}
}

// Create validates and stores a mood for the user.
func (s *MoodService) Create(ctx context.Context, userID uuid.UUID, req models.MoodRequest) (*models.Mood, error) {
	req.Note = sanitize(req.Note)
	activities := make([]string, 0, len(req.Activities))
	for _, a := range req.Activities {
		if a = sanitize(a); a != "" {
			activities = append(activities, a)
		}
	}
	req.Activities = activities

	if err := validateStruct(req); err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != nil && !req.Date.IsZero() {
		date = *req.Date
	}

	mood := &models.Mood{
		MoodID:     uuid.New(),
		UserID:     userID,
		Date:       date,
		Mood:       req.Mood,
		Intensity:  req.Intensity,
		Activities: activities,
		Note:       req.Note,
	}

	if err := s.writeRepo.Save(ctx, mood); err != nil {
		logger.Log.Errorw("failed to save mood", "userID", userID, "mood", req.Mood, "error", err)
		return nil, err
	}

	s.invalidate(ctx, userID)
	publishEvent(ctx, s.kafkaWriter, models.EventMoodRecorded, userID, mood)
	// An Analytics call that read the history before Save may have cached
	// its summary after the first delete.
	s.invalidate(ctx, userID)

	return mood, nil
}

// List returns the user's moods, newest first.
func (s *MoodService) List(ctx context.Context, userID uuid.UUID) ([]models.Mood, error) {
	return s.list(ctx, userID, models.SortDesc)
}

// History returns the user's moods in chronological order.
func (s *MoodService) History(ctx context.Context, userID uuid.UUID) ([]models.Mood, error) {
	return s.list(ctx, userID, models.SortAsc)
}

func (s *MoodService) list(ctx context.Context, userID uuid.UUID, order models.SortOrder) ([]models.Mood, error) {
	moods, err := s.readRepo.ListByUserID(ctx, userID, order)
	if err != nil {
		logger.Log.Errorw("failed to list moods", "userID", userID, "order", order, "error", err)
		return nil, err
	}
	return moods, nil
}

// Get returns one mood of the user. Moods of other users are reported as not found.
func (s *MoodService) Get(ctx context.Context, userID, moodID uuid.UUID) (*models.Mood, error) {
	mood, err := s.readRepo.GetByID(ctx, moodID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.Log.Errorw("failed to get mood", "moodID", moodID, "error", err)
		return nil, err
	}
	if mood.UserID != userID {
		logger.Log.Warnw("mood requested by another user", "moodID", moodID, "userID", userID)
		return nil, ErrNotFound
	}
	return mood, nil
}

// Analytics returns the summary of the user's history, served from the cache when possible.
func (s *MoodService) Analytics(ctx context.Context, userID uuid.UUID) (*models.MoodAnalytics, error) {
	if s.cacheRepo != nil {
		cached, err := s.cacheRepo.Get(ctx, userID)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			logger.Log.Errorw("failed to read analytics cache", "userID", userID, "error", err)
		}
	}

	moods, err := s.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := Summarize(moods)

	if s.cacheRepo != nil {
		if err := s.cacheRepo.Set(ctx, userID, &summary); err != nil {
			logger.Log.Errorw("failed to cache analytics", "userID", userID, "error", err)
		}
	}
	return &summary, nil
}

// Dashboard collects the summary, the latest entries and today's affirmation.
func (s *MoodService) Dashboard(ctx context.Context, userID uuid.UUID, now time.Time) (*models.Dashboard, error) {
	analytics, err := s.Analytics(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.readRepo.ListRecentByUserID(ctx, userID, DashboardRecentMoods)
	if err != nil {
		logger.Log.Errorw("failed to list recent moods", "userID", userID, "error", err)
		return nil, err
	}

	return &models.Dashboard{
		Analytics:   *analytics,
		RecentMoods: recent,
		Affirmation: models.TodayAffirmation(now),
	}, nil
}

func (s *MoodService) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to invalidate analytics cache", "userID", userID, "error", err)
	}
}
