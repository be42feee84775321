package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Raghvendrath3/test-generation-app/internal/dto"
	"github.com/Raghvendrath3/test-generation-app/internal/repository"
)

// TeacherDashboardService produces the aggregated teacher dashboard.
type TeacherDashboardService interface {
	GetDashboard(ctx context.Context, teacherID string) (dto.TeacherDashboardResponse, error)
}

type teacherDashboardService struct {
	repo     repository.DashboardRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewTeacherDashboardService builds the dashboard aggregator. A nil cache
// client disables caching without affecting correctness.
func NewTeacherDashboardService(repo repository.DashboardRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) TeacherDashboardService {
	return &teacherDashboardService{
		repo:     repo,
		cache:    cache,
		cacheTTL: ttl,
		logger:   logger.With().Str("component", "teacher_dashboard_service").Logger(),
	}
}

func (s *teacherDashboardService) GetDashboard(ctx context.Context, teacherID string) (dto.TeacherDashboardResponse, error) {
	cacheKey := fmt.Sprintf("dashboard:teacher:%s", teacherID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.TeacherDashboardResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Str("teacher_id", teacherID).Msg("dashboard cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
	}

	stats, err := s.repo.TeacherStats(ctx, teacherID)
	if err != nil {
		return dto.TeacherDashboardResponse{}, err
	}

	response := dto.TeacherDashboardResponse{
		Subjects:       stats.Subjects,
		Chapters:       stats.Chapters,
		Questions:      stats.Questions,
		Tests:          stats.Tests,
		AttemptsTaken:  stats.AttemptsTaken,
		GradedAttempts: stats.GradedAttempts,
	}
	if stats.MarksPossible > 0 {
		response.AverageScorePct = float64(stats.MarksObtained) / float64(stats.MarksPossible) * 100
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, encoded, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to write dashboard cache")
			}
		}
	}

	return response, nil
}
