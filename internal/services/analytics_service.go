package services

import (
	"smmehub_backend/internal/repositories"
	"smmehub_backend/pkg/apperrors"
)

type AnalyticsService interface {
	GetPlatformStats() (*repositories.PlatformStats, error)
}

type AnalyticsServiceImpl struct {
	analyticsRepo repositories.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo repositories.AnalyticsRepository) AnalyticsService {
	return &AnalyticsServiceImpl{analyticsRepo: analyticsRepo}
}

func (s *AnalyticsServiceImpl) GetPlatformStats() (*repositories.PlatformStats, error) {
	stats, err := s.analyticsRepo.GetPlatformStats()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}
