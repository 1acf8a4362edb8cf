package service

import (
	"context"

	"solarops/internal/domain"
	"solarops/internal/port"
)

// StatsService exposes dashboard aggregates.
type StatsService interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}

type statsService struct {
	repo port.StatsRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(repo port.StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	return s.repo.DashboardStats(ctx)
}
