package dashboard

import (
	"context"
	"fmt"
	"log/slog"
)

// Service computes the dashboard summary, consulting the cache first.
type Service struct {
	repo   Repository
	cache  *Cache
	logger *slog.Logger
}

func NewService(repo Repository, cache *Cache, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, logger: logger}
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	if cached, ok := s.cache.Get(ctx); ok {
		return cached, nil
	}

	customers, err := s.repo.CountCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}
	byStatus, err := s.repo.CountMattersByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count matters: %w", err)
	}

	var matters int64
	for _, count := range byStatus {
		matters += count
	}
	summary := &Summary{
		Customers:       customers,
		Matters:         matters,
		MattersByStatus: byStatus,
	}

	if err := s.cache.Set(ctx, summary); err != nil && s.logger != nil {
		s.logger.Warn("dashboard cache set", slog.Any("error", err))
	}
	return summary, nil
}
