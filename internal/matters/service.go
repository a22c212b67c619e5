package matters

import (
	"context"
	"fmt"

	"github.com/davidjulakidze/lolly-law-assessment/internal/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, customerID int64, req CreateMatterRequest) (*Matter, error) {
	exists, err := s.repo.CustomerExists(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("check customer: %w", err)
	}
	if !exists {
		return nil, shared.ErrNotFound
	}

	matter := Matter{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		CustomerID:  customerID,
	}
	id, err := s.repo.Create(ctx, matter)
	if err != nil {
		return nil, fmt.Errorf("create matter: %w", err)
	}
	matter.ID = id
	return &matter, nil
}

func (s *Service) Update(ctx context.Context, customerID, matterID int64, req UpdateMatterRequest) (*Matter, error) {
	existing, err := s.repo.Get(ctx, customerID, matterID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) == 0 {
		return existing, nil
	}

	if err := s.repo.Update(ctx, customerID, matterID, updates); err != nil {
		return nil, fmt.Errorf("update matter: %w", err)
	}
	return s.repo.Get(ctx, customerID, matterID)
}

func (s *Service) Get(ctx context.Context, customerID, matterID int64) (*Matter, error) {
	return s.repo.Get(ctx, customerID, matterID)
}

// ListForCustomer returns every matter belonging to one customer.
func (s *Service) ListForCustomer(ctx context.Context, customerID int64) ([]Matter, error) {
	exists, err := s.repo.CustomerExists(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("check customer: %w", err)
	}
	if !exists {
		return nil, shared.ErrNotFound
	}

	matters, _, err := s.repo.List(ctx, ListMattersRequest{CustomerID: &customerID, Limit: 1000})
	return matters, err
}

// List returns matters across all customers with optional status filter and
// search.
func (s *Service) List(ctx context.Context, req ListMattersRequest) ([]Matter, int, error) {
	return s.repo.List(ctx, req)
}

func (s *Service) Delete(ctx context.Context, customerID, matterID int64) error {
	return s.repo.Delete(ctx, customerID, matterID)
}
