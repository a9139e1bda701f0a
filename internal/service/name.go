package service

import (
	"context"
	"errors"
	"fmt"

	"namesapi/internal/model"
	"namesapi/internal/repository"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrIDRequired   = errors.New("id is required")
)

// NameService defines the use cases for handling name records.
type NameService interface {
	// List returns all records in insertion order.
	List(ctx context.Context) ([]model.Record, error)

	// Create validates and stores a new record. An empty name yields ErrNameRequired.
	Create(ctx context.Context, name string) (*model.Record, error)

	// Delete removes a record by ID. Deleting an unknown ID is not an error.
	// An empty ID yields ErrIDRequired; routed requests always carry one.
	Delete(ctx context.Context, id string) error
}

// nameService is a concrete implementation of NameService.
type nameService struct {
	repo repository.NameRepository
}

// NewNameService constructs a new NameService.
func NewNameService(repo repository.NameRepository) NameService {
	return &nameService{repo: repo}
}

func (s *nameService) List(ctx context.Context) ([]model.Record, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list names: %w", err)
	}
	if items == nil {
		items = []model.Record{}
	}
	return items, nil
}

func (s *nameService) Create(ctx context.Context, name string) (*model.Record, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	rec, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create name: %w", err)
	}
	return rec, nil
}

func (s *nameService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete name: %w", err)
	}
	return nil
}
