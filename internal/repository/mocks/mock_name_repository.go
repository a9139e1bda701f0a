package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"namesapi/internal/model"
	"namesapi/internal/repository"
)

type MockNameRepository struct {
	mock.Mock
}

var _ repository.NameRepository = (*MockNameRepository)(nil)

func (m *MockNameRepository) List(ctx context.Context) ([]model.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockNameRepository) Create(ctx context.Context, name string) (*model.Record, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Record), args.Error(1)
}

func (m *MockNameRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNameRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
