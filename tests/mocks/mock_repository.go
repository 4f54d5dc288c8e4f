package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/segyhp/loan-earnings/internal/domain"
)

type MockEarningsRepository struct {
	mock.Mock
}

func (m *MockEarningsRepository) GetTable(ctx context.Context, dataset string) (*domain.EarningsTable, error) {
	args := m.Called(ctx, dataset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EarningsTable), args.Error(1)
}

func (m *MockEarningsRepository) SaveTable(ctx context.Context, table *domain.EarningsTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockEarningsRepository) ListDatasets(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
