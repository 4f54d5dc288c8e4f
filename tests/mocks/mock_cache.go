package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/segyhp/loan-earnings/internal/domain"
)

type MockTableCache struct {
	mock.Mock
}

func (m *MockTableCache) Get(ctx context.Context, dataset string) (*domain.EarningsTable, bool, error) {
	args := m.Called(ctx, dataset)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.EarningsTable), args.Bool(1), args.Error(2)
}

func (m *MockTableCache) Set(ctx context.Context, table *domain.EarningsTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockTableCache) Invalidate(ctx context.Context, dataset string) error {
	args := m.Called(ctx, dataset)
	return args.Error(0)
}
