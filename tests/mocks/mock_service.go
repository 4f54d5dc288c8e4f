package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/segyhp/loan-earnings/internal/domain"
)

type MockCalculatorService struct {
	mock.Mock
}

func (m *MockCalculatorService) Schedule(ctx context.Context, params domain.LoanParameters) (domain.PaymentSchedule, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(domain.PaymentSchedule), args.Error(1)
}

func (m *MockCalculatorService) Calculate(ctx context.Context, request *domain.CalculationRequest) (*domain.CalculationResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CalculationResponse), args.Error(1)
}

func (m *MockCalculatorService) Categories(ctx context.Context, dataset string) ([]domain.Category, error) {
	args := m.Called(ctx, dataset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCalculatorService) Datasets(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// NewMockCalculatorService creates a new mock calculator service instance
func NewMockCalculatorService() *MockCalculatorService {
	return &MockCalculatorService{}
}
