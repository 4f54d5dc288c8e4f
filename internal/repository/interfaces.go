package repository

import (
	"context"

	"github.com/segyhp/loan-earnings/internal/domain"
)

// EarningsRepository defines the interface for income dataset operations
type EarningsRepository interface {
	// GetTable retrieves a dataset with its labels and records.
	// Returns sql.ErrNoRows when the dataset does not exist.
	GetTable(ctx context.Context, dataset string) (*domain.EarningsTable, error)

	// SaveTable replaces a dataset's labels and records
	SaveTable(ctx context.Context, table *domain.EarningsTable) error

	// ListDatasets returns the keys of all stored datasets
	ListDatasets(ctx context.Context) ([]string, error)
}
