package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/segyhp/loan-earnings/internal/domain"
)

type earningsRepository struct {
	db *sqlx.DB
}

func NewEarningsRepository(db *sqlx.DB) EarningsRepository {
	return &earningsRepository{db: db}
}

type datasetRow struct {
	Dataset    string         `db:"dataset"`
	Labels     pq.StringArray `db:"labels"`
	ImportID   string         `db:"import_id"`
	ImportedAt time.Time      `db:"imported_at"`
}

type recordRow struct {
	Period       int     `db:"period"`
	Label        string  `db:"label"`
	AnnualAmount float64 `db:"annual_amount"`
}

func (r *earningsRepository) GetTable(ctx context.Context, dataset string) (*domain.EarningsTable, error) {
	query := `
		SELECT dataset, labels, import_id, imported_at
		FROM earnings_datasets
		WHERE dataset = $1
	`

	var meta datasetRow
	if err := r.db.GetContext(ctx, &meta, query, dataset); err != nil {
		return nil, err
	}

	query = `
		SELECT period, label, annual_amount
		FROM earnings_records
		WHERE dataset = $1
		ORDER BY period, label
	`

	var rows []recordRow
	if err := r.db.SelectContext(ctx, &rows, query, dataset); err != nil {
		return nil, err
	}

	return &domain.EarningsTable{
		Dataset:    meta.Dataset,
		Labels:     []string(meta.Labels),
		Records:    groupRecords(rows),
		ImportID:   meta.ImportID,
		ImportedAt: meta.ImportedAt,
	}, nil
}

// groupRecords folds (period, label, amount) rows ordered by period into one
// IncomeRecord per period.
func groupRecords(rows []recordRow) []domain.IncomeRecord {
	records := make([]domain.IncomeRecord, 0)
	for _, row := range rows {
		if n := len(records); n == 0 || records[n-1].Period != row.Period {
			records = append(records, domain.IncomeRecord{
				Period:         row.Period,
				AmountsByLabel: make(map[string]float64),
			})
		}
		records[len(records)-1].AmountsByLabel[row.Label] = row.AnnualAmount
	}
	return records
}

func (r *earningsRepository) SaveTable(ctx context.Context, table *domain.EarningsTable) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	upsert := `
		INSERT INTO earnings_datasets (dataset, labels, import_id, imported_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (dataset) DO UPDATE
		SET labels = EXCLUDED.labels, import_id = EXCLUDED.import_id, imported_at = EXCLUDED.imported_at
	`
	if _, err = tx.ExecContext(ctx, upsert, table.Dataset, pq.Array(table.Labels), table.ImportID, table.ImportedAt); err != nil {
		return fmt.Errorf("upsert dataset %s: %w", table.Dataset, err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM earnings_records WHERE dataset = $1`, table.Dataset); err != nil {
		return fmt.Errorf("clear records of %s: %w", table.Dataset, err)
	}

	insert := `
		INSERT INTO earnings_records (dataset, period, label, annual_amount)
		VALUES ($1, $2, $3, $4)
	`
	stmt, err := tx.PreparexContext(ctx, insert)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, record := range table.Records {
		for label, amount := range record.AmountsByLabel {
			if _, err = stmt.ExecContext(ctx, table.Dataset, record.Period, label, amount); err != nil {
				return fmt.Errorf("insert %s period %d: %w", table.Dataset, record.Period, err)
			}
		}
	}

	return tx.Commit()
}

func (r *earningsRepository) ListDatasets(ctx context.Context) ([]string, error) {
	query := `
		SELECT dataset
		FROM earnings_datasets
		ORDER BY dataset
	`

	var datasets []string
	if err := r.db.SelectContext(ctx, &datasets, query); err != nil {
		return nil, err
	}

	return datasets, nil
}
