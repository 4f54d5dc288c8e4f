package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/segyhp/loan-earnings/internal/domain"
)

const periodColumn = "year"

var (
	ErrMissingPeriodColumn = errors.New("first column must be Year")
	ErrDuplicateLabel      = errors.New("duplicate column label")
)

// ParseCSV reads a wide earnings table: a "Year" column followed by one column
// per label holding annual amounts. Empty cells are treated as missing
// observations. Records are returned ordered by period.
func ParseCSV(r io.Reader, dataset string) (*domain.EarningsTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", dataset, err)
	}
	if len(header) == 0 || !strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(header[0], "\ufeff")), periodColumn) {
		return nil, fmt.Errorf("%s: %w", dataset, ErrMissingPeriodColumn)
	}

	labels := make([]string, 0, len(header)-1)
	seen := make(map[string]bool, len(header))
	for _, raw := range header[1:] {
		label := strings.TrimSpace(raw)
		if seen[label] {
			return nil, fmt.Errorf("%s: %w %q", dataset, ErrDuplicateLabel, label)
		}
		seen[label] = true
		labels = append(labels, label)
	}

	table := &domain.EarningsTable{Dataset: dataset, Labels: labels, Records: []domain.IncomeRecord{}}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", dataset, err)
		}
		line, _ := reader.FieldPos(0)

		record, err := parseRow(row, labels)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", dataset, line, err)
		}
		table.Records = append(table.Records, record)
	}

	slices.SortStableFunc(table.Records, func(a, b domain.IncomeRecord) int {
		return a.Period - b.Period
	})
	return table, nil
}

func parseRow(row []string, labels []string) (domain.IncomeRecord, error) {
	period, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return domain.IncomeRecord{}, fmt.Errorf("invalid year %q", row[0])
	}
	if period < 1 {
		return domain.IncomeRecord{}, fmt.Errorf("year %d must be at least 1", period)
	}

	record := domain.IncomeRecord{Period: period, AmountsByLabel: make(map[string]float64, len(labels))}
	for i, label := range labels {
		if i+1 >= len(row) {
			break
		}
		cell := cleanAmount(row[i+1])
		if cell == "" {
			continue
		}
		amount, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return domain.IncomeRecord{}, fmt.Errorf("invalid amount %q for %q", row[i+1], label)
		}
		record.AmountsByLabel[label] = amount
	}
	return record, nil
}

func cleanAmount(cell string) string {
	cell = strings.TrimSpace(cell)
	cell = strings.TrimPrefix(cell, "$")
	return strings.ReplaceAll(cell, ",", "")
}
