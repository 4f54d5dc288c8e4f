package domain

import (
	"strings"
	"time"
)

const (
	RolePrimary    = "primary"
	RoleComparison = "comparison"
)

const DefaultEarningsLevel = "median"

// IncomeRecord is one row of an income dataset: annual amounts per label for
// a year offset from the loan start.
type IncomeRecord struct {
	Period         int                `json:"period"`
	AmountsByLabel map[string]float64 `json:"amounts_by_label"`
}

// IncomePoint is a single year of a series.
type IncomePoint struct {
	PeriodIndex          int     `json:"period_index"`
	MonthlyIncome        float64 `json:"monthly_income"`
	IncomeToPaymentRatio float64 `json:"income_to_payment_ratio"`
}

// IncomeSeries holds the points of one label ordered by PeriodIndex.
type IncomeSeries struct {
	Label  string        `json:"label"`
	Points []IncomePoint `json:"points"`
}

// Selection is the user's category choice. Comparison may be empty.
type Selection struct {
	Primary    string
	Comparison string
}

// Labels returns the selected labels, primary first.
func (s Selection) Labels() []string {
	if s.Comparison == "" {
		return []string{s.Primary}
	}
	return []string{s.Primary, s.Comparison}
}

// Dataset identifies an income table by earnings level and employment type.
type Dataset struct {
	EarningsLevel string `validate:"required,alphanum,lowercase"`
	FullTime      bool
}

// Key returns the storage key, e.g. "earnings_median" or
// "earnings_median_fulltime".
func (d Dataset) Key() string {
	level := d.EarningsLevel
	if level == "" {
		level = DefaultEarningsLevel
	}
	key := "earnings_" + level
	if d.FullTime {
		key += "_fulltime"
	}
	return key
}

// ParseDatasetKey is the inverse of Dataset.Key.
func ParseDatasetKey(key string) (Dataset, bool) {
	rest, ok := strings.CutPrefix(key, "earnings_")
	if !ok || rest == "" {
		return Dataset{}, false
	}
	var d Dataset
	if level, found := strings.CutSuffix(rest, "_fulltime"); found {
		d.FullTime = true
		rest = level
	}
	if rest == "" {
		return Dataset{}, false
	}
	d.EarningsLevel = rest
	return d, true
}

// Category groups labels that share a "Group - Name" prefix. Top-level labels
// have no Options.
type Category struct {
	Name    string   `json:"name"`
	Options []string `json:"options,omitempty"`
}

// EarningsTable is a full income dataset: its labels in column order and its
// records ordered by period.
type EarningsTable struct {
	Dataset    string         `json:"dataset"`
	Labels     []string       `json:"labels"`
	Records    []IncomeRecord `json:"records"`
	ImportID   string         `json:"import_id,omitempty"`
	ImportedAt time.Time      `json:"imported_at"`
}

const groupSeparator = " - "

// GroupCategories groups "Group - Name" labels under their group and keeps
// other labels at the top level, in first-seen order.
func GroupCategories(labels []string) []Category {
	categories := make([]Category, 0, len(labels))
	groupIndex := make(map[string]int)

	for _, label := range labels {
		group, option, ok := strings.Cut(label, groupSeparator)
		if !ok || group == "" {
			categories = append(categories, Category{Name: label})
			continue
		}
		idx, exists := groupIndex[group]
		if !exists {
			idx = len(categories)
			groupIndex[group] = idx
			categories = append(categories, Category{Name: group})
		}
		categories[idx].Options = append(categories[idx].Options, option)
	}
	return categories
}
