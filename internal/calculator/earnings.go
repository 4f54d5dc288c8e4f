package calculator

import (
	"math"
	"slices"

	"github.com/segyhp/loan-earnings/internal/domain"
)

// LabelResult is the outcome of building one label's series. Err is set when
// the series could not be built; other labels are unaffected.
type LabelResult struct {
	Role   string
	Series domain.IncomeSeries
	Err    error
}

// SeriesSet holds one LabelResult per selected label. The primary label is
// always at index 0, the comparison label (if any) at index 1.
type SeriesSet []LabelResult

// Primary returns the primary label's result.
func (s SeriesSet) Primary() LabelResult {
	return s[0]
}

// Comparison returns the comparison label's result, if one was selected.
func (s SeriesSet) Comparison() (LabelResult, bool) {
	if len(s) < 2 {
		return LabelResult{}, false
	}
	return s[1], true
}

// HorizonYears returns the payoff horizon in whole years, rounded up.
// NumberOfPayments is truncated to two decimals first so that a payoff in
// 120.0023 months is a ten year horizon.
func HorizonYears(schedule domain.PaymentSchedule) int {
	payments := math.Trunc(schedule.NumberOfPayments*100) / 100
	return int(math.Ceil(payments / monthsPerYear))
}

// BuildSeries converts raw annual income records into monthly series for the
// selected labels, dropping every record past the payoff horizon.
func BuildSeries(records []domain.IncomeRecord, selection domain.Selection, schedule domain.PaymentSchedule) SeriesSet {
	maxPeriod := HorizonYears(schedule)

	set := make(SeriesSet, 0, 2)
	for i, label := range selection.Labels() {
		role := domain.RolePrimary
		if i > 0 {
			role = domain.RoleComparison
		}
		series, err := buildLabelSeries(records, label, maxPeriod, schedule.MonthlyPayment)
		set = append(set, LabelResult{Role: role, Series: series, Err: err})
	}
	return set
}

func buildLabelSeries(records []domain.IncomeRecord, label string, maxPeriod int, payment float64) (domain.IncomeSeries, error) {
	series := domain.IncomeSeries{Label: label, Points: []domain.IncomePoint{}}

	for _, record := range records {
		if record.Period > maxPeriod {
			continue
		}
		annual, ok := record.AmountsByLabel[label]
		if !ok {
			continue
		}
		monthly := annual / monthsPerYear
		if monthly == 0 {
			return domain.IncomeSeries{Label: label}, &DivisionByZeroIncomeError{Label: label, Period: record.Period}
		}
		series.Points = append(series.Points, domain.IncomePoint{
			PeriodIndex:          record.Period,
			MonthlyIncome:        monthly,
			IncomeToPaymentRatio: payment / monthly,
		})
	}

	slices.SortStableFunc(series.Points, func(a, b domain.IncomePoint) int {
		return a.PeriodIndex - b.PeriodIndex
	})
	return series, nil
}

// TotalIncomeOverHorizon sums the income earned while the loan is repaid.
// Whole years count twelve months of income; the final partial year counts
// only the fraction of the year spent repaying. Periods missing from the
// series contribute nothing.
func TotalIncomeOverHorizon(series domain.IncomeSeries, schedule domain.PaymentSchedule) float64 {
	years := schedule.NumberOfPayments / monthsPerYear
	horizon := HorizonYears(schedule)

	var total float64
	for period := 1; period <= horizon; period++ {
		share := 1.0
		if remaining := years - float64(period); remaining < 0 {
			share = remaining + 1
		}
		for _, point := range series.Points {
			if point.PeriodIndex == period {
				total += point.MonthlyIncome * (share * monthsPerYear)
			}
		}
	}
	return total
}
