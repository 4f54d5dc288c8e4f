package calculator

import (
	"errors"

	"github.com/segyhp/loan-earnings/internal/domain"
)

// ErrZeroHorizonIncome is returned when there is no income to split.
var ErrZeroHorizonIncome = errors.New("no income over the loan horizon")

// Breakdown splits the income earned over the loan horizon into the part
// spent on principal, on interest, and the part left over.
type Breakdown struct {
	PrincipalShare float64
	InterestShare  float64
	UnusedShare    float64
	UnusedIncome   float64
}

// ComputeBreakdown returns the shares of income over the horizon taken by
// principal and interest. It fails with ErrZeroHorizonIncome rather than
// dividing by zero.
func ComputeBreakdown(principal float64, schedule domain.PaymentSchedule, income float64) (Breakdown, error) {
	if income == 0 {
		return Breakdown{}, ErrZeroHorizonIncome
	}

	unused := income - schedule.TotalInterestPaid - principal
	return Breakdown{
		PrincipalShare: principal / income,
		InterestShare:  schedule.TotalInterestPaid / income,
		UnusedShare:    unused / income,
		UnusedIncome:   unused,
	}, nil
}
