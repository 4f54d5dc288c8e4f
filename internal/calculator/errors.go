package calculator

import (
	"fmt"
	"strings"

	"github.com/segyhp/loan-earnings/internal/domain"
)

// FieldRangeError reports one loan parameter outside its allowed range. Rule
// and Limit name the bound that failed, e.g. "lte" and "200000".
type FieldRangeError struct {
	Field string `json:"field"`
	Value any    `json:"value"`
	Rule  string `json:"rule"`
	Limit string `json:"limit"`
}

func (e FieldRangeError) Error() string {
	return fmt.Sprintf("%s=%v violates %s %s", e.Field, e.Value, e.Rule, e.Limit)
}

// FieldRangeErrors is the full set of range violations found by Validate.
type FieldRangeErrors []FieldRangeError

func (e FieldRangeErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

// Fields returns the names of the invalid fields in reporting order.
func (e FieldRangeErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, fe := range e {
		fields = append(fields, fe.Field)
	}
	return fields
}

// InvalidScheduleError is returned when loan parameters cannot be amortized
// into a finite, positive schedule.
type InvalidScheduleError struct {
	Reason string
	Params domain.LoanParameters
}

func (e *InvalidScheduleError) Error() string {
	return fmt.Sprintf("invalid schedule: %s (principal=%v rate=%v%% term=%dy extra=%v)",
		e.Reason, e.Params.Principal, e.Params.AnnualRatePercent, e.Params.TermYears, e.Params.ExtraMonthlyPayment)
}

// DivisionByZeroIncomeError is returned for a label whose income is zero for a
// period inside the payoff horizon.
type DivisionByZeroIncomeError struct {
	Label  string
	Period int
}

func (e *DivisionByZeroIncomeError) Error() string {
	return fmt.Sprintf("zero income for %q in period %d", e.Label, e.Period)
}
