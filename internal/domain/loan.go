package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanParameters holds the borrower's loan inputs. AnnualRatePercent is a
// percentage (4.53 means 4.53%).
type LoanParameters struct {
	Principal           float64 `json:"principal" validate:"gte=0,lte=200000"`
	AnnualRatePercent   float64 `json:"annual_rate_percent" validate:"gte=0,lte=15"`
	TermYears           int     `json:"term_years" validate:"gte=10,lte=30"`
	ExtraMonthlyPayment float64 `json:"extra_monthly_payment" validate:"gte=0,lte=1000"`
}

// PaymentSchedule is the result of amortizing a loan. NumberOfPayments is a
// count of months and may be fractional.
type PaymentSchedule struct {
	MonthlyPayment    float64 `json:"monthly_payment"`
	NumberOfPayments  float64 `json:"number_of_payments"`
	TotalPaid         float64 `json:"total_paid"`
	TotalInterestPaid float64 `json:"total_interest_paid"`
}

// DTOs for requests and responses

type ScheduleRequest struct {
	LoanParameters
}

type ScheduleResponse struct {
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
	NumberOfPayments  decimal.Decimal `json:"number_of_payments"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	TotalInterestPaid decimal.Decimal `json:"total_interest_paid"`
}

type CalculationRequest struct {
	LoanParameters
	PrimaryCategory    string `json:"primary_category"`
	ComparisonCategory string `json:"comparison_category"`
	EarningsLevel      string `json:"earnings_level"`
	FullTime           bool   `json:"full_time"`
}

// Selection returns the category choice carried by the request.
func (r *CalculationRequest) Selection() Selection {
	return Selection{Primary: r.PrimaryCategory, Comparison: r.ComparisonCategory}
}

// Dataset returns the income dataset the request refers to.
func (r *CalculationRequest) Dataset() Dataset {
	return Dataset{EarningsLevel: r.EarningsLevel, FullTime: r.FullTime}
}

type CalculationResponse struct {
	ID                         uuid.UUID         `json:"id"`
	Dataset                    string            `json:"dataset"`
	Schedule                   ScheduleResponse  `json:"schedule"`
	Series                     []SeriesResponse  `json:"series"`
	TotalIncomeOverLoanHorizon decimal.Decimal   `json:"total_income_over_loan_horizon"`
	Breakdown                  BreakdownResponse `json:"breakdown"`
}

type SeriesResponse struct {
	Label  string          `json:"label"`
	Role   string          `json:"role"`
	Points []PointResponse `json:"points,omitempty"`
	Error  string          `json:"error,omitempty"`
}

type PointResponse struct {
	PeriodIndex          int             `json:"period_index"`
	MonthlyIncome        decimal.Decimal `json:"monthly_income"`
	IncomeToPaymentRatio decimal.Decimal `json:"income_to_payment_ratio"`
}

type BreakdownResponse struct {
	PrincipalShare decimal.Decimal `json:"principal_share"`
	InterestShare  decimal.Decimal `json:"interest_share"`
	UnusedShare    decimal.Decimal `json:"unused_share"`
	UnusedIncome   decimal.Decimal `json:"unused_income"`
	Available      bool            `json:"available"`
}
