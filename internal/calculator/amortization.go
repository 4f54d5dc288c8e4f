package calculator

import (
	"math"

	"github.com/segyhp/loan-earnings/internal/domain"
	"github.com/segyhp/loan-earnings/pkg/utils"
)

const (
	monthsPerYear    = 12
	currencyDecimals = 2
)

// ComputeSchedule amortizes the loan described by params.
//
// With a zero rate the principal is split evenly over the term and any extra
// payment is ignored. Otherwise the standard annuity payment plus the extra
// monthly payment is used, and the number of payments is solved for that
// payment, so extra payments shorten the schedule.
func ComputeSchedule(params domain.LoanParameters) (domain.PaymentSchedule, error) {
	rate := params.AnnualRatePercent / 100
	months := float64(params.TermYears * monthsPerYear)

	var payment float64
	if rate == 0 {
		payment = params.Principal / months
	} else {
		monthlyRate := rate / monthsPerYear
		payment = (monthlyRate*params.Principal)/(1-math.Pow(1+monthlyRate, -months)) + params.ExtraMonthlyPayment
	}

	payment = RoundCurrency(payment, currencyDecimals)
	if !utils.IsFinite(payment) || payment <= 0 {
		return domain.PaymentSchedule{}, &InvalidScheduleError{Reason: "monthly payment is not positive", Params: params}
	}

	payments, err := numberOfPayments(payment, params, rate)
	if err != nil {
		return domain.PaymentSchedule{}, err
	}

	totalPaid := payment * payments
	schedule := domain.PaymentSchedule{
		MonthlyPayment:    payment,
		NumberOfPayments:  payments,
		TotalPaid:         totalPaid,
		TotalInterestPaid: totalPaid - params.Principal,
	}
	if !utils.IsFinite(schedule.TotalPaid) || !utils.IsFinite(schedule.TotalInterestPaid) {
		return domain.PaymentSchedule{}, &InvalidScheduleError{Reason: "totals are not finite", Params: params}
	}

	return schedule, nil
}

func numberOfPayments(payment float64, params domain.LoanParameters, rate float64) (float64, error) {
	if rate == 0 {
		return params.Principal / payment, nil
	}

	monthlyRate := rate / monthsPerYear
	perRate := payment / monthlyRate
	arg := perRate / (perRate - params.Principal)
	if !utils.IsFinite(arg) || arg <= 0 {
		return 0, &InvalidScheduleError{Reason: "payment does not cover monthly interest", Params: params}
	}

	payments := math.Log(arg) / math.Log(1+monthlyRate)
	if !utils.IsFinite(payments) || payments < 0 {
		return 0, &InvalidScheduleError{Reason: "number of payments is not finite", Params: params}
	}
	return payments, nil
}
