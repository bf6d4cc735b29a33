package service

import (
	"fmt"
	"math"

	"rental-sim/domain"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// MonthlyPayment returns the constant monthly payment of a fully amortizing loan.
// The result is not rounded and carries the sign of principal.
func MonthlyPayment(principal, annualRate float64, years int) (float64, error) {
	if years <= 0 || years > MaxLoanYears {
		return 0, fmt.Errorf("%w (got %d)", ErrInvalidLoanTerm, years)
	}

	n := float64(years) * MonthsPerYear

	if annualRate == 0 {
		return principal / n, nil
	}

	r := annualRate / MonthsPerYear
	return principal * r / (1 - math.Pow(1+r, -n)), nil
}

// CalculateLoan summarizes a loan for display, rounded to cents.
func CalculateLoan(input domain.LoanInput) (domain.LoanResult, error) {
	if !finite(input.Principal) {
		return domain.LoanResult{}, &InvalidParameterError{Field: "principal", Reason: nonFiniteInput}
	}
	if !finite(input.AnnualRate) {
		return domain.LoanResult{}, &InvalidParameterError{Field: "annual_rate", Reason: nonFiniteInput}
	}

	cuota, err := MonthlyPayment(input.Principal, input.AnnualRate, input.Years)
	if err != nil {
		return domain.LoanResult{}, err
	}

	total := cuota * float64(input.Years) * MonthsPerYear
	if !finite(cuota) || !finite(total) || !finite(total-input.Principal) {
		return domain.LoanResult{}, &InvalidParameterError{Field: "annual_rate", Reason: nonFiniteResult}
	}

	return domain.LoanResult{
		MonthlyPayment:    roundTo2Decimals(cuota),
		AnnualDebtService: roundTo2Decimals(cuota * MonthsPerYear),
		TotalPayment:      roundTo2Decimals(total),
		TotalInterest:     roundTo2Decimals(total - input.Principal),
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

