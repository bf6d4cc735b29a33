package service

import "math"

const (
	MonthsPerYear = 12

	// Longest term whose month count still fits in an int.
	MaxLoanYears = math.MaxInt / MonthsPerYear

	// Micro-BIC flat allowance on furnished rental income.
	MicroBICAllowance = 0.5

	cacheKeyPrefix = "sim:"
)
