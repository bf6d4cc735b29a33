package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLoanTerm  = errors.New("invalid loan term: years must be positive and not overflow the month count")
	ErrInvalidParameter = errors.New("invalid parameter")
)

const (
	nonFiniteInput  = "not a finite number"
	nonFiniteResult = "value makes the computation overflow"
)

// InvalidParameterError names the ParameterSet field that broke the contract.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Reason)
}

func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}
