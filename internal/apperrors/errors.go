package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// Input errors. Each one also matches ErrValidation through errors.Is.
var (
	// ErrMalformedLine is returned when a line does not hold exactly two comma separated fields.
	ErrMalformedLine = newKind("malformed line", ErrValidation)

	// ErrUnparsableAmount is returned when a field cannot be converted to a finite decimal.
	ErrUnparsableAmount = newKind("unparsable amount", ErrValidation)

	// ErrNegativeAmount is returned when an owed or paid amount is below zero.
	ErrNegativeAmount = newKind("negative amount", ErrValidation)

	// ErrAmountBelowMinorUnit is returned when an amount, zero included, is smaller than the currency's smallest denomination.
	ErrAmountBelowMinorUnit = newKind("amount below minor unit", ErrValidation)

	// ErrInsufficientPayment is returned when the paid amount is less than the owed amount.
	ErrInsufficientPayment = newKind("insufficient payment", ErrValidation)

	// ErrAmountTooLarge is returned when an amount would need more pieces of one denomination than an int64 can count.
	ErrAmountTooLarge = newKind("amount too large", ErrValidation)
)

// ErrUnknownCurrency is returned when a currency code is not in the catalog. It matches ErrNotFound.
var ErrUnknownCurrency = newKind("unknown currency code", ErrNotFound)

// Internal errors. These signal a broken precondition, not bad user input.
var (
	// ErrNonTerminatingDecomposition is returned when the change is not a multiple of the minor unit.
	ErrNonTerminatingDecomposition = errors.New("non-terminating decomposition")

	// ErrUnsortedDenominations is returned when denominations are not strictly descending.
	ErrUnsortedDenominations = errors.New("denominations are not strictly descending")
)

// kindError is a sentinel that also reports a broader category.
type kindError struct {
	msg    string
	parent error
}

func newKind(msg string, parent error) error {
	return &kindError{msg: msg, parent: parent}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.parent }

// LineError ties an input error to the line of the flat file that caused it.
type LineError struct {
	Line int    // 1-based line number
	Text string // line text with terminators stripped
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d '%s': %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// NewLineError wraps err with the line it came from.
func NewLineError(line int, text string, err error) *LineError {
	return &LineError{Line: line, Text: text, Err: err}
}
