package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies errors surfaced while summarizing an account.
type ErrorKind string

// String returns string-representation of an ErrorKind.
func (ek ErrorKind) String() string {
	return string(ek)
}

// Error kinds
const (
	KindUnknown         ErrorKind = "Unknown"
	KindIO              ErrorKind = "IO"
	KindParse           ErrorKind = "Parse"
	KindNegativeBalance ErrorKind = "NegativeBalance"
)

// IOError is returned when the account-file
// cannot be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("I/O error: %s", e.Err)
}

// Unwrap returns the underlying OS-error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Cause returns the underlying OS-error.
func (e *IOError) Cause() error {
	return e.Err
}

// ParseError is returned when the account-file content is not
// valid JSON or does not match the account-record shape.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("JSON error: %s", e.Err)
}

// Unwrap returns the underlying decode/validation error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Cause returns the underlying decode/validation error.
func (e *ParseError) Cause() error {
	return e.Err
}

// NegativeBalanceError is returned when an account's
// transactions sum to less than zero.
type NegativeBalanceError struct {
	Balance int64
}

func (e *NegativeBalanceError) Error() string {
	return fmt.Sprintf("Negative balance of %d credits", e.Balance)
}

// Kind classifies err by the first typed error in its Unwrap-chain.
func Kind(err error) ErrorKind {
	var ioErr *IOError
	var parseErr *ParseError
	var negErr *NegativeBalanceError

	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &ioErr):
		return KindIO
	case errors.As(err, &parseErr):
		return KindParse
	case errors.As(err, &negErr):
		return KindNegativeBalance
	default:
		return KindUnknown
	}
}
