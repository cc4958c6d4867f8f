package jalali

import (
	"fmt"

	"github.com/go-faster/errors"

	"github.com/go-faster/jalali/date"
)

// Error is a stable binding-level error code.
type Error int

// Possible values of Error.
//
//go:generate go run github.com/dmarkham/enumer -transform snake_upper -type Error -trimprefix Err -output error_enum.go
const (
	ErrUnknownFunction Error = iota
	ErrBadArguments
	ErrInvalidDate
	ErrOutOfRange
	ErrParse
)

// Exception is a failed call with a stable error code.
type Exception struct {
	Code    Error  // stable code, e.g. INVALID_DATE
	Name    string // function name, when known
	Message string
}

// Error implements the error interface.
func (e *Exception) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Name, e.Message)
}

// AsException finds first *Exception in err chain.
func AsException(err error) (*Exception, bool) {
	var e *Exception
	ok := errors.As(err, &e)
	return e, ok
}

// toException maps engine errors to coded exceptions, leaving
// unrecognized errors as is.
func toException(fn string, err error) error {
	var (
		invalid  *date.InvalidDateError
		parseErr *date.ParseError
	)
	switch {
	case errors.Is(err, date.ErrOutOfRange):
		return &Exception{Code: ErrOutOfRange, Name: fn, Message: err.Error()}
	case errors.As(err, &invalid):
		return &Exception{Code: ErrInvalidDate, Name: fn, Message: err.Error()}
	case errors.As(err, &parseErr):
		return &Exception{Code: ErrParse, Name: fn, Message: err.Error()}
	default:
		return errors.Wrap(err, fn)
	}
}
