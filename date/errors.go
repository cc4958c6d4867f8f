package date

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrOutOfRange means that a day number or arithmetic result does not fit
// the DayNum width.
var ErrOutOfRange = errors.New("day number out of range")

// InvalidDateError means that a (year, month, day) triple violates the
// month or day bounds of its calendar.
type InvalidDateError struct {
	Calendar Calendar
	Year     int
	Month    int
	Day      int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid %s date %04d-%02d-%02d", e.Calendar, e.Year, e.Month, e.Day)
}

// ParseError means that input does not match the YYYY-MM-DD grammar.
//
// Pos is the byte offset of the first offending byte; for premature end of
// input it equals len(input).
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse: %s at %d", e.Msg, e.Pos)
}
