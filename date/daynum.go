package date

import "math"

// DayNum is a linear day count: days since 1970-01-01 of the proleptic
// Gregorian calendar (day 0, Jalali 1348-10-11). Negative values address
// days before the epoch.
//
// Every valid calendar date in the supported range maps to exactly one
// DayNum and back; DayNum order is date order. The int32 width is the sole
// binary interchange form.
type DayNum int32

const (
	// MinDayNum is the lowest representable day.
	MinDayNum DayNum = math.MinInt32
	// MaxDayNum is the highest representable day.
	MaxDayNum DayNum = math.MaxInt32
)

// Year magnitude that keeps intermediate int64 math far from overflow.
// Everything beyond the int32 day range is rejected later anyway.
const maxYearAbs = 100_000_000

// ToDayNum converts a calendar triple to its day number.
//
// Returns InvalidDateError if month or day is out of bounds for the year
// under calendar c, and ErrOutOfRange if the result does not fit DayNum.
func ToDayNum(c Calendar, year, month, day int) (DayNum, error) {
	if year < -maxYearAbs || year > maxYearAbs {
		return 0, ErrOutOfRange
	}
	if month < 1 || month > 12 || day < 1 || day > DaysIn(c, year, month) {
		return 0, &InvalidDateError{Calendar: c, Year: year, Month: month, Day: day}
	}
	var n int64
	switch c {
	case Jalali:
		n = jalaliToDays(int64(year), int64(month), int64(day))
	default:
		n = gregorianToDays(int64(year), int64(month), int64(day))
	}
	if n < int64(MinDayNum) || n > int64(MaxDayNum) {
		return 0, ErrOutOfRange
	}
	return DayNum(n), nil
}

// FromDayNum converts a day number back to a calendar triple.
//
// Total over the whole DayNum range.
func FromDayNum(c Calendar, n DayNum) (year, month, day int) {
	var y, m, d int64
	switch c {
	case Jalali:
		y, m, d = daysToJalali(int64(n))
	default:
		y, m, d = daysToGregorian(int64(n))
	}
	return int(y), int(m), int(d)
}

// DaysIn reports the number of days in the given month of the given year
// under calendar c. Zero for month outside [1, 12].
func DaysIn(c Calendar, year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if c == Jalali {
		return jalaliDaysIn(int64(year), month)
	}
	return gregorianDaysIn(int64(year), month)
}

// IsLeap reports whether the year has an intercalated day under calendar c.
func IsLeap(c Calendar, year int) bool {
	if c == Jalali {
		return jalaliLeap(int64(year))
	}
	return gregorianLeap(int64(year))
}

// floorDiv is division rounding towards negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod is the non-negative remainder matching floorDiv.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
