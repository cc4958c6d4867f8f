package date

import (
	"time"
)

// Date is an immutable date value backed by a single DayNum.
//
// The calendar system is a presentation concern: the value itself carries
// no calendar tag. Zero value is the epoch day, 1970-01-01.
//
// Date is comparable and safe to share between goroutines; all arithmetic
// returns new values.
type Date struct {
	n DayNum
}

// New returns the Date for a raw day number.
func New(n DayNum) Date { return Date{n: n} }

// FromGregorian returns the Date denoted by a proleptic Gregorian triple.
func FromGregorian(year, month, day int) (Date, error) {
	n, err := ToDayNum(Gregorian, year, month, day)
	if err != nil {
		return Date{}, err
	}
	return Date{n: n}, nil
}

// FromJalali returns the Date denoted by a Solar Hijri triple.
func FromJalali(year, month, day int) (Date, error) {
	n, err := ToDayNum(Jalali, year, month, day)
	if err != nil {
		return Date{}, err
	}
	return Date{n: n}, nil
}

// FromTime returns the Date of t in UTC, discarding time of day.
func FromTime(t time.Time) (Date, error) {
	y, m, d := t.UTC().Date()
	return FromGregorian(y, int(m), d)
}

// Nowruz returns the first day of the given Jalali year.
func Nowruz(year int) (Date, error) {
	return FromJalali(year, 1, 1)
}

// DayNum returns the underlying day number.
func (d Date) DayNum() DayNum { return d.n }

// In returns the (year, month, day) fields of d under calendar c.
func (d Date) In(c Calendar) (year, month, day int) {
	return FromDayNum(c, d.n)
}

// Gregorian returns proleptic Gregorian fields.
func (d Date) Gregorian() (year, month, day int) { return d.In(Gregorian) }

// Jalali returns Solar Hijri fields.
func (d Date) Jalali() (year, month, day int) { return d.In(Jalali) }

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) (Date, error) {
	v := int64(d.n) + int64(n)
	if v < int64(MinDayNum) || v > int64(MaxDayNum) {
		return Date{}, ErrOutOfRange
	}
	return Date{n: DayNum(v)}, nil
}

// AddMonths returns d shifted by n calendar months under calendar c.
//
// If the day of month does not exist in the target month it is clamped to
// the last valid day: Jalali 1400-06-31 plus one month is 1400-07-30, not
// a day of month 8.
func (d Date) AddMonths(c Calendar, n int) (Date, error) {
	y, m, day := d.In(c)
	t := int64(y)*12 + int64(m) - 1 + int64(n)
	ty := floorDiv(t, 12)
	tm := int(floorMod(t, 12)) + 1
	if ty < -maxYearAbs || ty > maxYearAbs {
		return Date{}, ErrOutOfRange
	}
	if max := DaysIn(c, int(ty), tm); day > max {
		day = max
	}
	nn, err := ToDayNum(c, int(ty), tm, day)
	if err != nil {
		return Date{}, err
	}
	return Date{n: nn}, nil
}

// AddYears returns d shifted by n calendar years under calendar c, with
// the same clamp policy as AddMonths (leap-day alignment).
func (d Date) AddYears(c Calendar, n int) (Date, error) {
	return d.AddMonths(c, n*12)
}

// Compare returns -1 if d is before o, 0 if equal and 1 if after.
func (d Date) Compare(o Date) int {
	switch {
	case d.n < o.n:
		return -1
	case d.n > o.n:
		return 1
	default:
		return 0
	}
}

// Sub returns the signed day distance d - o.
func (d Date) Sub(o Date) int {
	return int(int64(d.n) - int64(o.n))
}

// Weekday returns the day of week; the epoch day is a Thursday.
func (d Date) Weekday() time.Weekday {
	return time.Weekday(floorMod(int64(d.n)+4, 7))
}

// DayOfYear returns the 1-based ordinal of d within its year under c.
func (d Date) DayOfYear(c Calendar) int {
	y, _, _ := d.In(c)
	var first int64
	if c == Jalali {
		first = jalaliToDays(int64(y), 1, 1)
	} else {
		first = gregorianToDays(int64(y), 1, 1)
	}
	return int(int64(d.n)-first) + 1
}

// IsLeapYear reports whether the year of d under c is a leap year.
func (d Date) IsLeapYear(c Calendar) bool {
	y, _, _ := d.In(c)
	return IsLeap(c, y)
}

// Time returns the starting moment of d in UTC.
func (d Date) Time() time.Time {
	return time.Unix(int64(d.n)*24*60*60, 0).UTC()
}

// String returns the canonical Gregorian text form.
func (d Date) String() string {
	return Format(Gregorian, d)
}

// MarshalText encodes d in the canonical Gregorian text form.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes the canonical Gregorian text form.
func (d *Date) UnmarshalText(text []byte) error {
	v, err := Parse(Gregorian, string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
