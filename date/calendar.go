// Package date implements Solar Hijri (Jalali) and proleptic Gregorian
// calendar dates over a single linear day number.
package date

//go:generate go run github.com/dmarkham/enumer -type Calendar -output calendar_enum.go

// Calendar selects interpretation of a (year, month, day) triple.
type Calendar byte

const (
	// Gregorian is the proleptic Gregorian calendar.
	Gregorian Calendar = iota
	// Jalali is the Solar Hijri calendar with the arithmetic
	// 2820-year cycle intercalation rule.
	Jalali
)
