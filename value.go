package jalali

import (
	"fmt"
	"strconv"

	"github.com/go-faster/jalali/date"
)

// Kind is a tag of Value variants.
type Kind byte

// Possible values of Kind.
//
//go:generate go run github.com/dmarkham/enumer -type Kind -trimprefix Kind -output kind_enum.go
const (
	KindDate Kind = iota
	KindInt
	KindStr
	KindBool
)

// Value is a tagged union of argument and result types.
//
// The zero Value is a date at the epoch.
type Value struct {
	kind Kind
	date date.Date
	num  int64
	str  string
	b    bool
}

// DateValue wraps d.
func DateValue(d date.Date) Value {
	return Value{kind: KindDate, date: d}
}

// IntValue wraps v.
func IntValue(v int64) Value {
	return Value{kind: KindInt, num: v}
}

// StrValue wraps s.
func StrValue(s string) Value {
	return Value{kind: KindStr, str: s}
}

// BoolValue wraps b.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// Date returns the date variant. Valid only when Kind is KindDate.
func (v Value) Date() date.Date { return v.date }

// Int returns the integer variant. Valid only when Kind is KindInt.
func (v Value) Int() int64 { return v.num }

// Str returns the string variant. Valid only when Kind is KindStr.
func (v Value) Str() string { return v.str }

// Bool returns the boolean variant. Valid only when Kind is KindBool.
func (v Value) Bool() bool { return v.b }

// String implements fmt.Stringer for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindDate:
		return v.date.String()
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindStr:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return fmt.Sprintf("Value(%d)", v.kind)
	}
}
