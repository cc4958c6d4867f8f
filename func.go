package jalali

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/go-faster/errors"

	"github.com/go-faster/jalali/date"
)

// Func is a registered function descriptor.
type Func struct {
	Name string
	Args []Kind
	Ret  Kind
	Impl func(ctx context.Context, args []Value) (Value, error)
}

// check validates argument arity and kinds before dispatch.
func (f Func) check(args []Value) error {
	if len(args) != len(f.Args) {
		return &Exception{
			Code:    ErrBadArguments,
			Name:    f.Name,
			Message: fmt.Sprintf("got %d arguments, want %d", len(args), len(f.Args)),
		}
	}
	var errs error
	for i, a := range args {
		if a.Kind() != f.Args[i] {
			errs = multierr.Append(errs,
				errors.Errorf("argument %d: got %s, want %s", i, a.Kind(), f.Args[i]),
			)
		}
	}
	if errs != nil {
		return &Exception{
			Code:    ErrBadArguments,
			Name:    f.Name,
			Message: errs.Error(),
		}
	}
	return nil
}

// diffDays is signed day difference from start to end, with addition
// applied to the magnitude before the sign.
func diffDays(start, end date.Date, addition int64) int64 {
	d := int64(end.Sub(start))
	if d < 0 {
		return -(-d + addition)
	}
	return d + addition
}

// catalog builds the descriptors of every function the registry installs.
//
// Names follow the installed SQL surface, so the hosting runtime can map
// them one to one.
func catalog(now func() time.Time) []Func {
	return []Func{
		{
			Name: "jalali_date_in",
			Args: []Kind{KindStr},
			Ret:  KindDate,
			Impl: func(_ context.Context, args []Value) (Value, error) {
				d, err := date.Parse(date.Jalali, args[0].Str())
				if err != nil {
					return Value{}, err
				}
				return DateValue(d), nil
			},
		},
		{
			Name: "jalali_date_out",
			Args: []Kind{KindDate},
			Ret:  KindStr,
			Impl: func(_ context.Context, args []Value) (Value, error) {
				return StrValue(date.Format(date.Jalali, args[0].Date())), nil
			},
		},
		{
			Name: "jalali_date_to_gregorian",
			Args: []Kind{KindStr},
			Ret:  KindStr,
			Impl: func(_ context.Context, args []Value) (Value, error) {
				d, err := date.Parse(date.Jalali, args[0].Str())
				if err != nil {
					return Value{}, err
				}
				return StrValue(date.Format(date.Gregorian, d)), nil
			},
		},
		{
			Name: "gregorian_date_to_jalali",
			Args: []Kind{KindStr},
			Ret:  KindStr,
			Impl: func(_ context.Context, args []Value) (Value, error) {
				d, err := date.Parse(date.Gregorian, args[0].Str())
				if err != nil {
					return Value{}, err
				}
				return StrValue(date.Format(date.Jalali, d)), nil
			},
		},
		{
			Name: "jalali_date_add_days",
			Args: []Kind{KindDate, KindInt},
			Ret:  KindDate,
			Impl: func(_ context.Context, args []Value) (Value, error) {
				d, err := args[0].Date().AddDays(int(args[1].Int()))
				if err != nil {
					return Value{}, err
				}
				return DateValue(d), nil
			},
		},
		{
			Name: "jalali_date_add_months",
			Args: []Kind{KindDate, KindInt},
			Ret:  KindDate,
			Impl: func(_ context.Context, args []Value) (Value, error) {
				d, err := args[0].Date().AddMonths(date.Jalali, int(args[1].Int()))
				if err != nil {
					return Value{}, err
				}
				return DateValue(d), nil
			},
		},
		{
			Name: "jalali_date_diff",
			Args: []Kind{KindDate, KindDate},
			Ret:  KindInt,
			Impl: func(_ context.Context, args []Value) (Value, error) {
				return IntValue(diffDays(args[0].Date(), args[1].Date(), 0)), nil
			},
		},
		{
			Name: "jalali_date_diff_with_addition",
			Args: []Kind{KindDate, KindDate, KindInt},
			Ret:  KindInt,
			Impl: func(_ context.Context, args []Value) (Value, error) {
				return IntValue(diffDays(args[0].Date(), args[1].Date(), args[2].Int())), nil
			},
		},
		{
			Name: "jalali_date_now",
			Args: nil,
			Ret:  KindDate,
			Impl: func(_ context.Context, _ []Value) (Value, error) {
				d, err := date.FromTime(now())
				if err != nil {
					return Value{}, err
				}
				return DateValue(d), nil
			},
		},
		{
			Name: "jalali_date_is_leap_year",
			Args: []Kind{KindDate},
			Ret:  KindBool,
			Impl: func(_ context.Context, args []Value) (Value, error) {
				return BoolValue(args[0].Date().IsLeapYear(date.Jalali)), nil
			},
		},
		{
			Name: "jalali_date_period_state",
			Args: []Kind{KindDate, KindInt},
			Ret:  KindStr,
			Impl: func(_ context.Context, args []Value) (Value, error) {
				s := args[0].Date().PeriodState(int(args[1].Int()))
				return StrValue(s.String()), nil
			},
		},
		{
			Name: "jalali_date_cmp",
			Args: []Kind{KindDate, KindDate},
			Ret:  KindInt,
			Impl: func(_ context.Context, args []Value) (Value, error) {
				return IntValue(int64(args[0].Date().Compare(args[1].Date()))), nil
			},
		},
	}
}
