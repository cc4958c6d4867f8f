// Command jalali converts and inspects Solar Hijri dates.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-faster/jalali"
	"github.com/go-faster/jalali/internal/version"
)

// normalize accepts slash-separated input for convenience.
func normalize(s string) string {
	return strings.ReplaceAll(s, "/", "-")
}

type app struct {
	lg  *zap.Logger
	reg *jalali.Registry
}

func (a *app) call(cmd *cobra.Command, fn string, args ...jalali.Value) (jalali.Value, error) {
	res, err := a.reg.Do(cmd.Context(), jalali.Call{Func: fn, Args: args})
	if err != nil {
		if e, ok := jalali.AsException(err); ok {
			return jalali.Value{}, fmt.Errorf("%s", e.Message)
		}
		return jalali.Value{}, err
	}
	a.lg.Debug("Call done",
		zap.String("call_id", res.CallID),
		zap.String("function", fn),
	)
	return res.Value, nil
}

func (a *app) parseDate(cmd *cobra.Command, fn, s string) (jalali.Value, error) {
	return a.call(cmd, fn, jalali.StrValue(normalize(s)))
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return n, nil
}

func root() *cobra.Command {
	a := &app{}
	var debug bool

	cmd := &cobra.Command{
		Use:           "jalali",
		Short:         "Solar Hijri date toolbox",
		Version:       version.Get().Raw,
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.lg = zap.NewNop()
			if debug {
				lg, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				a.lg = lg
			}
			reg, err := jalali.New(jalali.Options{Logger: a.lg})
			if err != nil {
				return err
			}
			a.reg = reg
			return nil
		},
	}
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "to-gregorian <jalali-date>",
			Short: "Convert a Jalali date to Gregorian",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := a.parseDate(cmd, "jalali_date_to_gregorian", args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v.Str())
				return nil
			},
		},
		&cobra.Command{
			Use:   "to-jalali <gregorian-date>",
			Short: "Convert a Gregorian date to Jalali",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := a.parseDate(cmd, "gregorian_date_to_jalali", args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v.Str())
				return nil
			},
		},
		&cobra.Command{
			Use:   "add-days <jalali-date> <days>",
			Short: "Shift a Jalali date by whole days",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := a.parseDate(cmd, "jalali_date_in", args[0])
				if err != nil {
					return err
				}
				n, err := parseInt(args[1])
				if err != nil {
					return err
				}
				v, err := a.call(cmd, "jalali_date_add_days", d, jalali.IntValue(n))
				if err != nil {
					return err
				}
				out, err := a.call(cmd, "jalali_date_out", v)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out.Str())
				return nil
			},
		},
		&cobra.Command{
			Use:   "add-months <jalali-date> <months>",
			Short: "Shift a Jalali date by calendar months, clamping the day",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := a.parseDate(cmd, "jalali_date_in", args[0])
				if err != nil {
					return err
				}
				n, err := parseInt(args[1])
				if err != nil {
					return err
				}
				v, err := a.call(cmd, "jalali_date_add_months", d, jalali.IntValue(n))
				if err != nil {
					return err
				}
				out, err := a.call(cmd, "jalali_date_out", v)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out.Str())
				return nil
			},
		},
		&cobra.Command{
			Use:   "diff <start> <end>",
			Short: "Signed day count from start to end",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				start, err := a.parseDate(cmd, "jalali_date_in", args[0])
				if err != nil {
					return err
				}
				end, err := a.parseDate(cmd, "jalali_date_in", args[1])
				if err != nil {
					return err
				}
				v, err := a.call(cmd, "jalali_date_diff", start, end)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s days\n", humanize.Comma(v.Int()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "now",
			Short: "Print today as a Jalali date",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := a.call(cmd, "jalali_date_now")
				if err != nil {
					return err
				}
				out, err := a.call(cmd, "jalali_date_out", v)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out.Str())
				return nil
			},
		},
		&cobra.Command{
			Use:   "leap <jalali-date>",
			Short: "Report whether the Jalali year of the date is a leap year",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := a.parseDate(cmd, "jalali_date_in", args[0])
				if err != nil {
					return err
				}
				v, err := a.call(cmd, "jalali_date_is_leap_year", d)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v.Bool())
				return nil
			},
		},
		&cobra.Command{
			Use:   "period-state <jalali-date> <start-day>",
			Short: "Classify a date against a monthly period anchored on start-day",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := a.parseDate(cmd, "jalali_date_in", args[0])
				if err != nil {
					return err
				}
				n, err := parseInt(args[1])
				if err != nil {
					return err
				}
				v, err := a.call(cmd, "jalali_date_period_state", d, jalali.IntValue(n))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v.Str())
				return nil
			},
		},
	)

	return cmd
}

func main() {
	if err := root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
