package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := root()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	for _, tt := range []struct {
		args []string
		want string
	}{
		{[]string{"to-gregorian", "1403/05/28"}, "2024-08-18\n"},
		{[]string{"to-jalali", "2024-03-20"}, "1403-01-01\n"},
		{[]string{"add-days", "1403-05-28", "2"}, "1403-05-30\n"},
		{[]string{"add-months", "1400-06-31", "1"}, "1400-07-30\n"},
		{[]string{"diff", "1400-01-01", "1403-01-01"}, "1,095 days\n"},
		{[]string{"diff", "1403-01-01", "1400-01-01"}, "-1,095 days\n"},
		{[]string{"leap", "1404-01-01"}, "true\n"},
		{[]string{"leap", "1403-01-01"}, "false\n"},
		{[]string{"period-state", "1403-05-28", "29"}, "Middle\n"},
	} {
		tt := tt
		t.Run(tt.args[0]+"/"+tt.args[1], func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	for _, args := range [][]string{
		{"to-gregorian", "1403-13-01"},
		{"to-gregorian", "nope"},
		{"add-days", "1403-01-01", "many"},
	} {
		args := args
		t.Run(args[1], func(t *testing.T) {
			_, err := run(t, args...)
			require.Error(t, err)
		})
	}
}
