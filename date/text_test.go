package date

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-faster/jalali/internal/gold"
)

func TestMain(m *testing.M) {
	gold.Init()
	os.Exit(m.Run())
}

func TestParse(t *testing.T) {
	t.Parallel()
	t.Run("Gregorian", func(t *testing.T) {
		d, err := Parse(Gregorian, "1979-03-21")
		require.NoError(t, err)
		assert.Equal(t, DayNum(3366), d.DayNum())
	})
	t.Run("Jalali", func(t *testing.T) {
		d, err := Parse(Jalali, "1358-01-01")
		require.NoError(t, err)
		assert.Equal(t, DayNum(3366), d.DayNum())
	})
	t.Run("NegativeYear", func(t *testing.T) {
		d, err := Parse(Gregorian, "-0001-12-31")
		require.NoError(t, err)
		y, m, day := d.Gregorian()
		assert.Equal(t, [3]int{-1, 12, 31}, [3]int{y, m, day})
	})
	t.Run("WideYear", func(t *testing.T) {
		d, err := Parse(Gregorian, "12345-06-07")
		require.NoError(t, err)
		assert.Equal(t, "12345-06-07", d.String())
	})
}

func TestParseInvalidDate(t *testing.T) {
	t.Parallel()
	var invalid *InvalidDateError
	_, err := Parse(Jalali, "1400-13-01")
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 13, invalid.Month)

	_, err = Parse(Jalali, "1376-12-30")
	require.ErrorAs(t, err, &invalid)

	_, err = Parse(Gregorian, "2023-02-29")
	require.ErrorAs(t, err, &invalid)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		input string
		pos   int
	}{
		{"", 0},
		{"-", 1},
		{"140-01-01", 3},
		{"1400", 4},
		{"1400-", 5},
		{"1400-2-1", 6},
		{"1400-02", 7},
		{"1400-02-", 8},
		{"1400-02-3a", 9},
		{"1400/02/03", 4},
		{"1400-02-03 ", 10},
		{" 1400-02-03", 0},
	} {
		tc := tc
		t.Run(fmt.Sprintf("%q", tc.input), func(t *testing.T) {
			_, err := Parse(Jalali, tc.input)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tc.pos, parseErr.Pos)
		})
	}
}

func TestParseOutOfRange(t *testing.T) {
	t.Parallel()
	_, err := Parse(Gregorian, "999999999-01-01")
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFormatParseIdempotent(t *testing.T) {
	t.Parallel()
	for _, c := range CalendarValues() {
		for _, s := range []string{
			"1358-01-01",
			"0001-01-01",
			"-0621-03-01",
			"1375-12-29",
			"2024-02-29",
		} {
			d, err := Parse(c, s)
			require.NoError(t, err, "%s %q", c, s)
			once := Format(c, d)
			again, err := Parse(c, once)
			require.NoError(t, err)
			require.Equal(t, once, Format(c, again))
			require.Equal(t, s, once)
		}
	}
}

func TestFormatGolden(t *testing.T) {
	var sb strings.Builder
	for _, n := range []DayNum{-1, 0, 3366, 9940, 18707, 18892, 19802, 19953} {
		d := New(n)
		fmt.Fprintf(&sb, "%d\t%s\t%s\n", n, Format(Gregorian, d), Format(Jalali, d))
	}
	gold.Str(t, sb.String(), "conversions.txt")
}
