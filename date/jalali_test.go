package date

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestJalaliLeap(t *testing.T) {
	t.Parallel()
	leaps := map[int]bool{
		1362: true,
		1366: true,
		1370: true,
		1371: false, // boundary: remainder exactly 682
		1374: false,
		1375: true, // 33-year sub-cycle boundary, 5-year gap from 1370
		1376: false,
		1379: true,
		1383: true,
		1387: true,
		1391: true,
		1395: true,
		1399: true,
		1403: false,
		1404: true,
		1407: false,
		1408: true,
	}
	for y, leap := range leaps {
		assert.Equal(t, leap, IsLeap(Jalali, y), "year %d", y)
	}
}

func TestJalaliDaysIn(t *testing.T) {
	t.Parallel()
	for m := 1; m <= 6; m++ {
		assert.Equal(t, 31, DaysIn(Jalali, 1400, m))
	}
	for m := 7; m <= 11; m++ {
		assert.Equal(t, 30, DaysIn(Jalali, 1400, m))
	}
	assert.Equal(t, 29, DaysIn(Jalali, 1376, 12))
	assert.Equal(t, 30, DaysIn(Jalali, 1375, 12))
	assert.Equal(t, 0, DaysIn(Jalali, 1400, 13))
}

// Year lengths must agree with the leap rule everywhere.
func TestJalaliYearLength(t *testing.T) {
	t.Parallel()
	for y := -500; y <= 3000; y++ {
		a, err := ToDayNum(Jalali, y, 1, 1)
		require.NoError(t, err)
		b, err := ToDayNum(Jalali, y+1, 1, 1)
		require.NoError(t, err)
		want := DayNum(365)
		if IsLeap(Jalali, y) {
			want = 366
		}
		require.Equal(t, want, b-a, "year %d", y)
	}
}

func TestJalaliFixedPoints(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		n         DayNum
		jy, jm, jd int
		gy, gm, gd int
	}{
		{0, 1348, 10, 11, 1970, 1, 1},
		{-1, 1348, 10, 10, 1969, 12, 31},
		{3366, 1358, 1, 1, 1979, 3, 21}, // Nowruz 1358
		{9940, 1375, 12, 30, 1997, 3, 20},
		{18707, 1400, 1, 1, 2021, 3, 21},
		{18892, 1400, 6, 31, 2021, 9, 22},
		{19802, 1403, 1, 1, 2024, 3, 20},
		{19953, 1403, 5, 28, 2024, 8, 18},
	} {
		jn, err := ToDayNum(Jalali, tc.jy, tc.jm, tc.jd)
		require.NoError(t, err)
		gn, err := ToDayNum(Gregorian, tc.gy, tc.gm, tc.gd)
		require.NoError(t, err)
		assert.Equal(t, tc.n, jn)
		assert.Equal(t, tc.n, gn)

		y, m, d := FromDayNum(Jalali, tc.n)
		assert.Equal(t, [3]int{tc.jy, tc.jm, tc.jd}, [3]int{y, m, d})
	}
}

func TestJalaliLeapBoundary(t *testing.T) {
	t.Parallel()
	_, err := ToDayNum(Jalali, 1375, 12, 30)
	require.NoError(t, err)

	_, err = ToDayNum(Jalali, 1376, 12, 30)
	var invalid *InvalidDateError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, Jalali, invalid.Calendar)
	require.Equal(t, 1376, invalid.Year)
}

func TestJalaliRoundTrip(t *testing.T) {
	t.Parallel()
	var g errgroup.Group
	for _, span := range [][2]int{{-200, 200}, {1178, 1633}, {2780, 2900}} {
		span := span
		g.Go(func() error {
			for y := span[0]; y <= span[1]; y++ {
				for m := 1; m <= 12; m++ {
					for d := 1; d <= DaysIn(Jalali, y, m); d++ {
						n, err := ToDayNum(Jalali, y, m, d)
						if err != nil {
							return errors.Wrap(err, "to day number")
						}
						gy, gm, gd := FromDayNum(Jalali, n)
						if gy != y || gm != m || gd != d {
							return errors.Errorf("%04d-%02d-%02d -> %d -> %04d-%02d-%02d",
								y, m, d, n, gy, gm, gd)
						}
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// Both adapters must map the same day number to the same real day.
func TestCrossCalendarAgreement(t *testing.T) {
	t.Parallel()
	for n := DayNum(-150000); n <= 150000; n++ {
		jy, jm, jd := FromDayNum(Jalali, n)
		gy, gm, gd := FromDayNum(Gregorian, n)

		jn, err := ToDayNum(Jalali, jy, jm, jd)
		if err != nil {
			t.Fatalf("jalali %04d-%02d-%02d: %v", jy, jm, jd, err)
		}
		gn, err := ToDayNum(Gregorian, gy, gm, gd)
		if err != nil {
			t.Fatalf("gregorian %04d-%02d-%02d: %v", gy, gm, gd, err)
		}
		if jn != n || gn != n {
			t.Fatalf("day %d: jalali %d, gregorian %d", n, jn, gn)
		}
	}
}
