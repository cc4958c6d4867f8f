package date

// Proleptic Gregorian conversion via 400-year era arithmetic.
//
// Days are counted from 1970-01-01; 719468 is the distance from the era
// origin 0000-03-01 to the epoch.

const unixEpochFromEra = 719468

var gregorianMonthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func gregorianLeap(y int64) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

func gregorianDaysIn(y int64, m int) int {
	if m == 2 && gregorianLeap(y) {
		return 29
	}
	return gregorianMonthDays[m-1]
}

func gregorianToDays(y, m, d int64) int64 {
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400 // [0, 399]
	var mp int64
	if m > 2 {
		mp = m - 3
	} else {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + d - 1          // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*146097 + doe - unixEpochFromEra
}

func daysToGregorian(n int64) (y, m, d int64) {
	z := n + unixEpochFromEra
	era := floorDiv(z, 146097)
	doe := z - era*146097 // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = doy - (153*mp+2)/5 + 1
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}
