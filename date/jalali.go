package date

// Solar Hijri conversion using the arithmetic 2820-year grand cycle rule
// (Birashk). The cycle carries 683 leap years in 1029983 days; within it
// the familiar 33-year sub-cycle pattern emerges. No lookup tables, so the
// rule stays exact arbitrarily far from the present.
//
// Years are proleptic in both directions with a year zero, mirroring the
// Gregorian adapter, so the triple<->day mapping stays a bijection.
//
// Epoch alignment: Jalali 0001-01-01 is 19 March 622 CE (proleptic
// Gregorian); with days counted from 1970-01-01 that puts Jalali
// 1358-01-01 at day 3366, which is Gregorian 1979-03-21.

const (
	daysPer2820Years = 1029983

	// Distance from the Jalali epoch to 1970-01-01, folded into the
	// conversion as a single constant.
	jalaliEpochShift = -492268
)

func jalaliLeap(y int64) bool {
	return (floorMod(y-474, 2820)+474+38)*682%2816 < 682
}

func jalaliDaysIn(y int64, m int) int {
	switch {
	case m <= 6:
		return 31
	case m <= 11:
		return 30
	case jalaliLeap(y):
		return 30
	default:
		return 29
	}
}

func jalaliToDays(y, m, d int64) int64 {
	epbase := y - 474
	epyear := 474 + floorMod(epbase, 2820)
	var moff int64
	if m <= 7 {
		moff = (m - 1) * 31
	} else {
		moff = (m-1)*30 + 6
	}
	return d + moff +
		(epyear*682-110)/2816 +
		(epyear-1)*365 +
		floorDiv(epbase, 2820)*daysPer2820Years +
		jalaliEpochShift
}

func daysToJalali(n int64) (y, m, d int64) {
	depoch := n - jalaliToDays(475, 1, 1)
	cycle := floorDiv(depoch, daysPer2820Years)
	cyear := floorMod(depoch, daysPer2820Years)

	var ycycle int64
	if cyear == daysPer2820Years-1 {
		// Last day of the grand cycle belongs to its 2820th year.
		ycycle = 2820
	} else {
		aux1 := cyear / 366
		aux2 := cyear % 366
		ycycle = (2134*aux1+2816*aux2+2815)/1028522 + aux1 + 1
	}
	y = ycycle + 2820*cycle + 474

	yday := n - jalaliToDays(y, 1, 1) + 1
	if yday <= 186 {
		m = (yday + 30) / 31
	} else {
		m = (yday - 6 + 29) / 30
	}
	d = n - jalaliToDays(y, m, 1) + 1
	return y, m, d
}
