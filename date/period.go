package date

//go:generate go run github.com/dmarkham/enumer -type PeriodState -trimprefix Period -output period_enum.go

// PeriodState classifies a date against a monthly accounting period.
type PeriodState byte

const (
	PeriodUnknown PeriodState = iota
	PeriodStart
	PeriodMiddle
	PeriodEnd
)

// PeriodState classifies d against a monthly period anchored on day
// startDay of each Jalali month: the day the period closes is End, the
// next day is Start, everything between is Middle.
//
// Month ends shorter than startDay close the period early, so the last
// day of a short month reports End even before startDay is reached.
// A startDay outside [1, 31] yields Unknown.
func (d Date) PeriodState(startDay int) PeriodState {
	y, m, dom := d.Jalali()

	if dom == jalaliDaysIn(int64(y), m) && dom <= startDay {
		return PeriodEnd
	}
	if dom == 1 {
		if m == 1 {
			if startDay >= 30 {
				return PeriodStart
			}
			if prev, err := d.AddDays(-1); err == nil {
				if _, _, pd := prev.Jalali(); pd == startDay {
					return PeriodStart
				}
			}
		}
		if (m >= 2 && m <= 7 && startDay == 31) ||
			(m >= 8 && m <= 12 && startDay >= 30) {
			return PeriodStart
		}
	}
	if startDay >= 1 && startDay <= 31 {
		switch dom {
		case startDay:
			return PeriodEnd
		case startDay + 1:
			return PeriodStart
		default:
			return PeriodMiddle
		}
	}
	return PeriodUnknown
}
