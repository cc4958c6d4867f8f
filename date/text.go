package date

import "fmt"

// Canonical text form: [-]YYYY-MM-DD. Year is four or more digits, month
// and day exactly two, zero padded. The grammar is shared by both
// calendars; the numeric semantics are not.

type scanState byte

const (
	scanYear scanState = iota
	scanDash1
	scanMonth
	scanDash2
	scanDay
	scanDone
)

// Parse decodes the canonical text form, interpreting the triple under
// calendar c.
//
// The grammar is strict: no unpadded months or days, no whitespace, no
// trailing bytes. Grammar violations yield *ParseError with the offset of
// the offending byte; a grammatical triple with out-of-bounds fields
// yields *InvalidDateError.
func Parse(c Calendar, s string) (Date, error) {
	var (
		pos        int
		neg        bool
		year       int64
		month, day int
	)
	if len(s) > 0 && s[0] == '-' {
		neg = true
		pos = 1
	}
	for state := scanYear; state != scanDone; {
		switch state {
		case scanYear:
			start := pos
			for pos < len(s) && isDigit(s[pos]) {
				year = year*10 + int64(s[pos]-'0')
				if year > maxYearAbs {
					return Date{}, ErrOutOfRange
				}
				pos++
			}
			if pos-start < 4 {
				return Date{}, &ParseError{Pos: pos, Msg: "want at least four year digits"}
			}
			state = scanDash1
		case scanDash1, scanDash2:
			if pos >= len(s) || s[pos] != '-' {
				return Date{}, &ParseError{Pos: pos, Msg: `want "-"`}
			}
			pos++
			if state == scanDash1 {
				state = scanMonth
			} else {
				state = scanDay
			}
		case scanMonth:
			v, err := scanTwoDigits(s, pos)
			if err != nil {
				return Date{}, err
			}
			month, pos = v, pos+2
			state = scanDash2
		case scanDay:
			v, err := scanTwoDigits(s, pos)
			if err != nil {
				return Date{}, err
			}
			day, pos = v, pos+2
			state = scanDone
		}
	}
	if pos != len(s) {
		return Date{}, &ParseError{Pos: pos, Msg: "trailing input"}
	}
	if neg {
		year = -year
	}
	n, err := ToDayNum(c, int(year), month, day)
	if err != nil {
		return Date{}, err
	}
	return Date{n: n}, nil
}

// Format encodes d in the canonical text form under calendar c.
//
// Format is the syntactic inverse of Parse: Parse(c, Format(c, d)) always
// yields d again.
func Format(c Calendar, d Date) string {
	y, m, day := d.In(c)
	if y < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -y, m, day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, day)
}

func scanTwoDigits(s string, pos int) (int, error) {
	for i := pos; i < pos+2; i++ {
		if i >= len(s) || !isDigit(s[i]) {
			return 0, &ParseError{Pos: i, Msg: "want digit"}
		}
	}
	return int(s[pos]-'0')*10 + int(s[pos+1]-'0'), nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
