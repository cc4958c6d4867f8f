package jalali

import (
	"github.com/go-faster/jalali/date"
	"github.com/go-faster/jalali/internal/proto"
)

// ColDate is a dense column of dates in day number wire form.
type ColDate []date.Date

// Rows returns number of rows in column.
func (c ColDate) Rows() int { return len(c) }

// Row returns date at i.
func (c ColDate) Row(i int) date.Date { return c[i] }

// Append date to column.
func (c *ColDate) Append(d date.Date) {
	*c = append(*c, d)
}

// Reset column to zero rows, keeping capacity.
func (c *ColDate) Reset() {
	*c = (*c)[:0]
}

// EncodeColumn writes rows as little-endian int32 day numbers.
func (c ColDate) EncodeColumn(b *proto.Buffer) {
	for _, d := range c {
		b.PutInt32(int32(d.DayNum()))
	}
}

// DecodeColumn reads rows day numbers into column.
func (c *ColDate) DecodeColumn(r *proto.Reader, rows int) error {
	for i := 0; i < rows; i++ {
		v, err := r.Int32()
		if err != nil {
			return err
		}
		*c = append(*c, date.New(date.DayNum(v)))
	}
	return nil
}
