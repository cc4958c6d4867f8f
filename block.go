package jalali

import (
	"bytes"

	"github.com/go-faster/errors"

	"github.com/go-faster/jalali/internal/compress"
	"github.com/go-faster/jalali/internal/proto"
)

// maxBlockRows bounds decoded block size to reject corrupted frames.
const maxBlockRows = 250_000

// EncodeBlock frames the column as a checksummed compressed block:
// uvarint row count followed by the raw column values.
func (c ColDate) EncodeBlock(m compress.Method) ([]byte, error) {
	if c.Rows() > maxBlockRows {
		return nil, errors.Errorf("%d rows > %d (multiple block encoding not implemented)", c.Rows(), maxBlockRows)
	}

	var b proto.Buffer
	b.PutLen(c.Rows())
	c.EncodeColumn(&b)

	w := compress.NewWriter()
	if err := w.Compress(m, b.Buf); err != nil {
		return nil, errors.Wrap(err, "compress")
	}

	out := make([]byte, len(w.Data))
	copy(out, w.Data)
	return out, nil
}

// DecodeBlock reads a block produced by EncodeBlock, verifying the
// checksum before decoding rows.
func DecodeBlock(data []byte) (ColDate, error) {
	r := proto.NewReader(compress.NewReader(bytes.NewReader(data)))

	rows, err := r.Int()
	if err != nil {
		return nil, errors.Wrap(err, "rows")
	}
	if rows > maxBlockRows {
		return nil, errors.Errorf("%d rows > %d", rows, maxBlockRows)
	}

	c := make(ColDate, 0, rows)
	if err := c.DecodeColumn(r, rows); err != nil {
		return nil, errors.Wrap(err, "column")
	}
	return c, nil
}
