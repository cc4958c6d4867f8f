package proto

import (
	"bufio"
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/go-faster/errors"
)

// Reader implements interchange frame decoding from buffered reader.
type Reader struct {
	s *bufio.Reader
	b *Buffer
}

// NewReader initializes new Reader from provided io.Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		s: bufio.NewReader(r),
		b: &Buffer{},
	}
}

// Uvarint reads uint64 from internal reader.
func (r *Reader) Uvarint() (uint64, error) {
	n, err := binary.ReadUvarint(r.s)
	if err != nil {
		return 0, errors.Wrap(err, "read")
	}
	return n, nil
}

// Int decodes uvarint as int.
func (r *Reader) Int() (int, error) {
	n, err := r.Uvarint()
	if err != nil {
		return 0, errors.Wrap(err, "uvarint")
	}
	return int(n), nil
}

// Byte decodes single byte.
func (r *Reader) Byte() (byte, error) {
	return r.s.ReadByte()
}

// ReadRaw reads exactly n bytes.
func (r *Reader) ReadRaw(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.s, buf); err != nil {
		return nil, errors.Wrap(err, "read full")
	}
	return buf, nil
}

// StrRaw decodes string to internal buffer and returns it directly.
//
// Do not retain returned slice.
func (r *Reader) StrRaw() ([]byte, error) {
	n, err := r.Int()
	if err != nil {
		return nil, errors.Wrap(err, "read length")
	}
	r.b.Ensure(n)
	if _, err := io.ReadFull(r.s, r.b.Buf); err != nil {
		return nil, errors.Wrap(err, "read str")
	}
	return r.b.Buf, nil
}

// Str decodes length-prefixed string.
func (r *Reader) Str() (string, error) {
	s, err := r.StrRaw()
	if err != nil {
		return "", errors.Wrap(err, "raw")
	}
	if !utf8.Valid(s) {
		return "", errors.New("invalid utf8")
	}
	return string(s), nil
}

// UInt32 decodes fixed-width uint32.
func (r *Reader) UInt32() (uint32, error) {
	r.b.Ensure(4)
	if _, err := io.ReadFull(r.s, r.b.Buf); err != nil {
		return 0, errors.Wrap(err, "read")
	}
	return bin.Uint32(r.b.Buf), nil
}

// Int32 decodes fixed-width int32, the day number wire form.
func (r *Reader) Int32() (int32, error) {
	v, err := r.UInt32()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// UInt64 decodes fixed-width uint64.
func (r *Reader) UInt64() (uint64, error) {
	r.b.Ensure(8)
	if _, err := io.ReadFull(r.s, r.b.Buf); err != nil {
		return 0, errors.Wrap(err, "read")
	}
	return bin.Uint64(r.b.Buf), nil
}

// Int64 decodes fixed-width int64.
func (r *Reader) Int64() (int64, error) {
	v, err := r.UInt64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}
