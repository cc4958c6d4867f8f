package proto

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Buffer implements binary encoding of interchange frames.
type Buffer struct {
	Buf []byte
}

// Reader returns new *Reader from *Buffer.
func (b *Buffer) Reader() *Reader {
	return NewReader(bytes.NewReader(b.Buf))
}

// Ensure Buf length.
func (b *Buffer) Ensure(n int) {
	b.Buf = append(b.Buf[:0], make([]byte, n)...)
}

// Reset buffer to zero length.
func (b *Buffer) Reset() {
	b.Buf = b.Buf[:0]
}

// Read implements io.Reader.
func (b *Buffer) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(b.Buf) == 0 {
		return 0, io.EOF
	}
	n = copy(p, b.Buf)
	b.Buf = b.Buf[n:]
	return n, nil
}

// PutRaw writes v as raw bytes to buffer.
func (b *Buffer) PutRaw(v []byte) {
	b.Buf = append(b.Buf, v...)
}

// PutUVarInt encodes x as uvarint.
func (b *Buffer) PutUVarInt(x uint64) {
	buf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(buf, x)
	b.Buf = append(b.Buf, buf[:n]...)
}

// PutLen encodes length to buffer as uvarint.
func (b *Buffer) PutLen(x int) {
	b.PutUVarInt(uint64(x))
}

// PutString encodes length-prefixed string value to buffer.
func (b *Buffer) PutString(s string) {
	b.PutLen(len(s))
	b.Buf = append(b.Buf, s...)
}

// PutByte encodes single byte.
func (b *Buffer) PutByte(x byte) {
	b.Buf = append(b.Buf, x)
}

// PutUInt32 encodes fixed-width uint32.
func (b *Buffer) PutUInt32(x uint32) {
	buf := make([]byte, 32/8)
	bin.PutUint32(buf, x)
	b.Buf = append(b.Buf, buf...)
}

// PutInt32 encodes fixed-width int32, the day number wire form.
func (b *Buffer) PutInt32(x int32) {
	b.PutUInt32(uint32(x))
}

// PutUInt64 encodes fixed-width uint64.
func (b *Buffer) PutUInt64(x uint64) {
	buf := make([]byte, 64/8)
	bin.PutUint64(buf, x)
	b.Buf = append(b.Buf, buf...)
}

// PutInt64 encodes fixed-width int64.
func (b *Buffer) PutInt64(x int64) {
	b.PutUInt64(uint64(x))
}
