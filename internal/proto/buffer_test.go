package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferRoundTrip(t *testing.T) {
	t.Parallel()
	var b Buffer
	b.PutUVarInt(3)
	b.PutInt32(-492268)
	b.PutInt32(3366)
	b.PutInt32(19802)
	b.PutString("jalali_date")
	b.PutByte(0x02)
	b.PutInt64(-1)

	r := b.Reader()

	n, err := r.Uvarint()
	require.NoError(t, err)
	require.Equal(t, uint64(3), n)

	for _, want := range []int32{-492268, 3366, 19802} {
		v, err := r.Int32()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}

	s, err := r.Str()
	require.NoError(t, err)
	require.Equal(t, "jalali_date", s)

	c, err := r.Byte()
	require.NoError(t, err)
	require.Equal(t, byte(0x02), c)

	v64, err := r.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(-1), v64)
}

func TestReaderShortInput(t *testing.T) {
	t.Parallel()
	var b Buffer
	b.PutByte(0xff)

	r := b.Reader()
	_, err := r.Int32()
	require.Error(t, err)
}

func TestBufferReset(t *testing.T) {
	t.Parallel()
	var b Buffer
	b.PutInt32(1)
	require.Len(t, b.Buf, 4)
	b.Reset()
	require.Len(t, b.Buf, 0)
}
