package compress

import (
	"io"

	"github.com/go-faster/city"
	"github.com/go-faster/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Reader handles decompression.
type Reader struct {
	reader io.Reader
	zd     *zstd.Decoder
	data   []byte
	pos    int64
	raw    []byte
	header [headerSize]byte
}

// readBlock reads next compressed data into raw and decompresses into data.
func (c *Reader) readBlock() error {
	c.pos = 0

	if _, err := io.ReadFull(c.reader, c.header[:]); err != nil {
		return errors.Wrap(err, "header")
	}

	var (
		dataSize = int(bin.Uint32(c.header[hDataSize:])) - dataSizeOffset
		rawSize  = int(bin.Uint32(c.header[hRawSize:]))
	)
	if dataSize < 0 || dataSize > maxDataSize {
		return errors.Errorf("data size should be %d < %d < %d", 0, dataSize, maxDataSize)
	}
	if rawSize < 0 || rawSize > maxBlockSize {
		return errors.Errorf("raw size should be %d < %d < %d", 0, rawSize, maxBlockSize)
	}

	// Checksum covers the compress header and the payload.
	c.raw = append(c.raw[:0], c.header[hMethod:]...)
	c.raw = append(c.raw, make([]byte, dataSize)...)
	if _, err := io.ReadFull(c.reader, c.raw[compressHeaderSize:]); err != nil {
		return errors.Wrap(err, "read raw")
	}
	hash := city.CH128(c.raw)
	if hash.Low != bin.Uint64(c.header[0:8]) || hash.High != bin.Uint64(c.header[8:16]) {
		return errors.New("checksum mismatch")
	}

	c.data = append(c.data[:0], make([]byte, rawSize)...)
	payload := c.raw[compressHeaderSize:]
	switch m := Method(c.header[hMethod]); m {
	case LZ4:
		n, err := lz4.UncompressBlock(payload, c.data)
		if err != nil {
			return errors.Wrap(err, "lz4")
		}
		c.data = c.data[:n]
	case ZSTD:
		data, err := c.zd.DecodeAll(payload, c.data[:0])
		if err != nil {
			return errors.Wrap(err, "zstd")
		}
		c.data = data
	case None:
		copy(c.data, payload)
	default:
		return errors.Errorf("compression 0x%02x not implemented", m)
	}

	return nil
}

// Read implements io.Reader.
func (c *Reader) Read(p []byte) (n int, err error) {
	if c.pos >= int64(len(c.data)) {
		if err := c.readBlock(); err != nil {
			return 0, errors.Wrap(err, "read next block")
		}
	}
	n = copy(p, c.data[c.pos:])
	c.pos += int64(n)
	return n, nil
}

// NewReader returns new *Reader from r.
func NewReader(r io.Reader) *Reader {
	zd, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
	)
	if err != nil {
		panic(err)
	}
	return &Reader{
		reader: r,
		zd:     zd,
	}
}
