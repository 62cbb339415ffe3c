// Package binary provides low-level sequential binary I/O for RIFF parsing.
package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// ErrNegativeLength is returned when a negative byte count is requested.
var ErrNegativeLength = errors.New("negative read length")

// growThreshold is the largest read that is allocated up front. Larger reads
// grow their buffer as bytes arrive, so a corrupt length field cannot force a
// huge allocation before the source runs dry.
const growThreshold = 1 << 20

// Reader reads fixed-width fields from a forward-only byte source.
type Reader struct {
	r     io.Reader
	order binary.ByteOrder
	pos   int64
}

// Config holds reader configuration.
type Config struct {
	ByteOrder binary.ByteOrder
}

// DefaultConfig returns the little-endian configuration used by RIFF.
func DefaultConfig() Config {
	return Config{ByteOrder: binary.LittleEndian}
}

// NewReader creates a binary reader over r with the given configuration.
func NewReader(r io.Reader, cfg Config) *Reader {
	order := cfg.ByteOrder
	if order == nil {
		order = binary.LittleEndian
	}
	return &Reader{r: r, order: order}
}

// NewBytesReader creates a reader over an in-memory region. The region is
// isolated: reads never go past its end.
func NewBytesReader(data []byte, cfg Config) *Reader {
	return NewReader(bytes.NewReader(data), cfg)
}

// Pos returns the number of bytes consumed so far.
func (r *Reader) Pos() int64 {
	return r.pos
}

// Source returns the underlying byte source.
func (r *Reader) Source() io.Reader {
	return r.r
}

// ReadBytes reads exactly n bytes.
//
// It returns io.EOF only if no bytes were available at all, and
// io.ErrUnexpectedEOF if the source ended part way through.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if n == 0 {
		return []byte{}, nil
	}
	if n <= growThreshold {
		buf := make([]byte, n)
		got, err := io.ReadFull(r.r, buf)
		r.pos += int64(got)
		if err != nil {
			return nil, err
		}
		return buf, nil
	}

	var buf bytes.Buffer
	buf.Grow(growThreshold)
	got, err := io.CopyN(&buf, r.r, int64(n))
	r.pos += got
	if err != nil {
		if err == io.EOF {
			if got == 0 {
				return nil, io.EOF
			}
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadTag reads a four-byte tag.
func (r *Reader) ReadTag() ([4]byte, error) {
	var tag [4]byte
	got, err := io.ReadFull(r.r, tag[:])
	r.pos += int64(got)
	if err != nil {
		return [4]byte{}, err
	}
	return tag, nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(buf), nil
}

// Region reads exactly n bytes and returns a reader confined to them.
// The returned reader shares nothing with r.
func (r *Reader) Region(n int) (*Reader, error) {
	data, err := r.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return NewBytesReader(data, Config{ByteOrder: r.order}), nil
}

