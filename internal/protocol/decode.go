package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Limits constrains decoder memory use.
type Limits struct {
	MaxStringBytes uint32
}

func DefaultLimits() Limits {
	return Limits{
		MaxStringBytes: 8 * 1024 * 1024,
	}
}

// Decoder reads XDR primitives from an underlying reader.
type Decoder struct {
	r      io.Reader
	limits Limits
	buf    [8]byte
	n      int64
}

// NewDecoder returns a Decoder reading from r. A zero MaxStringBytes falls
// back to the default limit.
func NewDecoder(r io.Reader, limits Limits) *Decoder {
	if limits.MaxStringBytes == 0 {
		limits.MaxStringBytes = DefaultLimits().MaxStringBytes
	}
	return &Decoder{r: r, limits: limits}
}

// BytesRead returns the number of bytes consumed so far.
func (d *Decoder) BytesRead() int64 {
	return d.n
}

func (d *Decoder) ReadInt32() (int32, error) {
	v, err := d.ReadUint32()
	return int32(v), err
}

func (d *Decoder) ReadUint32() (uint32, error) {
	if err := d.fill(d.buf[0:4]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(d.buf[0:4]), nil
}

func (d *Decoder) ReadFloat32() (float32, error) {
	v, err := d.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (d *Decoder) ReadFloat64() (float64, error) {
	if err := d.fill(d.buf[0:8]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(d.buf[0:8])), nil
}

// ReadString reads a length-prefixed, zero-padded string.
func (d *Decoder) ReadString() (string, error) {
	l, err := d.ReadUint32()
	if err != nil {
		return "", err
	}
	if l > d.limits.MaxStringBytes {
		return "", ErrStringTooLarge
	}
	if l == 0 {
		return "", nil
	}
	buf := make([]byte, int(l)+padding(int(l)))
	if err := d.fill(buf); err != nil {
		return "", err
	}
	return string(buf[:l]), nil
}

func (d *Decoder) fill(b []byte) error {
	if d.r == nil {
		return ErrNilDecoderSource
	}
	n, err := io.ReadFull(d.r, b)
	d.n += int64(n)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return ErrUnexpectedEOF
		}
		return fmt.Errorf("protocol: read: %w", err)
	}
	return nil
}
