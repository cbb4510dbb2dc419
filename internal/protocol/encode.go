package protocol

import (
	"encoding/binary"
	"io"
	"math"
)

// Encoder writes XDR primitives to an underlying writer.
type Encoder struct {
	w   io.Writer
	buf [8]byte
	n   int64
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Written returns the number of bytes written so far.
func (e *Encoder) Written() int64 {
	return e.n
}

// WriteInt32 writes v as a 4-byte big-endian word.
func (e *Encoder) WriteInt32(v int32) error {
	return e.WriteUint32(uint32(v))
}

// WriteUint32 writes v as a 4-byte big-endian word.
func (e *Encoder) WriteUint32(v uint32) error {
	binary.BigEndian.PutUint32(e.buf[0:4], v)
	return e.write(e.buf[0:4])
}

// WriteFloat32 writes v as a 4-byte IEEE-754 single.
func (e *Encoder) WriteFloat32(v float32) error {
	return e.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes v as an 8-byte IEEE-754 double.
func (e *Encoder) WriteFloat64(v float64) error {
	binary.BigEndian.PutUint64(e.buf[0:8], math.Float64bits(v))
	return e.write(e.buf[0:8])
}

// WriteString writes a length-prefixed string padded with zeros to a
// multiple of four bytes.
func (e *Encoder) WriteString(s string) error {
	if uint64(len(s)) > math.MaxUint32 {
		return ErrStringTooLarge
	}
	if err := e.WriteUint32(uint32(len(s))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	if err := e.write([]byte(s)); err != nil {
		return err
	}
	if pad := padding(len(s)); pad > 0 {
		var zero [4]byte
		return e.write(zero[:pad])
	}
	return nil
}

func (e *Encoder) write(b []byte) error {
	if e.w == nil {
		return ErrNilEncoderTarget
	}
	n, err := e.w.Write(b)
	e.n += int64(n)
	return err
}

func padding(n int) int {
	return (4 - n%4) % 4
}
