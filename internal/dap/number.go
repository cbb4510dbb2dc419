package dap

import (
	"io"
	"math"
	"strconv"

	"github.com/danmuck/dapvar/internal/protocol"
)

type numeric interface {
	uint8 | int16 | uint16 | int32 | uint32 | float32 | float64
}

// Number is a simple numeric variable. The DAP2 numeric types are its
// instantiations; Byte and the 16-bit types travel as 4-byte words.
type Number[T numeric] struct {
	node
	Value T
}

type (
	Byte    = Number[uint8]
	Int16   = Number[int16]
	UInt16  = Number[uint16]
	Int32   = Number[int32]
	UInt32  = Number[uint32]
	Float32 = Number[float32]
	Float64 = Number[float64]
)

func NewByte(name string, v uint8) *Byte         { return newNumber(name, v) }
func NewInt16(name string, v int16) *Int16       { return newNumber(name, v) }
func NewUInt16(name string, v uint16) *UInt16    { return newNumber(name, v) }
func NewInt32(name string, v int32) *Int32       { return newNumber(name, v) }
func NewUInt32(name string, v uint32) *UInt32    { return newNumber(name, v) }
func NewFloat32(name string, v float32) *Float32 { return newNumber(name, v) }
func NewFloat64(name string, v float64) *Float64 { return newNumber(name, v) }

func newNumber[T numeric](name string, v T) *Number[T] {
	return &Number[T]{node: node{name: name}, Value: v}
}

func (n *Number[T]) TypeName() string {
	switch any(n.Value).(type) {
	case uint8:
		return TypeByte
	case int16:
		return TypeInt16
	case uint16:
		return TypeUInt16
	case int32:
		return TypeInt32
	case uint32:
		return TypeUInt32
	case float32:
		return TypeFloat32
	default:
		return TypeFloat64
	}
}

func (n *Number[T]) ElementCount(bool) int {
	return 1
}

func (n *Number[T]) CheckSemantics(bool) error {
	return nil
}

func (n *Number[T]) Clone() BaseType {
	return newNumber(n.name, n.Value)
}

func (n *Number[T]) PrintDecl(w io.Writer, space string, printSemi, _ bool) error {
	return printSimpleDecl(w, n, space, printSemi)
}

func (n *Number[T]) PrintVal(w io.Writer, space string, printDecl bool) error {
	return printSimpleVal(w, n, space, printDecl, n.String())
}

// String returns the value text.
func (n *Number[T]) String() string {
	switch v := any(n.Value).(type) {
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case uint8, uint16, uint32:
		return strconv.FormatUint(uint64(n.Value), 10)
	default:
		return strconv.FormatInt(int64(n.Value), 10)
	}
}

func (n *Number[T]) Serialize(enc *protocol.Encoder) error {
	switch v := any(n.Value).(type) {
	case uint8:
		return enc.WriteUint32(uint32(v))
	case int16:
		return enc.WriteInt32(int32(v))
	case uint16:
		return enc.WriteUint32(uint32(v))
	case int32:
		return enc.WriteInt32(v)
	case uint32:
		return enc.WriteUint32(v)
	case float32:
		return enc.WriteFloat32(v)
	default:
		return enc.WriteFloat64(float64(n.Value))
	}
}

func (n *Number[T]) Deserialize(dec *protocol.Decoder, _ protocol.ServerVersion, _ protocol.CancelProbe) error {
	switch p := any(&n.Value).(type) {
	case *uint8:
		v, err := dec.ReadUint32()
		if err != nil {
			return err
		}
		*p = uint8(v)
	case *int16:
		v, err := dec.ReadInt32()
		if err != nil {
			return err
		}
		*p = int16(v)
	case *uint16:
		v, err := dec.ReadUint32()
		if err != nil {
			return err
		}
		*p = uint16(v)
	case *int32:
		v, err := dec.ReadInt32()
		if err != nil {
			return err
		}
		*p = v
	case *uint32:
		v, err := dec.ReadUint32()
		if err != nil {
			return err
		}
		*p = v
	case *float32:
		v, err := dec.ReadFloat32()
		if err != nil {
			return err
		}
		*p = v
	case *float64:
		v, err := dec.ReadFloat64()
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

// SetValue assigns an int64, int or float64 such as TOML decoding yields.
// Integral types reject fractions and out-of-range values.
func (n *Number[T]) SetValue(v any) error {
	switch x := v.(type) {
	case int:
		return n.setInt(int64(x), v)
	case int64:
		return n.setInt(x, v)
	case float64:
		return n.setFloat(x, v)
	default:
		return n.valueError(v, "not a number")
	}
}

func (n *Number[T]) isFloat() bool {
	switch any(n.Value).(type) {
	case float32, float64:
		return true
	}
	return false
}

func (n *Number[T]) setInt(x int64, raw any) error {
	if n.isFloat() {
		return n.storeFloat(float64(x), raw)
	}
	out := T(x)
	if int64(out) != x {
		return n.valueError(raw, "out of range")
	}
	n.Value = out
	return nil
}

func (n *Number[T]) setFloat(x float64, raw any) error {
	if n.isFloat() {
		return n.storeFloat(x, raw)
	}
	if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
		return n.valueError(raw, "not an integer")
	}
	return n.setInt(int64(x), raw)
}

// storeFloat rejects finite values a Float32 cannot hold. Infinities and NaN
// pass through.
func (n *Number[T]) storeFloat(x float64, raw any) error {
	if _, narrow := any(n.Value).(float32); narrow && !math.IsInf(x, 0) && math.Abs(x) > math.MaxFloat32 {
		return n.valueError(raw, "out of range")
	}
	n.Value = T(x)
	return nil
}

func (n *Number[T]) valueError(v any, reason string) error {
	return ValueError{TypeName: n.TypeName(), Name: n.name, Value: v, Reason: reason}
}
