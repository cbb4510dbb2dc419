package dap

import (
	"bytes"
	"math"
	"testing"

	"github.com/danmuck/dapvar/internal/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarTypeNames(t *testing.T) {
	cases := map[string]BaseType{
		TypeByte:    NewByte("v", 0),
		TypeInt16:   NewInt16("v", 0),
		TypeUInt16:  NewUInt16("v", 0),
		TypeInt32:   NewInt32("v", 0),
		TypeUInt32:  NewUInt32("v", 0),
		TypeFloat32: NewFloat32("v", 0),
		TypeFloat64: NewFloat64("v", 0),
		TypeString:  NewString("v", ""),
		TypeURL:     NewURL("v", ""),
	}
	for want, v := range cases {
		assert.Equal(t, want, v.TypeName())
		assert.Equal(t, 1, v.ElementCount(false))
		assert.Equal(t, 1, v.ElementCount(true))
		assert.NoError(t, v.CheckSemantics(true))
	}
}

func TestScalarPrinting(t *testing.T) {
	assert.Equal(t, "Int32 x;\n", Decl(NewInt32("x", 3)))
	assert.Equal(t, "3", Val(NewInt32("x", 3), false))
	assert.Equal(t, "Int32 x = 3;\n", Val(NewInt32("x", 3), true))
	assert.Equal(t, "-1.25", Val(NewFloat32("f", -1.25), false))
	assert.Equal(t, "0.1", Val(NewFloat64("f", 0.1), false))
	assert.Equal(t, "255", Val(NewByte("b", 255), false))
	assert.Equal(t, `String s = "a b";`+"\n", Val(NewString("s", "a b"), true))

	var buf bytes.Buffer
	require.NoError(t, NewUInt16("u", 9).PrintDecl(&buf, Indent, false, false))
	assert.Equal(t, "    UInt16 u", buf.String())
}

func TestNarrowTypesUseFullWords(t *testing.T) {
	var buf bytes.Buffer
	enc := protocol.NewEncoder(&buf)
	require.NoError(t, NewByte("b", 0x7f).Serialize(enc))
	require.NoError(t, NewInt16("i", -2).Serialize(enc))
	assert.Equal(t, []byte{0, 0, 0, 0x7f, 0xff, 0xff, 0xff, 0xfe}, buf.Bytes())

	b := NewByte("b", 0)
	i := NewInt16("i", 0)
	dec := protocol.NewDecoder(bytes.NewReader(buf.Bytes()), protocol.DefaultLimits())
	require.NoError(t, b.Deserialize(dec, protocol.DefaultServerVersion(), nil))
	require.NoError(t, i.Deserialize(dec, protocol.DefaultServerVersion(), nil))
	assert.Equal(t, uint8(0x7f), b.Value)
	assert.Equal(t, int16(-2), i.Value)
}

func TestNumberSetValue(t *testing.T) {
	i16 := NewInt16("i", 0)
	require.NoError(t, i16.SetValue(int64(-300)))
	assert.Equal(t, int16(-300), i16.Value)
	assert.ErrorIs(t, i16.SetValue(int64(40000)), ErrInvalidValue)

	u32 := NewUInt32("u", 0)
	assert.ErrorIs(t, u32.SetValue(int64(-1)), ErrInvalidValue)
	require.NoError(t, u32.SetValue(float64(12)))
	assert.Equal(t, uint32(12), u32.Value)
	assert.ErrorIs(t, u32.SetValue(1.5), ErrInvalidValue)

	f := NewFloat64("f", 0)
	require.NoError(t, f.SetValue(int64(3)))
	assert.Equal(t, 3.0, f.Value)
	require.NoError(t, f.SetValue(2.5))
	assert.Equal(t, 2.5, f.Value)

	err := f.SetValue("nope")
	var ve ValueError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, TypeFloat64, ve.TypeName)
	assert.Equal(t, "f", ve.Name)
}

func TestFloat32SetValueRange(t *testing.T) {
	f := NewFloat32("f", 1)
	require.NoError(t, f.SetValue(float64(math.MaxFloat32)))
	assert.Equal(t, float32(math.MaxFloat32), f.Value)
	require.NoError(t, f.SetValue(-2.5))
	assert.Equal(t, float32(-2.5), f.Value)

	assert.ErrorIs(t, f.SetValue(1e300), ErrInvalidValue)
	assert.ErrorIs(t, f.SetValue(-1e39), ErrInvalidValue)
	assert.Equal(t, float32(-2.5), f.Value)

	require.NoError(t, f.SetValue(math.Inf(1)))
	assert.True(t, math.IsInf(float64(f.Value), 1))

	d := NewFloat64("d", 0)
	require.NoError(t, d.SetValue(1e300))
	assert.Equal(t, 1e300, d.Value)
}

func TestStrSetValue(t *testing.T) {
	s := NewURL("u", "")
	require.NoError(t, s.SetValue("http://x"))
	assert.Equal(t, "http://x", s.Value)
	assert.ErrorIs(t, s.SetValue(int64(1)), ErrInvalidValue)
}

func TestUniqueNames(t *testing.T) {
	vars := []BaseType{NewInt32("a", 0), NewInt32("b", 0), NewInt32("c", 0)}
	assert.NoError(t, UniqueNames(vars, "owner", TypeStructure))
	assert.NoError(t, UniqueNames(nil, "owner", TypeStructure))

	vars = append(vars, NewInt32("b", 0), NewInt32("a", 0))
	err := UniqueNames(vars, "owner", TypeStructure)
	assert.Equal(t, BadSemanticsError{Owner: "owner", TypeName: TypeStructure, Name: "b"}, err)
	assert.EqualError(t, err, `dap: duplicate variable name "b" in Structure "owner"`)
}
