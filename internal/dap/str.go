package dap

import (
	"io"

	"github.com/danmuck/dapvar/internal/protocol"
)

// Str is a String or URL variable. Both share the XDR string encoding.
type Str struct {
	node
	typeName string
	Value    string
}

func NewString(name, v string) *Str {
	return &Str{node: node{name: name}, typeName: TypeString, Value: v}
}

func NewURL(name, v string) *Str {
	return &Str{node: node{name: name}, typeName: TypeURL, Value: v}
}

func (s *Str) TypeName() string {
	return s.typeName
}

func (s *Str) ElementCount(bool) int {
	return 1
}

func (s *Str) CheckSemantics(bool) error {
	return nil
}

func (s *Str) Clone() BaseType {
	return &Str{node: node{name: s.name}, typeName: s.typeName, Value: s.Value}
}

func (s *Str) PrintDecl(w io.Writer, space string, printSemi, _ bool) error {
	return printSimpleDecl(w, s, space, printSemi)
}

func (s *Str) PrintVal(w io.Writer, space string, printDecl bool) error {
	return printSimpleVal(w, s, space, printDecl, `"`+s.Value+`"`)
}

func (s *Str) Serialize(enc *protocol.Encoder) error {
	return enc.WriteString(s.Value)
}

func (s *Str) Deserialize(dec *protocol.Decoder, _ protocol.ServerVersion, _ protocol.CancelProbe) error {
	v, err := dec.ReadString()
	if err != nil {
		return err
	}
	s.Value = v
	return nil
}

func (s *Str) SetValue(v any) error {
	x, ok := v.(string)
	if !ok {
		return ValueError{TypeName: s.typeName, Name: s.name, Value: v, Reason: "not a string"}
	}
	s.Value = x
	return nil
}
