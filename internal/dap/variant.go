package dap

import (
	"io"
	"iter"
	"weak"

	"github.com/danmuck/dapvar/internal/protocol"
)

// Type names as they appear in declarations.
const (
	TypeByte      = "Byte"
	TypeInt16     = "Int16"
	TypeUInt16    = "UInt16"
	TypeInt32     = "Int32"
	TypeUInt32    = "UInt32"
	TypeFloat32   = "Float32"
	TypeFloat64   = "Float64"
	TypeString    = "String"
	TypeURL       = "URL"
	TypeStructure = "Structure"
)

// Indent is the unit each nesting level adds to declaration text.
const Indent = "    "

// BaseType is the capability contract shared by every variable.
type BaseType interface {
	Name() string
	SetName(name string)
	TypeName() string

	// ElementCount returns 1 for simple types. Containers return their
	// immediate child count, or the number of simple leaves in their
	// subtree when leaves is set.
	ElementCount(leaves bool) int

	// CheckSemantics validates the variable. Containers only recurse into
	// their children when all is set.
	CheckSemantics(all bool) error

	// Clone returns a deep copy with no parent.
	Clone() BaseType

	PrintDecl(w io.Writer, space string, printSemi, constrained bool) error
	PrintVal(w io.Writer, space string, printDecl bool) error

	Serialize(enc *protocol.Encoder) error
	Deserialize(dec *protocol.Decoder, sv protocol.ServerVersion, probe protocol.CancelProbe) error

	// Parent returns the Structure that owns this variable, or nil when it
	// is a root or its owner has been reclaimed.
	Parent() *Structure

	setParent(p *Structure)
}

// Part tells a container where a new variable belongs. Structure ignores it.
type Part int

const (
	PartNone Part = iota
	PartArray
	PartMaps
)

// Container is a variable that owns and can look up child variables.
type Container interface {
	BaseType
	AddVariable(v BaseType, part Part)
	Variable(path string) (BaseType, error)
	Var(index int) (BaseType, error)
	Variables() iter.Seq[BaseType]
}

// node carries the identity every variable has.
type node struct {
	name   string
	parent weak.Pointer[Structure]
}

func (n *node) Name() string {
	return n.name
}

func (n *node) SetName(name string) {
	n.name = name
}

func (n *node) Parent() *Structure {
	return n.parent.Value()
}

func (n *node) setParent(p *Structure) {
	if p == nil {
		n.parent = weak.Pointer[Structure]{}
		return
	}
	n.parent = weak.Make(p)
}
