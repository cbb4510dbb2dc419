package dap

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/danmuck/dapvar/internal/protocol"
)

// Structure holds an ordered set of variables of any type, including other
// structures. Declaration order is also wire order.
type Structure struct {
	node
	vars []BaseType
}

func NewStructure(name string) *Structure {
	return &Structure{node: node{name: name}}
}

func (s *Structure) TypeName() string {
	return TypeStructure
}

func (s *Structure) ElementCount(leaves bool) int {
	if !leaves {
		return len(s.vars)
	}
	count := 0
	for _, v := range s.vars {
		count += v.ElementCount(true)
	}
	return count
}

// AddVariable appends v and makes s its parent. part is ignored.
func (s *Structure) AddVariable(v BaseType, part Part) {
	if v == nil {
		return
	}
	v.setParent(s)
	s.vars = append(s.vars, v)
}

// Variable resolves a name or a dotted path such as "inner.x". A path
// segment naming a variable that is not a container is treated as not found.
func (s *Structure) Variable(path string) (BaseType, error) {
	head, rest, nested := strings.Cut(path, ".")
	if !nested {
		for _, v := range s.vars {
			if v.Name() == path {
				return v, nil
			}
		}
		return nil, NoSuchVariableError{Container: s.name, Name: path}
	}
	agg, err := s.Variable(head)
	if err != nil {
		return nil, NoSuchVariableError{Container: s.name, Name: path}
	}
	c, ok := agg.(Container)
	if !ok {
		return nil, NoSuchVariableError{Container: s.name, Name: path}
	}
	return c.Variable(rest)
}

// Var returns the variable at index in declaration order.
func (s *Structure) Var(index int) (BaseType, error) {
	if index < 0 || index >= len(s.vars) {
		return nil, NoSuchVariableError{Container: s.name, Index: index, ByIndex: true}
	}
	return s.vars[index], nil
}

// Variables iterates over the direct children in declaration order.
func (s *Structure) Variables() iter.Seq[BaseType] {
	return func(yield func(BaseType) bool) {
		for _, v := range s.vars {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *Structure) CheckSemantics(all bool) error {
	if err := UniqueNames(s.vars, s.name, s.TypeName()); err != nil {
		return err
	}
	if !all {
		return nil
	}
	for _, v := range s.vars {
		if err := v.CheckSemantics(true); err != nil {
			return err
		}
	}
	return nil
}

func (s *Structure) Clone() BaseType {
	c := NewStructure(s.name)
	c.vars = make([]BaseType, 0, len(s.vars))
	for _, v := range s.vars {
		c.AddVariable(v.Clone(), PartNone)
	}
	return c
}

// PrintDecl writes the structure header, each member indented one level and
// semicolon-terminated, then the closing brace and name.
func (s *Structure) PrintDecl(w io.Writer, space string, printSemi, constrained bool) error {
	p := &printer{w: w}
	p.print(space, s.TypeName(), " {\n")
	for _, v := range s.vars {
		p.do(func() error { return v.PrintDecl(w, space+Indent, true, constrained) })
	}
	p.print(space, "} ", s.name)
	if printSemi {
		p.print(";\n")
	}
	return p.err
}

// PrintVal writes "{ v1, v2, ... }", preceded by the declaration and
// followed by a semicolon when printDecl is set.
func (s *Structure) PrintVal(w io.Writer, space string, printDecl bool) error {
	p := &printer{w: w}
	if printDecl {
		p.do(func() error { return s.PrintDecl(w, space, false, false) })
		p.print(" = ")
	}
	p.print("{ ")
	for i, v := range s.vars {
		if i > 0 {
			p.print(", ")
		}
		p.do(func() error { return v.PrintVal(w, "", false) })
	}
	p.print(" }")
	if printDecl {
		p.print(";\n")
	}
	return p.err
}

// Serialize writes each member in declaration order. The structure adds no
// bytes of its own.
func (s *Structure) Serialize(enc *protocol.Encoder) error {
	for _, v := range s.vars {
		if err := v.Serialize(enc); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize reads each member in declaration order, polling probe before
// every member. After an error the tree holds partial data and should be
// discarded.
func (s *Structure) Deserialize(
	dec *protocol.Decoder,
	sv protocol.ServerVersion,
	probe protocol.CancelProbe,
) error {
	for _, v := range s.vars {
		if probe != nil && probe.Cancelled() {
			return fmt.Errorf("%w: structure %q before %q", ErrUserCancelled, s.name, v.Name())
		}
		if err := v.Deserialize(dec, sv, probe); err != nil {
			return err
		}
	}
	return nil
}
