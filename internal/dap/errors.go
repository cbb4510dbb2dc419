package dap

import (
	"errors"
	"fmt"
)

var (
	ErrNoSuchVariable = errors.New("dap: no such variable")
	ErrBadSemantics   = errors.New("dap: bad semantics")
	ErrUserCancelled  = errors.New("dap: user cancelled")
	ErrInvalidValue   = errors.New("dap: invalid value")
)

// NoSuchVariableError reports a failed name or index lookup.
type NoSuchVariableError struct {
	Container string
	Name      string
	Index     int
	ByIndex   bool
}

func (e NoSuchVariableError) Error() string {
	if e.ByIndex {
		return fmt.Sprintf("dap: no such variable: %q has no index %d", e.Container, e.Index)
	}
	return fmt.Sprintf("dap: no such variable: %q in %q", e.Name, e.Container)
}

func (e NoSuchVariableError) Is(target error) bool {
	return target == ErrNoSuchVariable
}

// BadSemanticsError reports a name used more than once among siblings.
type BadSemanticsError struct {
	Owner    string
	TypeName string
	Name     string
}

func (e BadSemanticsError) Error() string {
	return fmt.Sprintf(
		"dap: duplicate variable name %q in %s %q",
		e.Name,
		e.TypeName,
		e.Owner,
	)
}

func (e BadSemanticsError) Is(target error) bool {
	return target == ErrBadSemantics
}

// ValueError reports a value that cannot be assigned to a variable.
type ValueError struct {
	TypeName string
	Name     string
	Value    any
	Reason   string
}

func (e ValueError) Error() string {
	return fmt.Sprintf("dap: %s %q: cannot assign %v (%T): %s", e.TypeName, e.Name, e.Value, e.Value, e.Reason)
}

func (e ValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
