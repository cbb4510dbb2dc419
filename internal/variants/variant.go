// Package variants maps declaration type names to variable constructors.
package variants

import "github.com/danmuck/dapvar/internal/dap"

// Factory builds an empty variable with the given name.
type Factory func(name string) dap.BaseType

// Assignable is implemented by simple variables that accept decoded
// configuration values.
type Assignable interface {
	dap.BaseType
	SetValue(v any) error
}
