package variants

import (
	"fmt"
	"slices"
	"sync"

	"github.com/danmuck/dapvar/internal/dap"
)

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

func init() {
	Register(dap.TypeByte, func(n string) dap.BaseType { return dap.NewByte(n, 0) })
	Register(dap.TypeInt16, func(n string) dap.BaseType { return dap.NewInt16(n, 0) })
	Register(dap.TypeUInt16, func(n string) dap.BaseType { return dap.NewUInt16(n, 0) })
	Register(dap.TypeInt32, func(n string) dap.BaseType { return dap.NewInt32(n, 0) })
	Register(dap.TypeUInt32, func(n string) dap.BaseType { return dap.NewUInt32(n, 0) })
	Register(dap.TypeFloat32, func(n string) dap.BaseType { return dap.NewFloat32(n, 0) })
	Register(dap.TypeFloat64, func(n string) dap.BaseType { return dap.NewFloat64(n, 0) })
	Register(dap.TypeString, func(n string) dap.BaseType { return dap.NewString(n, "") })
	Register(dap.TypeURL, func(n string) dap.BaseType { return dap.NewURL(n, "") })
	Register(dap.TypeStructure, func(n string) dap.BaseType { return dap.NewStructure(n) })
}

// Register adds or replaces the factory for typeName.
func Register(typeName string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	registry[typeName] = f
}

func Get(typeName string) (Factory, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := registry[typeName]
	return f, ok
}

// Names returns the registered type names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// New builds a variable of typeName.
func New(typeName, name string) (dap.BaseType, error) {
	f, ok := Get(typeName)
	if !ok {
		return nil, fmt.Errorf("variants: unknown type %q", typeName)
	}
	return f(name), nil
}
