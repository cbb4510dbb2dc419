package config

import (
	"fmt"

	"github.com/danmuck/dapvar/internal/dap"
	"github.com/danmuck/dapvar/internal/variants"
)

// Build turns a validated dataset definition into a variable tree rooted at
// a Structure named after the dataset. Variables without a value keep their
// zero value.
func Build(cfg DatasetConfig) (*dap.Structure, error) {
	root := dap.NewStructure(cfg.Name)
	if err := addVariables(root, cfg.Variables); err != nil {
		return nil, err
	}
	return root, nil
}

func addVariables(parent *dap.Structure, vars []VariableConfig) error {
	for _, vc := range vars {
		v, err := variants.New(vc.Type, vc.Name)
		if err != nil {
			return err
		}
		parent.AddVariable(v, dap.PartNone)
		switch x := v.(type) {
		case *dap.Structure:
			if err := addVariables(x, vc.Variables); err != nil {
				return err
			}
		case variants.Assignable:
			if vc.Value == nil {
				continue
			}
			if err := x.SetValue(vc.Value); err != nil {
				return fmt.Errorf("config: %s: %w", dap.LongName(x), err)
			}
		}
	}
	return nil
}
