package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/dapvar/internal/dap"
	"github.com/danmuck/dapvar/internal/variants"
	"github.com/rs/zerolog/log"
)

// DatasetConfig declares a dataset: a named top-level Structure and its
// variables in declaration order.
type DatasetConfig struct {
	Name      string           `toml:"name"`
	Variables []VariableConfig `toml:"variables"`
}

// VariableConfig declares one variable. Value applies to simple types,
// Variables to structures.
type VariableConfig struct {
	Name      string           `toml:"name"`
	Type      string           `toml:"type"`
	Value     any              `toml:"value"`
	Variables []VariableConfig `toml:"variables"`
}

type ValidationError struct {
	Path   string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config: %s", e.Reason)
	}
	return fmt.Sprintf("config: %s: %s", e.Path, e.Reason)
}

func LoadDataset(path string) (DatasetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DatasetConfig{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	cfg, err := ParseDataset(data)
	if err != nil {
		return DatasetConfig{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	log.Debug().Str("path", path).Str("dataset", cfg.Name).Int("variables", len(cfg.Variables)).Msg("dataset loaded")
	return cfg, nil
}

// ParseDataset decodes and validates a TOML dataset definition. Unknown keys
// are rejected.
func ParseDataset(data []byte) (DatasetConfig, error) {
	var cfg DatasetConfig
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return DatasetConfig{}, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return DatasetConfig{}, ValidationError{Reason: "unknown keys: " + strings.Join(keys, ", ")}
	}
	if err := ValidateDataset(cfg); err != nil {
		return DatasetConfig{}, err
	}
	return cfg, nil
}

// ValidateDataset checks names and types. Duplicate sibling names are left
// to the variable tree's semantic check.
func ValidateDataset(cfg DatasetConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		log.Error().Msg("dataset config missing name")
		return ValidationError{Reason: "dataset missing name"}
	}
	return validateVariables(cfg.Name, cfg.Variables)
}

func validateVariables(path string, vars []VariableConfig) error {
	for i, v := range vars {
		at := fmt.Sprintf("%s.variables[%d]", path, i)
		if err := validateVariable(at, v); err != nil {
			log.Error().Str("path", err.Path).Str("reason", err.Reason).Msg("dataset config invalid")
			return *err
		}
		if v.Type == dap.TypeStructure {
			if err := validateVariables(path+"."+v.Name, v.Variables); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateVariable(at string, v VariableConfig) *ValidationError {
	name := strings.TrimSpace(v.Name)
	switch {
	case name == "":
		return &ValidationError{Path: at, Reason: "missing name"}
	case name != v.Name || strings.Contains(name, "."):
		return &ValidationError{Path: at, Reason: fmt.Sprintf("invalid name %q", v.Name)}
	}
	if _, ok := variants.Get(v.Type); !ok {
		return &ValidationError{Path: at, Reason: fmt.Sprintf("unknown type %q", v.Type)}
	}
	if v.Type == dap.TypeStructure && v.Value != nil {
		return &ValidationError{Path: at, Reason: "structure cannot carry a value"}
	}
	if v.Type != dap.TypeStructure && len(v.Variables) > 0 {
		return &ValidationError{Path: at, Reason: v.Type + " cannot contain variables"}
	}
	return nil
}
