package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/dapvar/internal/logging"
	"github.com/danmuck/dapvar/internal/protocol"
	"github.com/danmuck/dapvar/internal/protocol/frame"
	"github.com/rs/zerolog"
)

type fileConfig struct {
	ServerVersion    string `toml:"server_version"`
	MaxStringBytes   uint32 `toml:"max_string_bytes"`
	MaxPreambleBytes int    `toml:"max_preamble_bytes"`
	LogLevel         string `toml:"log_level"`
}

type cliConfig struct {
	ServerVersion protocol.ServerVersion
	Limits        frame.Limits
	LogLevel      zerolog.Level
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		ServerVersion: protocol.DefaultServerVersion(),
		Limits:        frame.DefaultLimits(),
		LogLevel:      zerolog.InfoLevel,
	}
}

// loadCLIConfig applies the keys present in the file at path over the
// defaults. An empty path yields the defaults.
func loadCLIConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cliConfig{}, fmt.Errorf("load dapctl config: %w", err)
	}

	if meta.IsDefined("server_version") {
		sv, err := protocol.ParseServerVersion(raw.ServerVersion)
		if err != nil {
			return cliConfig{}, fmt.Errorf("parse server_version: %w", err)
		}
		cfg.ServerVersion = sv
	}

	if meta.IsDefined("max_string_bytes") {
		if raw.MaxStringBytes == 0 {
			return cliConfig{}, fmt.Errorf("max_string_bytes must be positive")
		}
		cfg.Limits.Decoder.MaxStringBytes = raw.MaxStringBytes
	}

	if meta.IsDefined("max_preamble_bytes") {
		if raw.MaxPreambleBytes <= 0 {
			return cliConfig{}, fmt.Errorf("max_preamble_bytes must be positive")
		}
		cfg.Limits.MaxPreambleBytes = raw.MaxPreambleBytes
	}

	if meta.IsDefined("log_level") {
		lvl, ok := logging.ParseLevel(raw.LogLevel)
		if !ok {
			return cliConfig{}, fmt.Errorf("parse log_level: unknown level %q", strings.TrimSpace(raw.LogLevel))
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}
