package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/dapvar/internal/protocol/frame"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCLIConfigDefaults(t *testing.T) {
	cfg, err := loadCLIConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultCLIConfig(), cfg)
	assert.Equal(t, frame.DefaultLimits(), cfg.Limits)
}

func TestLoadCLIConfigExample(t *testing.T) {
	cfg, err := loadCLIConfig("ex.config.toml")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.ServerVersion.Major)
	assert.Equal(t, 1, cfg.ServerVersion.Minor)
	assert.Equal(t, uint32(65536), cfg.Limits.Decoder.MaxStringBytes)
	assert.Equal(t, 32768, cfg.Limits.MaxPreambleBytes)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel)
}

func TestLoadCLIConfigPartialKeepsDefaults(t *testing.T) {
	path := writeFile(t, "partial.toml", "log_level = \"debug\"\n")

	cfg, err := loadCLIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, defaultCLIConfig().ServerVersion, cfg.ServerVersion)
	assert.Equal(t, frame.DefaultLimits(), cfg.Limits)
}

func TestLoadCLIConfigRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "server version", body: "server_version = \"opendap\"\n"},
		{name: "zero string limit", body: "max_string_bytes = 0\n"},
		{name: "negative preamble", body: "max_preamble_bytes = -1\n"},
		{name: "log level", body: "log_level = \"loud\"\n"},
		{name: "syntax", body: "server_version = \n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "bad.toml", tc.body)
			_, err := loadCLIConfig(path)
			assert.Error(t, err)
		})
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}
