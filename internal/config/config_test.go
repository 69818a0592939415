package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primepath/internal/config"
	"github.com/katalvlaran/primepath/longest"
)

// TestLoad_EmptyPathIsDefault returns Default without touching the filesystem.
func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, longest.PolicyStrictSink, cfg.Policy())
}

// TestLoad_File reads every documented key from a YAML file.
func TestLoad_File(t *testing.T) {
	content := `
log:
  level: debug
  format: json
solver:
  policy: fallback
  show_path: true
`
	path := filepath.Join(t.TempDir(), "primepath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Solver.ShowPath)
	assert.Equal(t, longest.PolicyFallback, cfg.Policy())
}

// TestLoad_MissingFile keeps os.ErrNotExist in the error chain.
func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestDecode_PartialKeepsDefaults fills unset keys from Default; an empty document is Default.
func TestDecode_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader("solver:\n  show_path: true\n"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, config.DefaultPolicy, cfg.Solver.Policy)
	assert.True(t, cfg.Solver.ShowPath)

	cfg, err = config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

// TestDecode_Rejects covers unknown keys, YAML syntax and out-of-set values.
func TestDecode_Rejects(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		invalid bool
	}{
		{"UnknownKey", "solver:\n  greedy: true\n", false},
		{"Syntax", "log: [\n", false},
		{"BadLevel", "log:\n  level: loud\n", true},
		{"BadFormat", "log:\n  format: xml\n", true},
		{"BadPolicy", "solver:\n  policy: greedy\n", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.Decode(strings.NewReader(tc.yaml))
			require.Error(t, err)
			assert.Equal(t, config.Default(), cfg)
			if tc.invalid {
				assert.ErrorIs(t, err, config.ErrInvalidConfig)
			}
		})
	}
	_, err := config.Decode(strings.NewReader("solver:\n  policy: greedy\n"))
	assert.ErrorIs(t, err, longest.ErrUnknownPolicy)
}
