package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noDotEnv points Load at a file that does not exist.
func noDotEnv(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvAddr, "")
	os.Unsetenv(EnvAddr)
	t.Setenv(EnvMaxCells, "")
	os.Unsetenv(EnvMaxCells)

	cfg, err := Load(noDotEnv(t))
	require.NoError(t, err)
	assert.Equal(t, Config{Addr: DefaultAddr, MaxCells: DefaultMaxCells}, cfg)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv(EnvAddr, "127.0.0.1:9000")
	t.Setenv(EnvMaxCells, "400")

	cfg, err := Load(noDotEnv(t))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 400, cfg.MaxCells)
}

// TestLoad_DotEnv checks that a .env file fills unset variables but never
// overrides the process environment.
func TestLoad_DotEnv(t *testing.T) {
	t.Setenv(EnvAddr, ":7000")
	t.Setenv(EnvMaxCells, "")
	os.Unsetenv(EnvMaxCells)

	file := filepath.Join(t.TempDir(), ".env")
	content := EnvAddr + "=:1234\n" + EnvMaxCells + "=64\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))
	t.Cleanup(func() { os.Unsetenv(EnvMaxCells) })

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, 64, cfg.MaxCells)
}

func TestLoad_Invalid(t *testing.T) {
	for _, v := range []string{"many", "0", "-5"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv(EnvMaxCells, v)
			_, err := Load(noDotEnv(t))
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}
