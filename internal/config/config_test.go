package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults when no config file exists", func(t *testing.T) {
		cfg := Load(t.TempDir())

		assert.Equal(t, 4, cfg.Precision)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("config file overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		yaml := "output:\n  precision: 2\nlog:\n  level: debug\n"
		assert.NoError(t, os.WriteFile(filepath.Join(dir, "txengine.yaml"), []byte(yaml), 0o644))

		cfg := Load(dir)

		assert.Equal(t, 2, cfg.Precision)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("partial config keeps remaining defaults", func(t *testing.T) {
		dir := t.TempDir()
		assert.NoError(t, os.WriteFile(filepath.Join(dir, "txengine.yaml"), []byte("log:\n  level: warn\n"), 0o644))

		cfg := Load(dir)

		assert.Equal(t, 4, cfg.Precision)
		assert.Equal(t, "warn", cfg.LogLevel)
	})
}
