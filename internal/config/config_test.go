package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `{
			"port": 9090,
			"content_dir": "content",
			"database_url": "postgres://localhost/portfolio",
			"jwt_secret": "shh"
		}`)

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "content", cfg.ContentDir)
		assert.Equal(t, "postgres://localhost/portfolio", cfg.DatabaseURL)
		assert.Equal(t, "shh", cfg.JWTSecret)
	})

	t.Run("empty object gives zero values", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfig(t, `{}`))
		require.NoError(t, err)
		assert.Zero(t, cfg.Port)
		assert.Empty(t, cfg.ContentDir)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, `{not json`))
		assert.Error(t, err)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("JWT_SECRET", "env-secret")

	t.Run("fills unset values", func(t *testing.T) {
		cfg := &Config{}
		cfg.ApplyEnv()
		assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
		assert.Equal(t, "env-secret", cfg.JWTSecret)
	})

	t.Run("file values win over environment", func(t *testing.T) {
		cfg := &Config{DatabaseURL: "postgres://file/db", JWTSecret: "file-secret"}
		cfg.ApplyEnv()
		assert.Equal(t, "postgres://file/db", cfg.DatabaseURL)
		assert.Equal(t, "file-secret", cfg.JWTSecret)
	})
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, (&Config{}).Validate())
	})

	t.Run("port out of range", func(t *testing.T) {
		assert.Error(t, (&Config{Port: 70000}).Validate())
		assert.Error(t, (&Config{Port: -1}).Validate())
	})

	t.Run("existing content dir", func(t *testing.T) {
		assert.NoError(t, (&Config{ContentDir: t.TempDir()}).Validate())
	})

	t.Run("missing content dir", func(t *testing.T) {
		cfg := &Config{ContentDir: filepath.Join(t.TempDir(), "missing")}
		assert.Error(t, cfg.Validate())
	})
}
