package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filedepot/filedepot/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, int64(0), cfg.Server.MaxUploadSize)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "filedepot.db", cfg.Database.DSN)
	assert.Equal(t, "file_records", cfg.Database.Table)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.CORS.Enabled)
}

func TestLoad_ConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
server:
  port: 9090
  max_upload_size: 5242880
database:
  type: postgres
  dsn: postgres://localhost/filedepot
  table: custom_files
cors:
  enabled: true
  allowed_origins:
    - https://example.com
log:
  level: debug
`
	err := os.WriteFile(configPath, []byte(configContent), 0o644)
	require.NoError(t, err)

	cfg, err := config.Load([]string{configPath}, nil)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, int64(5242880), cfg.Server.MaxUploadSize)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "postgres://localhost/filedepot", cfg.Database.DSN)
	assert.Equal(t, "custom_files", cfg.Database.Table)
	assert.True(t, cfg.CORS.Enabled)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ConfigFileMerge(t *testing.T) {
	tmpDir := t.TempDir()

	basePath := filepath.Join(tmpDir, "base.yaml")
	require.NoError(t, os.WriteFile(basePath, []byte("server:\n  port: 9000\nlog:\n  level: warn\n"), 0o644))

	overridePath := filepath.Join(tmpDir, "override.yaml")
	require.NoError(t, os.WriteFile(overridePath, []byte("server:\n  port: 9001\n"), 0o644))

	cfg, err := config.Load([]string{basePath, overridePath}, nil)
	require.NoError(t, err)

	// Later file wins for port, base value survives for level
	assert.Equal(t, 9001, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FILEDEPOT_SERVER_PORT", "7070")
	t.Setenv("FILEDEPOT_DATABASE_TYPE", "postgres")

	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Type)
}

func TestLoad_FlagsWin(t *testing.T) {
	t.Setenv("FILEDEPOT_SERVER_PORT", "7070")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", 0, "")
	flags.String("db-dsn", "", "")
	require.NoError(t, flags.Parse([]string{"--port=6060", "--db-dsn=other.db"}))

	cfg, err := config.Load(nil, flags)
	require.NoError(t, err)

	assert.Equal(t, 6060, cfg.Server.Port)
	assert.Equal(t, "other.db", cfg.Database.DSN)
}

func TestLoad_InvalidValues(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"port out of range", "server:\n  port: 70000\n"},
		{"bad log level", "log:\n  level: verbose\n"},
		{"bad database type", "database:\n  type: mysql\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := config.Load([]string{path}, nil)
			assert.Error(t, err)
		})
	}
}
