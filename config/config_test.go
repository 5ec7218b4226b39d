package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "GIN_MODE", "PREFS_BACKEND", "PORTFOLIO_DB", "MAIL_PROVIDER",
	"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "TO_EMAIL",
	"DETECT_LANGUAGE", "LOG_LEVEL",
}

// clearEnv blanks every setting for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendCookie, cfg.PrefsBackend)
	assert.Equal(t, "data/portfolio.db", cfg.DBPath)
	assert.Equal(t, ProviderSimulated, cfg.MailProvider)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, "587", cfg.SMTP.Port)
	assert.False(t, cfg.DetectLanguage)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("PREFS_BACKEND", "SQLite")
	t.Setenv("PORTFOLIO_DB", "/tmp/p.db")
	t.Setenv("MAIL_PROVIDER", "smtp")
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("DETECT_LANGUAGE", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, BackendSQLite, cfg.PrefsBackend)
	assert.Equal(t, "/tmp/p.db", cfg.DBPath)
	assert.Equal(t, ProviderSMTP, cfg.MailProvider)
	assert.Equal(t, "me@example.com", cfg.SMTP.To, "delivers to the sending account by default")
	assert.True(t, cfg.DetectLanguage)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv only fills unset variables
	require.NoError(t, os.Unsetenv("PORT"))
	require.NoError(t, os.Unsetenv("TO_EMAIL"))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7070\nTO_EMAIL=inbox@example.com\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "inbox@example.com", cfg.SMTP.To)
}

func TestLoad_MissingNamedEnvFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"backend":     {"PREFS_BACKEND": "redis"},
		"provider":    {"MAIL_PROVIDER": "carrier-pigeon"},
		"smtp creds":  {"MAIL_PROVIDER": "smtp"},
		"detect lang": {"DETECT_LANGUAGE": "maybe"},
		"log level":   {"LOG_LEVEL": "loud"},
	} {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	cfg := Config{LogLevel: slog.LevelWarn}
	var buf bytes.Buffer
	logger := cfg.Logger(&buf)

	logger.Info("quiet")
	logger.Warn("loud", "key", "value")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "key=value")
}
