// Package config reads the host configuration from the environment, after
// loading a .env file when one is present.
package config

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/liangshaojie/portfolio/mail"
)

// DefaultEnvFile is loaded when no other file is named. It may be absent.
const DefaultEnvFile = ".env"

// Preference backends.
const (
	BackendCookie = "cookie"
	BackendSQLite = "sqlite"
)

// Mail providers.
const (
	ProviderSimulated = "simulated"
	ProviderSMTP      = "smtp"
)

// Config is the host configuration.
type Config struct {
	Port           string
	GinMode        string
	PrefsBackend   string
	DBPath         string
	MailProvider   string
	SMTP           mail.SMTPConfig
	DetectLanguage bool
	LogLevel       slog.Level
}

// Load reads envFile into the process environment, without overriding
// variables that are already set, and builds a Config from it. An empty
// envFile means DefaultEnvFile, which is optional; a named file must exist.
func Load(envFile string) (cfg Config, err error) {
	if envFile == "" {
		if _, statErr := os.Stat(DefaultEnvFile); statErr == nil {
			envFile = DefaultEnvFile
		}
	}
	if envFile != "" {
		if err = godotenv.Load(envFile); err != nil {
			err = errors.Wrapf(err, "loading env file %s", envFile)
			return cfg, err
		}
	}

	cfg = Config{
		Port:         getenv("PORT", "8080"),
		GinMode:      os.Getenv("GIN_MODE"),
		PrefsBackend: strings.ToLower(getenv("PREFS_BACKEND", BackendCookie)),
		DBPath:       getenv("PORTFOLIO_DB", "data/portfolio.db"),
		MailProvider: strings.ToLower(getenv("MAIL_PROVIDER", ProviderSimulated)),
		SMTP: mail.SMTPConfig{
			Host: getenv("SMTP_HOST", "smtp.gmail.com"),
			Port: getenv("SMTP_PORT", "587"),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			To:   getenv("TO_EMAIL", os.Getenv("SMTP_USER")),
		},
	}

	if v := os.Getenv("DETECT_LANGUAGE"); v != "" {
		cfg.DetectLanguage, err = strconv.ParseBool(v)
		if err != nil {
			err = errors.Wrapf(err, "parsing DETECT_LANGUAGE %q", v)
			return cfg, err
		}
	}

	if err = cfg.LogLevel.UnmarshalText([]byte(getenv("LOG_LEVEL", "info"))); err != nil {
		err = errors.Wrap(err, "parsing LOG_LEVEL")
		return cfg, err
	}

	err = cfg.Validate()
	return cfg, err
}

// Validate checks the enumerated settings and that the SMTP provider has
// credentials to send with.
func (c *Config) Validate() (err error) {
	if c.Port == "" {
		err = errors.New("PORT must not be empty")
		return err
	}

	switch c.PrefsBackend {
	case BackendCookie:
	case BackendSQLite:
		if c.DBPath == "" {
			err = errors.New("PORTFOLIO_DB is required for the sqlite backend")
			return err
		}
	default:
		err = errors.Errorf("unknown PREFS_BACKEND %q (want cookie or sqlite)", c.PrefsBackend)
		return err
	}

	switch c.MailProvider {
	case ProviderSimulated:
	case ProviderSMTP:
		if c.SMTP.User == "" || c.SMTP.Pass == "" {
			err = errors.New("SMTP_USER and SMTP_PASS are required for the smtp provider")
			return err
		}
	default:
		err = errors.Errorf("unknown MAIL_PROVIDER %q (want simulated or smtp)", c.MailProvider)
		return err
	}

	return err
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
