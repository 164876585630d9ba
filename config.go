package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/tonmoystark/portfolio/internal/content"
	"github.com/tonmoystark/portfolio/internal/typewriter"
)

// Config is read from the environment; .env is loaded by godotenv/autoload.
type Config struct {
	Port           string
	DBPath         string
	SMTP           SMTPConfig
	AdminUsername  string
	AdminPassword  string
	Roles          []string
	Hero           typewriter.Config
	LoaderDuration time.Duration

	// VisitorRetention bounds how long hashed visitor rows are kept.
	VisitorRetention time.Duration
}

type SMTPConfig struct {
	Host    string
	Port    string
	User    string
	Pass    string
	ToEmail string
}

// Enabled reports whether credentials are configured.
func (c SMTPConfig) Enabled() bool {
	return c.User != "" && c.Pass != ""
}

func loadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:   envOr(getenv, "PORT", "8080"),
		DBPath: envOr(getenv, "DB_PATH", "portfolio.db"),
		SMTP: SMTPConfig{
			Host:    envOr(getenv, "SMTP_HOST", "smtp.gmail.com"),
			Port:    envOr(getenv, "SMTP_PORT", "587"),
			User:    getenv("SMTP_USER"),
			Pass:    getenv("SMTP_PASS"),
			ToEmail: envOr(getenv, "TO_EMAIL", content.ContactEmail),
		},
		AdminUsername:    getenv("ADMIN_USERNAME"),
		AdminPassword:    getenv("ADMIN_PASSWORD"),
		Roles:            content.Roles,
		Hero:             typewriter.DefaultConfig(),
		VisitorRetention: 365 * 24 * time.Hour,
	}

	if raw := getenv("HERO_ROLES"); raw != "" {
		var roles []string
		for _, r := range strings.Split(raw, ",") {
			if r = strings.TrimSpace(r); r != "" {
				roles = append(roles, r)
			}
		}
		cfg.Roles = roles
	}

	durations := []struct {
		key string
		dst *time.Duration
		def time.Duration
	}{
		{"HERO_TYPE_DELAY", &cfg.Hero.TypeDelay, typewriter.DefaultTypeDelay},
		{"HERO_DELETE_DELAY", &cfg.Hero.DeleteDelay, typewriter.DefaultDeleteDelay},
		{"HERO_PAUSE_DELAY", &cfg.Hero.PauseDelay, typewriter.DefaultPauseDelay},
		{"LOADER_DURATION", &cfg.LoaderDuration, 1800 * time.Millisecond},
	}
	for _, d := range durations {
		*d.dst = d.def
		raw := getenv(d.key)
		if raw == "" {
			continue
		}
		v, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", d.key, raw, err)
		}
		*d.dst = v
	}

	// Fail at startup rather than on the first hero stream.
	if _, err := typewriter.NewRotation(cfg.Roles, cfg.Hero); err != nil {
		return Config{}, fmt.Errorf("hero typewriter: %w", err)
	}
	return cfg, nil
}

func envOr(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}
