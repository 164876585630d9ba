package main

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonmoystark/portfolio/internal/content"
	"github.com/tonmoystark/portfolio/internal/typewriter"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "portfolio.db", cfg.DBPath)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, "587", cfg.SMTP.Port)
	assert.Equal(t, content.ContactEmail, cfg.SMTP.ToEmail)
	assert.False(t, cfg.SMTP.Enabled())
	assert.Equal(t, content.Roles, cfg.Roles)
	assert.Equal(t, typewriter.DefaultConfig(), cfg.Hero)
	assert.Equal(t, 1800*time.Millisecond, cfg.LoaderDuration)
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig(envMap(map[string]string{
		"PORT":              "9000",
		"SMTP_USER":         "me@example.com",
		"SMTP_PASS":         "app-password",
		"HERO_ROLES":        " Go Developer, ,SRE ",
		"HERO_TYPE_DELAY":   "80ms",
		"HERO_DELETE_DELAY": "40ms",
		"HERO_PAUSE_DELAY":  "2s",
		"LOADER_DURATION":   "0s",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.SMTP.Enabled())
	assert.Equal(t, []string{"Go Developer", "SRE"}, cfg.Roles)
	assert.Equal(t, typewriter.Config{
		TypeDelay:   80 * time.Millisecond,
		DeleteDelay: 40 * time.Millisecond,
		PauseDelay:  2 * time.Second,
	}, cfg.Hero)
	assert.Equal(t, time.Duration(0), cfg.LoaderDuration)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantArg bool
	}{
		{"unparsable duration", map[string]string{"HERO_TYPE_DELAY": "fast"}, false},
		{"negative type delay", map[string]string{"HERO_TYPE_DELAY": "-1ms"}, true},
		{"zero delete delay", map[string]string{"HERO_DELETE_DELAY": "0s"}, true},
		{"only separators", map[string]string{"HERO_ROLES": " , ,"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(envMap(tt.env))
			require.Error(t, err)
			assert.Equal(t, tt.wantArg, errors.Is(err, typewriter.ErrInvalidArgument))
		})
	}
}
