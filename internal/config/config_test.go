package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		DiscordToken: "token",
		Prefix:       "!",
		HelpPageSize: 2000,
		LogLevel:     "info",
	}, cfg)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("COMMAND_PREFIX", "?")
	t.Setenv("BOT_DESCRIPTION", "Helps.")
	t.Setenv("HELP_PAGE_SIZE", "1024")
	t.Setenv("DEVELOPER_ID", "42")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "?", cfg.Prefix)
	assert.Equal(t, "Helps.", cfg.Description)
	assert.Equal(t, 1024, cfg.HelpPageSize)
	assert.Equal(t, "42", cfg.DeveloperID)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "missing token", env: map[string]string{"DISCORD_TOKEN": ""}, wantErr: "DISCORD_TOKEN"},
		{name: "page too large", env: map[string]string{"DISCORD_TOKEN": "t", "HELP_PAGE_SIZE": "5000"}, wantErr: "HELP_PAGE_SIZE must be between"},
		{name: "page not a number", env: map[string]string{"DISCORD_TOKEN": "t", "HELP_PAGE_SIZE": "lots"}, wantErr: "HELP_PAGE_SIZE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Parse()
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
