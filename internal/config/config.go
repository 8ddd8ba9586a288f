// Package config reads the bot settings from the environment. A .env file in
// the working directory is loaded first when present.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MaxPageSize is the Discord embed description limit.
const MaxPageSize = 4096

type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`
	Prefix       string `env:"COMMAND_PREFIX" envDefault:"!"`
	Description  string `env:"BOT_DESCRIPTION"`
	HelpPageSize int    `env:"HELP_PAGE_SIZE" envDefault:"2000"`
	DeveloperID  string `env:"DEVELOPER_ID"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env, if any, and then the environment. Variables already set
// in the environment win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the environment only.
func Parse() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	if c.Prefix == "" {
		return fmt.Errorf("COMMAND_PREFIX must not be empty")
	}
	if c.HelpPageSize < 100 || c.HelpPageSize > MaxPageSize {
		return fmt.Errorf("HELP_PAGE_SIZE must be between 100 and %d, got %d", MaxPageSize, c.HelpPageSize)
	}
	return nil
}
