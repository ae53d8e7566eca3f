package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken      string `env:"DISCORD_TOKEN,required"`
	DailyMessageLimit int    `env:"DAILY_MESSAGE_LIMIT" envDefault:"10"`
	DataDir           string `env:"DATA_DIR" envDefault:"data"`
	InitSlashCommands bool   `env:"INIT_SLASH_COMMANDS" envDefault:"true"`
}

// New loads configuration from a .env file when present, then from the
// process environment. A missing DISCORD_TOKEN is the only fatal condition.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
