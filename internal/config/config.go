package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
)

var ErrNoBotToken = errors.New("BOT_TOKEN is not set")

type Config struct {
	BotToken string
	BotDebug bool
	LogLevel pterm.LogLevel
	LogFile  string
}

// Load reads the process environment, optionally seeded from a .env file in
// the working directory.
func Load() (*Config, error) {
	godotenv.Load()

	level, err := parseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	var debug bool
	if v := os.Getenv("BOT_DEBUG"); v != "" {
		debug, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BOT_DEBUG %q: %w", v, err)
		}
	}

	return &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		BotDebug: debug,
		LogLevel: level,
		LogFile:  os.Getenv("LOG_FILE"),
	}, nil
}

// RequireBotToken is called by the chat frontend only; the terminal game
// runs without one.
func (c *Config) RequireBotToken() error {
	if c.BotToken == "" {
		return ErrNoBotToken
	}
	return nil
}

func parseLevel(s string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return pterm.LogLevelInfo, nil
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	}
	return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
}
