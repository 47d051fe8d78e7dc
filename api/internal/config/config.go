package config

import (
	"log"
	"os"
)

type Config struct {
	Port string

	GeminiAPIKey string
	GeminiModel  string

	TelegramBotToken string

	// DatabaseURL enables the answer cache when set.
	DatabaseURL string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads configuration from the environment. Every key except the bot
// token is optional: a missing Gemini key degrades the remote paths, a
// missing DATABASE_URL disables caching. Callers that need a key call the
// Must* variant.
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8000"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}

// MustTelegramToken returns the bot token or exits; only the bot binary
// calls this.
func (c *Config) MustTelegramToken() string {
	if c.TelegramBotToken == "" {
		return mustEnv("TELEGRAM_BOT_TOKEN")
	}
	return c.TelegramBotToken
}
