package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	APIBaseURL  string
	StateDir    string
	HTTPTimeout time.Duration
	Ephemeral   bool
}

// Load reads configuration from the environment, after loading a .env
// file from the working directory when one exists.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:      getEnv("APP_ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		APIBaseURL:  getEnv("SHOPFRONT_API_URL", "http://localhost:8001"),
		StateDir:    getEnv("SHOPFRONT_STATE_DIR", defaultStateDir()),
		HTTPTimeout: time.Duration(getEnvInt("SHOPFRONT_HTTP_TIMEOUT", 10)) * time.Second,
		Ephemeral:   getEnv("SHOPFRONT_EPHEMERAL", "") == "1",
	}
}

// StatePath is the location of the local state database.
func (c Config) StatePath() string {
	return filepath.Join(c.StateDir, "state.db")
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shopfront"
	}
	return filepath.Join(home, ".shopfront")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
