package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries everything the client needs to reach the backend.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Cache  CacheConfig  `yaml:"cache"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	BaseURL        string `yaml:"base_url"`
	APIKey         string `yaml:"api_key"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type CacheConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Env  string `yaml:"env"`
	File string `yaml:"file"`
}

// Load reads the optional yaml file at path, then applies .env and
// environment overrides on top. A missing file is not an error; a
// malformed one is.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{BaseURL: "http://localhost:8000", TimeoutSeconds: 10},
		Cache:  CacheConfig{Path: "chefcode.db"},
		Log:    LogConfig{Env: "development", File: "chefcode.log"},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// fall through to env config
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	_ = godotenv.Load()

	cfg.Server.BaseURL = getEnv("CHEFCODE_API_URL", cfg.Server.BaseURL)
	cfg.Server.APIKey = getEnv("CHEFCODE_API_KEY", cfg.Server.APIKey)
	if t, err := strconv.Atoi(os.Getenv("CHEFCODE_TIMEOUT_SECONDS")); err == nil && t > 0 {
		cfg.Server.TimeoutSeconds = t
	}
	cfg.Cache.Path = getEnv("CHEFCODE_CACHE_PATH", cfg.Cache.Path)
	cfg.Log.Env = getEnv("CHEFCODE_ENV", cfg.Log.Env)
	cfg.Log.File = getEnv("CHEFCODE_LOG_FILE", cfg.Log.File)

	return cfg, nil
}

// Timeout returns the per-request HTTP timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Server.TimeoutSeconds) * time.Second
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
