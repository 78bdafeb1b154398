package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything wolfy reads from config.toml.
type Config struct {
	AppID     string
	BaseURL   string
	Units     string
	Timeout   int // seconds forwarded to the API; zero leaves it unset
	Listen    string
	LogLevel  string
	LogFormat string
}

// AppIDEnv overrides app_id from the config file when set.
const AppIDEnv = "WOLFY_APPID"

const (
	defaultConfigPath = "~/.config/wolfy/config.toml"
	defaultBaseURL    = "https://api.wolframalpha.com"
	defaultListen     = "127.0.0.1:7488"
	defaultLogLevel   = "info"
	defaultLogFormat  = "text"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		BaseURL:   defaultBaseURL,
		Listen:    defaultListen,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

// Load locates and parses the wolfy config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		AppID     string `toml:"app_id"`
		BaseURL   string `toml:"base_url"`
		Units     string `toml:"units"`
		Timeout   int    `toml:"timeout"`
		Listen    string `toml:"listen"`
		LogLevel  string `toml:"log_level"`
		LogFormat string `toml:"log_format"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.AppID = strings.TrimSpace(raw.AppID)
	cfg.BaseURL = orDefault(raw.BaseURL, defaultBaseURL)
	cfg.Units = strings.ToLower(strings.TrimSpace(raw.Units))
	if raw.Timeout < 0 {
		return Config{}, fmt.Errorf("parse config: timeout must not be negative")
	}
	cfg.Timeout = raw.Timeout
	cfg.Listen = orDefault(raw.Listen, defaultListen)
	cfg.LogLevel = orDefault(raw.LogLevel, defaultLogLevel)
	cfg.LogFormat = orDefault(raw.LogFormat, defaultLogFormat)

	applyEnv(&cfg)
	return cfg, nil
}

// DefaultPath returns the expanded default config location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func applyEnv(cfg *Config) {
	if id := strings.TrimSpace(os.Getenv(AppIDEnv)); id != "" {
		cfg.AppID = id
	}
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath expands a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
