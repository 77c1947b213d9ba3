package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRecomputeInterval = 5 * time.Minute
	DefaultCacheSize         = 1
	dirName                  = ".studypal"
)

// Config holds the process-wide settings. LLM settings live in llm.LoadConfig.
type Config struct {
	DBPath            string        `yaml:"db_path"`
	UserID            string        `yaml:"user_id"`
	Adaptive          bool          `yaml:"adaptive"`
	RecomputeInterval time.Duration `yaml:"recompute_interval"`
	LogLevel          string        `yaml:"log_level"`
	LogFormat         string        `yaml:"log_format"`
	CacheSize         int           `yaml:"cache_size"`
	MetricsAddr       string        `yaml:"metrics_addr"`

	// Deterministic makes the rules responder always use the first phrase
	// of each bank instead of a random one.
	Deterministic bool `yaml:"deterministic"`
}

// Defaults returns the built-in configuration rooted at home.
func Defaults(home string) Config {
	return Config{
		DBPath:            filepath.Join(home, dirName, "studypal.db"),
		UserID:            envStr("USER", "local"),
		RecomputeInterval: DefaultRecomputeInterval,
		LogLevel:          "info",
		LogFormat:         "text",
		CacheSize:         DefaultCacheSize,
	}
}

// Load builds the configuration from defaults, then the YAML file named by
// STUDYPAL_CONFIG (or ~/.studypal/config.yaml when present), then STUDYPAL_*
// environment variables.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	cfg := Defaults(home)

	path := os.Getenv("STUDYPAL_CONFIG")
	explicit := path != ""
	if !explicit {
		path = filepath.Join(home, dirName, "config.yaml")
	}
	if err := loadFile(&cfg, path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile decodes path over cfg; keys absent from the file keep their
// current values.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.DBPath = envStr("STUDYPAL_DB", cfg.DBPath)
	cfg.UserID = envStr("STUDYPAL_USER", cfg.UserID)
	cfg.Adaptive = envBool("STUDYPAL_ADAPTIVE", cfg.Adaptive)
	cfg.RecomputeInterval = envDuration("STUDYPAL_RECOMPUTE_INTERVAL", cfg.RecomputeInterval)
	cfg.LogLevel = envStr("STUDYPAL_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = envStr("STUDYPAL_LOG_FORMAT", cfg.LogFormat)
	cfg.CacheSize = envInt("STUDYPAL_CACHE_SIZE", cfg.CacheSize)
	cfg.MetricsAddr = envStr("STUDYPAL_METRICS_ADDR", cfg.MetricsAddr)
	cfg.Deterministic = envBool("STUDYPAL_DETERMINISTIC", cfg.Deterministic)
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.UserID) == "" {
		return errors.New("config: user_id must not be empty")
	}
	if c.RecomputeInterval <= 0 {
		return fmt.Errorf("config: recompute_interval must be positive, got %s", c.RecomputeInterval)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("config: cache_size must be positive, got %d", c.CacheSize)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("config: log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
