package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// ClickHouseConfig holds the optional watch-mode sink settings.
// Protocol is "native" or "http".
type ClickHouseConfig struct {
	Enabled  bool   `yaml:"Enabled"`
	Address  string `yaml:"Address"`
	Username string `yaml:"Username"`
	Password string `yaml:"Password"`
	Database string `yaml:"Database"`
	Table    string `yaml:"Table"`
	Protocol string `yaml:"Protocol"`
}

// RedisConfig holds the connection settings for the redis offset store.
type RedisConfig struct {
	Host     string `yaml:"Host"`
	Port     int    `yaml:"Port"`
	DB       int    `yaml:"DB"`
	Password string `yaml:"Password"`
}

// LoggingConfig controls the log file and the Sentry integration.
type LoggingConfig struct {
	LogFile      string `yaml:"LogFile"`
	SentryDSN    string `yaml:"SentryDSN"`
	EnableSentry bool   `yaml:"EnableSentry"`
}

// Config describes the service settings. Convert mode works from flags
// alone; watch mode requires a config file.
type Config struct {
	InputDir    string `yaml:"InputDir"`
	OutputDir   string `yaml:"OutputDir"`
	MapFile     string `yaml:"MapFile"`
	FilePattern string `yaml:"FilePattern"`

	BatchSize     int `yaml:"BatchSize"`
	BatchInterval int `yaml:"BatchInterval"` // seconds

	ClickHouse       ClickHouseConfig `yaml:"ClickHouse"`
	ProcessedStorage string           `yaml:"ProcessedStorage"` // "file" or "redis"
	Redis            RedisConfig      `yaml:"Redis"`
	Logging          LoggingConfig    `yaml:"Logging"`
}

// Interval returns BatchInterval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.BatchInterval) * time.Second
}

// Load reads and parses the YAML config at path:
//  1. read the raw file
//  2. sanitize: strip BOM, replace tabs
//  3. unmarshal
//  4. apply defaults and validate
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(sanitize(raw), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// sanitize strips a UTF-8 BOM and replaces tabs so hand-edited configs
// survive the YAML parser.
func sanitize(data []byte) []byte {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	data = bytes.ReplaceAll(data, []byte("\t"), []byte("  "))
	return data
}

func (c *Config) applyDefaults() {
	if c.FilePattern == "" {
		c.FilePattern = "*.vc0"
	}
	if c.BatchSize == 0 {
		c.BatchSize = 500
	}
	if c.BatchInterval == 0 {
		c.BatchInterval = 5
	}
	if c.ProcessedStorage == "" {
		c.ProcessedStorage = "file"
	}
	if c.ClickHouse.Table == "" {
		c.ClickHouse.Table = "ics_log_records"
	}
}

// Validate checks the required fields.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("InputDir must not be empty")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("BatchSize must be positive")
	}
	if c.BatchInterval <= 0 {
		return fmt.Errorf("BatchInterval must be positive")
	}
	if c.ProcessedStorage != "file" && c.ProcessedStorage != "redis" {
		return fmt.Errorf("ProcessedStorage must be \"file\" or \"redis\", got %q", c.ProcessedStorage)
	}
	if c.ClickHouse.Enabled {
		if c.ClickHouse.Address == "" {
			return fmt.Errorf("ClickHouse.Address must not be empty")
		}
		if c.ClickHouse.Database == "" {
			return fmt.Errorf("ClickHouse.Database must not be empty")
		}
	}
	return nil
}
