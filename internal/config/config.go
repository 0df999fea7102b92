package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var ErrNoToken = errors.New("BOT_TOKEN env variable is not set")

type Duration struct{ time.Duration }

// [Duration] implements [yaml.Unmarshaler]. Plain numbers are seconds.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.New("invalid duration")
	}
	if secs, err := strconv.Atoi(value.Value); err == nil {
		d.Duration = time.Duration(secs) * time.Second
		return nil
	}
	var err error
	d.Duration, err = time.ParseDuration(value.Value)
	return err
}

func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

type Config struct {
	Token        string   `yaml:"token"`
	Addr         string   `yaml:"addr"`
	PollTimeout  int      `yaml:"poll_timeout"`
	RestartDelay Duration `yaml:"restart_delay"`
	LogLevel     string   `yaml:"log_level"`
	LogFile      string   `yaml:"log_file"`
	Development  bool     `yaml:"development"`
}

func Default() *Config {
	return &Config{
		Addr:         ":8000",
		PollTimeout:  60,
		RestartDelay: Duration{5 * time.Second},
		LogLevel:     "info",
	}
}

// Load reads the YAML file at path (if path is not empty), applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("unable to unmarshal config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if token, ok := os.LookupEnv("BOT_TOKEN"); ok {
		c.Token = strings.TrimSpace(token)
	}

	if port, ok := os.LookupEnv("PORT"); ok && port != "" {
		if _, err := strconv.Atoi(port); err != nil {
			return fmt.Errorf("unable to convert PORT to int: %w", err)
		}
		c.Addr = ":" + port
	}

	if timeoutStr, ok := os.LookupEnv("POLL_TIMEOUT"); ok {
		timeout, err := strconv.Atoi(timeoutStr)
		if err != nil {
			return fmt.Errorf("unable to convert POLL_TIMEOUT to int: %w", err)
		}
		c.PollTimeout = timeout
	}

	if delayStr, ok := os.LookupEnv("RESTART_DELAY"); ok {
		delay, err := time.ParseDuration(delayStr)
		if err != nil {
			return fmt.Errorf("unable to parse RESTART_DELAY: %w", err)
		}
		c.RestartDelay = Duration{delay}
	}

	if level, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = level
	}

	if file, ok := os.LookupEnv("LOG_FILE"); ok {
		c.LogFile = file
	}

	if development, ok := os.LookupEnv("DEVELOPMENT"); ok {
		c.Development = development != "0" && development != ""
	}

	return nil
}

func (c *Config) Validate() error {
	if c.Token == "" {
		return ErrNoToken
	}
	if c.PollTimeout < 0 {
		return fmt.Errorf("poll timeout must not be negative, got %d", c.PollTimeout)
	}
	if c.RestartDelay.Duration <= 0 {
		return fmt.Errorf("restart delay must be positive, got %s", c.RestartDelay)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"addr":          c.Addr,
		"poll_timeout":  c.PollTimeout,
		"restart_delay": c.RestartDelay.String(),
		"log_level":     c.LogLevel,
		"log_file":      c.LogFile,
		"development":   c.Development,
	}
}
