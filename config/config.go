package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Log struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

type Config struct {
	Difficulty string `yaml:"difficulty"`
	Language   string `yaml:"language"`
	// Seed fixes the mine layout sequence; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
	Log  Log   `yaml:"log"`
}

func Default() *Config {
	return &Config{
		Difficulty: Beginner.Name,
		Language:   "en",
		Log:        Log{Level: "info"},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

var ErrUnknownLanguage = errors.New("unknown language")

func (c *Config) Validate() error {
	if _, err := PresetByName(c.Difficulty); err != nil {
		return err
	}
	if !SupportedLanguage(c.Language) {
		return fmt.Errorf("%w %q", ErrUnknownLanguage, c.Language)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// SupportedLanguage reports whether the UI has messages for lang.
func SupportedLanguage(lang string) bool {
	switch lang {
	case "en", "es":
		return true
	}
	return false
}
