package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"docdistance/internal/loader"
	"docdistance/internal/normalize"
)

// EnvConfigPath names the environment variable that overrides the config path.
const EnvConfigPath = "DOCDISTANCE_CONFIG"

// NormalizerConfig controls how raw text becomes tokens.
type NormalizerConfig struct {
	Punctuation *string `yaml:"punctuation,omitempty" toml:"punctuation,omitempty"`
	Lowercase   *bool   `yaml:"lowercase,omitempty" toml:"lowercase,omitempty"`
}

// LoaderConfig selects which files are read as documents.
type LoaderConfig struct {
	Extensions []string `yaml:"extensions" toml:"extensions"`
}

// ReportConfig controls how rankings are printed.
type ReportConfig struct {
	Limit     int `yaml:"limit" toml:"limit"`
	Precision int `yaml:"precision" toml:"precision"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Normalizer NormalizerConfig `yaml:"normalizer" toml:"normalizer"`
	Loader     LoaderConfig     `yaml:"loader" toml:"loader"`
	Report     ReportConfig     `yaml:"report" toml:"report"`
	Log        LogConfig        `yaml:"log" toml:"log"`
}

// PunctuationSet returns the configured punctuation, or the ASCII set when unset.
func (c *AppConfig) PunctuationSet() string {
	if c.Normalizer.Punctuation == nil {
		return normalize.ASCIIPunctuation
	}
	return *c.Normalizer.Punctuation
}

// Lowercase reports whether tokens are lowercased; true when unset.
func (c *AppConfig) Lowercase() bool {
	return c.Normalizer.Lowercase == nil || *c.Normalizer.Lowercase
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg AppConfig
	if isTOML(path) {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyConfigDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault tries $DOCDISTANCE_CONFIG, ./docdistance.yaml, then
// ~/.config/docdistance/config.yaml. If none exists, it writes defaults to the
// user path and returns them.
func LoadDefault() (*AppConfig, string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		cfg, err := Load(p)
		return cfg, p, err
	}
	cwdPath := "docdistance.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects settings the application cannot honour.
func (c *AppConfig) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unsupported value %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format: unsupported value %q", c.Log.Format)
	}
	if c.Report.Limit < 0 {
		return fmt.Errorf("report.limit: must be >= 0, got %d", c.Report.Limit)
	}
	if c.Report.Precision < 0 || c.Report.Precision > 12 {
		return fmt.Errorf("report.precision: must be within 0..12, got %d", c.Report.Precision)
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "docdistance", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	punctuation := normalize.ASCIIPunctuation
	lowercase := true
	return &AppConfig{
		Normalizer: NormalizerConfig{Punctuation: &punctuation, Lowercase: &lowercase},
		Loader:     LoaderConfig{Extensions: append([]string(nil), loader.DefaultExtensions...)},
		Report:     ReportConfig{Precision: 4},
		Log:        LogConfig{Level: "info", Format: "console"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if len(cfg.Loader.Extensions) == 0 {
		cfg.Loader.Extensions = append([]string(nil), loader.DefaultExtensions...)
	}
	if cfg.Report.Precision == 0 {
		cfg.Report.Precision = 4
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
}
