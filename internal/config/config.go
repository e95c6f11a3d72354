package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"logdeck/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	}
	Store struct {
		Capacity int `yaml:"capacity"`
	}
	Bus struct {
		Buffer int `yaml:"buffer"`
	}
	Stream struct {
		Interval  time.Duration `yaml:"interval"`
		Autostart bool          `yaml:"autostart"`
	}
	UI struct {
		Theme string `yaml:"theme"`
		Seed  bool   `yaml:"seed"`
	}
	Export struct {
		Format string `yaml:"format"`
		Path   string `yaml:"path"`
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Store.Capacity = DefaultStoreCapacity
	cfg.Bus.Buffer = DefaultBusBuffer

	cfg.Stream.Interval = DefaultStreamInterval
	cfg.Stream.Autostart = false

	cfg.UI.Theme = DefaultTheme
	cfg.UI.Seed = true

	cfg.Export.Format = DefaultExportFormat
	cfg.Export.Path = DefaultExportPath

	return cfg
}

// Load reads .env and logdeck.yaml from the working directory and applies LOGDECK_* overrides
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.ErrFailedToReadConfig
	}

	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)

	data, err := os.ReadFile(ConfigFile)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToReadConfig
	}

	if err == nil {
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToParseConfig
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// setDefaults registers every key so env overrides apply even without a config file
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("store.capacity", cfg.Store.Capacity)
	v.SetDefault("bus.buffer", cfg.Bus.Buffer)
	v.SetDefault("stream.interval", cfg.Stream.Interval)
	v.SetDefault("stream.autostart", cfg.Stream.Autostart)
	v.SetDefault("ui.theme", cfg.UI.Theme)
	v.SetDefault("ui.seed", cfg.UI.Seed)
	v.SetDefault("export.format", cfg.Export.Format)
	v.SetDefault("export.path", cfg.Export.Path)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateStore(); err != nil {
		return err
	}

	if err := c.validateStream(); err != nil {
		return err
	}

	return c.validateUI()
}

// validateStore validates store and bus sizing
func (c *Config) validateStore() error {
	if c.Store.Capacity <= 0 {
		return errors.ErrInvalidStoreCapacity
	}

	if c.Bus.Buffer <= 0 {
		return errors.ErrInvalidBusBuffer
	}

	return nil
}

// validateStream validates streaming settings
func (c *Config) validateStream() error {
	if c.Stream.Interval <= 0 {
		return errors.ErrInvalidStreamInterval
	}

	return nil
}

// validateUI validates theme and export settings
func (c *Config) validateUI() error {
	switch c.UI.Theme {
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("%w: '%s' (must be 'light' or 'dark')", errors.ErrInvalidTheme, c.UI.Theme)
	}

	switch c.Export.Format {
	case ExportJSON, ExportYAML:
	default:
		return fmt.Errorf("%w: '%s' (must be 'json' or 'yaml')", errors.ErrUnknownExportFormat, c.Export.Format)
	}

	return nil
}

// normalize trims and lowercases enumerated string settings
func (c *Config) normalize() {
	c.Logging.Level = normalizeValue(c.Logging.Level)
	c.Logging.Format = normalizeValue(c.Logging.Format)
	c.UI.Theme = normalizeValue(c.UI.Theme)
	c.Export.Format = normalizeValue(c.Export.Format)
}

func normalizeValue(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
