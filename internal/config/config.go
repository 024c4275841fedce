package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rogerio-castellano/tinymart/internal/models"
	"github.com/rogerio-castellano/tinymart/internal/presenter"
	"github.com/rogerio-castellano/tinymart/internal/repo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const EnvPrefix = "TINYMART"

type Config struct {
	Owner          OwnerConfig   `mapstructure:"owner"`
	NewReleaseYear int           `mapstructure:"new_release_year"`
	Output         string        `mapstructure:"output"`
	Log            LogConfig     `mapstructure:"log"`
	Catalog        CatalogConfig `mapstructure:"catalog"`
}

type OwnerConfig struct {
	First string `mapstructure:"first"`
	Last  string `mapstructure:"last"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CatalogConfig struct {
	// Seed is a YAML product file; empty means the built-in sample catalog.
	Seed       string `mapstructure:"seed"`
	ImportMode string `mapstructure:"import_mode"`
}

func (c Config) OwnerName() models.PersonName {
	return models.NewPersonName(c.Owner.First, c.Owner.Last)
}

func (c Config) ImportMode() repo.ImportMode {
	return repo.ParseImportMode(c.Catalog.ImportMode)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("owner.first", "John")
	v.SetDefault("owner.last", "Smith")
	v.SetDefault("new_release_year", 1970)
	v.SetDefault("output", string(presenter.FormatText))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("catalog.seed", "")
	v.SetDefault("catalog.import_mode", string(repo.ImportSkip))
}

// Load reads the optional config file at path and TINYMART_* environment
// variables (TINYMART_LOG_LEVEL overrides log.level), on top of the defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if _, err := presenter.ParseFormat(c.Output); err != nil {
		errs = append(errs, err)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level: %w", err))
	}
	if c.NewReleaseYear < 0 {
		errs = append(errs, fmt.Errorf("new_release_year cannot be negative (got %d)", c.NewReleaseYear))
	}
	return errors.Join(errs...)
}
