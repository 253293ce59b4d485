// Package config loads the appctx CLI configuration from an optional .env file,
// a YAML config file and APPCTX_* environment variables, in increasing priority.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "APPCTX"

type Config struct {
	Log      LogConfig `mapstructure:"log"`
	Manifest string    `mapstructure:"manifest"`
	Ordering string    `mapstructure:"ordering" validate:"omitempty,oneof=declaration dependency"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// LoaderConfig holds explicit file locations. Empty values fall back to
// ./config.yml and ./.env when those exist.
type LoaderConfig struct {
	ConfigFile string
	EnvFile    string
}

var validate = validator.New()

func Load(opts LoaderConfig) (*Config, error) {
	if err := loadEnv(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	applyDefaults(v)

	configFile := opts.ConfigFile
	if configFile == "" && exists("config.yml") {
		configFile = "config.yml"
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config: %s", configFile)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	cfg.Ordering = strings.ToLower(cfg.Ordering)

	if err := validate.Struct(&cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("manifest", "")
	v.SetDefault("ordering", "declaration")
}

func loadEnv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return errors.Wrapf(err, "failed to load env file: %s", path)
		}
		return nil
	}
	if exists(".env") {
		if err := godotenv.Load(".env"); err != nil {
			return errors.Wrap(err, "failed to load .env")
		}
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
