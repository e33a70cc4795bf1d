package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SHIFTPAY_DATA_DIR.
const EnvPrefix = "SHIFTPAY"

// AppConfig is where and how the tracker stores its data.
type AppConfig struct {
	DataDir  string `mapstructure:"data_dir" validate:"required"`
	Backend  string `mapstructure:"backend" validate:"oneof=file sqlite"`
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

// DefaultDataDir returns ~/.shiftpay, or ./.shiftpay when the home directory
// is unknown.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shiftpay"
	}
	return filepath.Join(home, ".shiftpay")
}

// LoadAppConfig resolves the app config from, in increasing priority:
// defaults, the config file, a .env file in the working directory, and
// SHIFTPAY_* environment variables. An empty configFile looks for
// config.yaml in the working directory and the default data directory.
func LoadAppConfig(configFile string) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("backend", "file")
	v.SetDefault("log_level", "warn")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(DefaultDataDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Backend = strings.ToLower(cfg.Backend)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := ValidateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}
