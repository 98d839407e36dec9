package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/expense-tracker/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the tracker reads,
// e.g. EXPENSE_TRACKER_DATA_FILE.
const EnvPrefix = "EXPENSE_TRACKER"

// Config represents the application configuration
type Config struct {
	DataFile        string `mapstructure:"data_file"`
	LogLevel        string `mapstructure:"log_level"`
	Color           bool   `mapstructure:"color"`
	SkipInvalidRows bool   `mapstructure:"skip_invalid_rows"` // drop rows with a bad amount instead of failing
}

// LoadConfig loads configuration from file, environment variables and flags.
// An explicit configPath must exist; otherwise expense-tracker.toml is looked
// up in the working directory and in ~/.config/expense-tracker.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("toml")

	// Set defaults
	v.SetDefault("data_file", "expenses.csv")
	v.SetDefault("log_level", "warn")
	v.SetDefault("color", true)
	v.SetDefault("skip_invalid_rows", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("expense-tracker")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "expense-tracker"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if flags != nil {
		if noColor, err := flags.GetBool("no-color"); err == nil && noColor {
			config.Color = false
		}
	}

	return &config, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"data_file": "file",
		"log_level": "log-level",
	}
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("data_file cannot be empty")
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
