package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Formats lists the report formats understood by the run command.
var Formats = []string{"text", "table", "json", "yaml", "markdown", "precise"}

// Backends lists the supported history stores.
var Backends = []string{"json", "sqlite", "postgres"}

// Load initializes the configuration from file and environment variables.
// A missing config file is not an error.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("SUMBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	return nil
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("format", "text")
	viper.SetDefault("save", false)
	viper.SetDefault("compare", false)
	viper.SetDefault("threshold", 10.0)
	viper.SetDefault("fail_threshold", 0.0)
	viper.SetDefault("history.backend", "json")
	viper.SetDefault("history.path", ".sumbench/history.json")
	viper.SetDefault("history.dsn", "")
	viper.SetDefault("metrics.enabled", false)
	viper.SetDefault("metrics.file", "")
	viper.SetDefault("metrics_port", 2112)
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
}

// BindFlags binds each flag in fs whose name appears in keys to the viper key
// it maps to. Flags named with dashes map to underscored keys.
func BindFlags(fs *pflag.FlagSet, keys map[string]string) error {
	for flagName, key := range keys {
		flag := fs.Lookup(flagName)
		if flag == nil {
			return fmt.Errorf("unknown flag %q", flagName)
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", flagName, err)
		}
	}
	return nil
}
