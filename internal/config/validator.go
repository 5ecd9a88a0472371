package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// ValidateConfig validates every key the run command reads. It must be called
// after command flags are bound so that flags take precedence over env and file.
func ValidateConfig() error {
	var errors []string

	if format := strings.ToLower(viper.GetString("format")); !slices.Contains(Formats, format) {
		errors = append(errors, fmt.Sprintf("format must be one of %s, got: %q", strings.Join(Formats, ", "), format))
	}

	errors = append(errors, historyErrors()...)

	if threshold := viper.GetFloat64("threshold"); threshold < 0 {
		errors = append(errors, fmt.Sprintf("threshold must not be negative, got: %v", threshold))
	}

	if threshold := viper.GetFloat64("fail_threshold"); threshold < 0 {
		errors = append(errors, fmt.Sprintf("fail_threshold must not be negative, got: %v", threshold))
	}

	// Validate metrics_port (if set)
	if viper.IsSet("metrics_port") {
		port := viper.GetInt("metrics_port")
		if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("metrics_port must be between 1 and 65535, got: %d", port))
		}
	}

	return joinErrors(errors)
}

// ValidateHistoryConfig validates only the history.* keys.
func ValidateHistoryConfig() error {
	return joinErrors(historyErrors())
}

func historyErrors() []string {
	var errors []string

	backend := strings.ToLower(viper.GetString("history.backend"))
	if !slices.Contains(Backends, backend) {
		errors = append(errors, fmt.Sprintf("history.backend must be one of %s, got: %q", strings.Join(Backends, ", "), backend))
	}
	if backend == "postgres" && viper.GetString("history.dsn") == "" && os.Getenv("DATABASE_URL") == "" {
		errors = append(errors, "history.dsn or DATABASE_URL is required for the postgres backend")
	}
	return errors
}

func joinErrors(errors []string) error {
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}
	return nil
}
