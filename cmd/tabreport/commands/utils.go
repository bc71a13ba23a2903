/*
File: utils.go
Description: Shared utilities for the tabreport commands. Provides common
configuration loading and logger construction used across all command
implementations.
*/

package commands

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/meridianhealth/tabreport/pkg/logging"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("TABREPORT")
	viper.AutomaticEnv()

	return nil
}

// NewLogger builds the run logger from the loaded configuration.
func NewLogger() (*logging.Logger, error) {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  viper.GetString("log_level"),
		Format: logging.LogFormat(viper.GetString("log_format")),
		Colors: viper.GetBool("log_colors"),
	})
}
