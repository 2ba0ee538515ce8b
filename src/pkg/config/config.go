package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds the global application configuration
type Config struct {
	// General settings
	General struct {
		DataDir string `mapstructure:"data_dir"`
		Debug   bool   `mapstructure:"debug"`
	} `mapstructure:"general"`

	// Daemon settings
	Daemon struct {
		PIDFile  string `mapstructure:"pid_file"`
		LogFile  string `mapstructure:"log_file"`
		LogLevel string `mapstructure:"log_level"`
	} `mapstructure:"daemon"`

	// API settings
	API struct {
		Port int    `mapstructure:"port"`
		Host string `mapstructure:"host"`
	} `mapstructure:"api"`

	// Storage settings
	Storage struct {
		DatabasePath string `mapstructure:"database_path"`
	} `mapstructure:"storage"`
}

// LoadConfig reads in config file and ENV variables if set
func LoadConfig(configPath string) (*Config, error) {
	var config Config
	var configFile string

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// If config path is specified, use it
	if configPath != "" {
		viper.SetConfigFile(configPath)
		configFile = configPath
	} else {
		// Otherwise try standard locations
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/strlens")
		viper.AddConfigPath("/etc/strlens")

		// Set default config file path for creation if needed
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		configFile = filepath.Join(homeDir, ".config", "strlens", "config.yaml")
	}

	// Read in environment variables that match
	viper.AutomaticEnv()
	viper.SetEnvPrefix("STRLENS")

	// Try to read the config file
	if err := viper.ReadInConfig(); err != nil {
		// If config file is not found, create one with defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			config = DefaultConfig()

			// Ensure config directory exists
			configDir := filepath.Dir(configFile)
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create config directory: %w", err)
			}

			// Set the config values in viper
			mapConfigToViper(&config)

			// Write default config
			viper.SetConfigFile(configFile)
			if err := viper.WriteConfig(); err != nil {
				return nil, fmt.Errorf("failed to write default config: %w", err)
			}

			return &config, nil
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshal config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	dataDir := filepath.Join(homeDir, ".local", "share", "strlens")

	config := Config{}

	// General defaults
	config.General.DataDir = dataDir
	config.General.Debug = false

	// Daemon defaults
	config.Daemon.PIDFile = filepath.Join(dataDir, "strlens.pid")
	config.Daemon.LogFile = filepath.Join(dataDir, "strlens.log")
	config.Daemon.LogLevel = "info"

	// API defaults
	config.API.Port = 8085
	config.API.Host = "localhost"

	// Storage defaults
	config.Storage.DatabasePath = filepath.Join(dataDir, "strings.db")

	return config
}

// ValidateConfig checks if the configuration is valid
func ValidateConfig(config *Config) error {
	// Validate data directory
	if config.General.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(config.General.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if config.Storage.DatabasePath == "" {
		return fmt.Errorf("storage database path cannot be empty")
	}

	if config.API.Host == "" {
		return fmt.Errorf("api host cannot be empty")
	}

	if config.API.Port <= 0 {
		return fmt.Errorf("api port must be positive")
	}

	return nil
}

// GetAPIURL returns the base URL for the daemon API
func (c *Config) GetAPIURL() string {
	return fmt.Sprintf("http://%s:%d", c.API.Host, c.API.Port)
}

// Watch re-reads the configuration whenever the loaded config file
// changes on disk and invokes onChange with the fresh configuration.
// Reload errors are reported through onError; the previous
// configuration stays in effect.
func Watch(onChange func(*Config), onError func(error)) {
	viper.OnConfigChange(func(_ fsnotify.Event) {
		var cfg Config
		if err := viper.Unmarshal(&cfg); err != nil {
			if onError != nil {
				onError(fmt.Errorf("failed to reload config: %w", err))
			}
			return
		}
		onChange(&cfg)
	})
	viper.WatchConfig()
}

// mapConfigToViper maps the config struct to viper settings
func mapConfigToViper(config *Config) {
	viper.Set("general.data_dir", config.General.DataDir)
	viper.Set("general.debug", config.General.Debug)

	viper.Set("daemon.pid_file", config.Daemon.PIDFile)
	viper.Set("daemon.log_file", config.Daemon.LogFile)
	viper.Set("daemon.log_level", config.Daemon.LogLevel)

	viper.Set("api.port", config.API.Port)
	viper.Set("api.host", config.API.Host)

	viper.Set("storage.database_path", config.Storage.DatabasePath)
}

// WriteConfig writes the configuration to the specified file path
func WriteConfig(config *Config, configPath string) error {
	// Ensure the directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set the config values in viper
	mapConfigToViper(config)

	// Write the config file
	viper.SetConfigFile(configPath)
	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// CreateDefaultConfig creates a default configuration file at the specified path
// Returns the path to the created config file and any error encountered
func CreateDefaultConfig(configPath string) (string, error) {
	// If configPath is empty, use the default location
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configDir := filepath.Join(homeDir, ".config", "strlens")
		configPath = filepath.Join(configDir, "config.yaml")
	}

	// Create default config
	config := DefaultConfig()

	// Write the config
	if err := WriteConfig(&config, configPath); err != nil {
		return "", err
	}

	return configPath, nil
}
