package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences and backend connection settings
type Config struct {
	APIURL   string `yaml:"api_url" json:"api_url"`     // Backend base URL (without /api)
	APIToken string `yaml:"api_token" json:"api_token"` // Optional bearer token

	Username      string `yaml:"username" json:"username"`                     // Dashboard login user
	Password      string `yaml:"password" json:"password"`                     // Dashboard login password
	PasswordHash  string `yaml:"password_hash,omitempty" json:"password_hash"` // bcrypt hash, takes precedence over password
	ConfirmDelete bool   `yaml:"confirm_delete" json:"confirm_delete"`         // Require confirmation for delete

	// Logging configuration
	LogLevel   string `yaml:"log_level" json:"log_level"`     // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file" json:"log_file"`       // Path to log file
	LogConsole bool   `yaml:"log_console" json:"log_console"` // Enable console logging
}

// DefaultConfig returns default settings
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	logPath := ""
	if home != "" {
		logPath = filepath.Join(home, ".leadboard", "logs", "leadboard.log")
	}

	return &Config{
		APIURL:        getEnv("LEADBOARD_API_URL", "http://localhost:1337"),
		APIToken:      os.Getenv("LEADBOARD_API_TOKEN"),
		Username:      getEnv("LEADBOARD_USERNAME", "admin"),
		Password:      getEnv("LEADBOARD_PASSWORD", "admin"),
		ConfirmDelete: true,
		LogLevel:      getEnv("LEADBOARD_LOG_LEVEL", "INFO"),
		LogFile:       getEnv("LEADBOARD_LOG_FILE", logPath),
		LogConsole:    getEnv("LEADBOARD_LOG_CONSOLE", "false") == "true",
	}
}

// BaseURL returns the API base including the /api prefix
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.APIURL, "/") + "/api"
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".leadboard", "config.yaml"), nil
}

// Load loads config from ~/.leadboard/config.yaml, then applies env
// overrides on top. Missing file means defaults.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Env always wins over the file
	if v := os.Getenv("LEADBOARD_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("LEADBOARD_API_TOKEN"); v != "" {
		cfg.APIToken = v
	}
	if v := os.Getenv("LEADBOARD_USERNAME"); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv("LEADBOARD_PASSWORD"); v != "" {
		cfg.Password = v
	}

	return cfg, nil
}

// Save saves config to ~/.leadboard/config.yaml
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
