// Package config manages service configuration loaded from an optional
// YAML file and environment variables, with the environment winning.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/treesurvey/config"
	ConfigFileName    = "treesurvey.yml"
)

// Config holds all service configuration settings.
type Config struct {
	// DatabaseURL is the PostgreSQL connection string.
	DatabaseURL string `yaml:"database_url" json:"database_url"`

	// BindAddress is the address the HTTP server binds to.
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the HTTP server port.
	Port string `yaml:"port" json:"port"`

	// CORSOrigins lists the allowed CORS origins.
	CORSOrigins []string `yaml:"cors_origins" json:"cors_origins"`

	// BcryptCost is the bcrypt work factor used when hashing passwords
	// at signup.
	BcryptCost int `yaml:"bcrypt_cost" json:"bcrypt_cost"`

	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level" json:"log_level"`

	configFilePath string
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary.
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			cfg = newDefault()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment.
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

func newDefault() *Config {
	return &Config{
		BindAddress: "0.0.0.0",
		Port:        "8800",
		CORSOrigins: []string{"*"},
		BcryptCost:  bcrypt.DefaultCost,
		LogLevel:    "info",
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	cfg := newDefault()

	configPath := os.Getenv("SURVEY_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(cfg.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", cfg.configFilePath, err)
		}
		cfg.applyFileConfig(&fileConfig)
	}

	cfg.applyEnvConfig()

	return cfg, nil
}

// FilePath returns the path of the config file this configuration was
// loaded from (whether or not the file exists).
func (c *Config) FilePath() string {
	return c.configFilePath
}

func (c *Config) applyFileConfig(file *Config) {
	if file.DatabaseURL != "" {
		c.DatabaseURL = file.DatabaseURL
	}
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
	}
	if file.Port != "" {
		c.Port = file.Port
	}
	if len(file.CORSOrigins) > 0 {
		c.CORSOrigins = file.CORSOrigins
	}
	if file.BcryptCost != 0 {
		c.BcryptCost = file.BcryptCost
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("DATABASE_URL"); val != "" {
		c.DatabaseURL = val
	}
	if val := os.Getenv("BIND_ADDRESS"); val != "" {
		c.BindAddress = val
	}
	if val := os.Getenv("PORT"); val != "" {
		c.Port = val
	}
	if val := os.Getenv("SURVEY_CORS_ORIGINS"); val != "" {
		c.CORSOrigins = splitAndTrim(val)
	}
	if val := os.Getenv("SURVEY_BCRYPT_COST"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.BcryptCost = i
		}
	}
	if val := os.Getenv("SURVEY_LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}
}

func splitAndTrim(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
