// Package config provides configuration management for the GameShelf CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"

	"github.com/gameshelf/gameshelf/internal/models"
)

// Config is the full client configuration.
//
// Config file location:
//   - Windows: %USERPROFILE%\.config\gameshelf\config
//   - Unix: ~/.config/gameshelf/config
//
// INI format:
//
//	[catalog]
//	api_base_url = https://catalog.example.com/api
//	api_key = <token>
//
//	[browse]
//	page_size = 10
//	sort_by = title
//	sort_descending = false
//
//	[proxy]
//	mode = no-proxy
//	host =
//	port = 8080
//	user =
//	no_proxy =
type Config struct {
	// Catalog service connection settings
	APIBaseURL string `ini:"api_base_url"`
	APIKey     string `ini:"api_key"`

	// Browse defaults (persisted across sessions)
	Browse BrowseConfig

	// Proxy settings
	Proxy ProxyConfig
}

// BrowseConfig holds the default query parameters applied when a browse
// session starts.
type BrowseConfig struct {
	// PageSize must be one of models.PageSizes. Default: 10
	PageSize int `ini:"page_size"`

	// SortBy must be one of models.SortFields. Default: "title"
	SortBy string `ini:"sort_by"`

	// SortDescending flips the sort direction. Default: false
	SortDescending bool `ini:"sort_descending"`
}

// ProxyConfig holds outbound proxy settings.
type ProxyConfig struct {
	// Mode is one of "no-proxy", "system", "basic", "ntlm". Default: "no-proxy"
	Mode string `ini:"mode"`

	Host     string `ini:"host"`
	Port     int    `ini:"port"`
	User     string `ini:"user"`
	Password string `ini:"password"`

	// NoProxy is a comma-separated list of hosts to bypass the proxy
	NoProxy string `ini:"no_proxy"`
}

// Validation errors
var (
	ErrMissingAPIBaseURL = errors.New("api_base_url is required")
	ErrInvalidPageSize   = errors.New("page_size must be one of 5, 10, 20, 50")
	ErrInvalidSortField  = errors.New("sort_by must be one of title, publisher, releaseDate, rating, price")
	ErrInvalidProxyMode  = errors.New("proxy mode must be one of no-proxy, system, basic, ntlm")
)

// Environment variable overrides. A .env file in the working directory is
// honored before these are read.
const (
	EnvAPIBaseURL = "GAMESHELF_API_URL"
	EnvAPIKey     = "GAMESHELF_API_KEY"
)

// DefaultConfigPath returns the default path for the config file.
// - Windows: %USERPROFILE%\.config\gameshelf\config
// - Unix: ~/.config/gameshelf/config
func DefaultConfigPath() (string, error) {
	var configDir string

	if runtime.GOOS == "windows" {
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", errors.New("USERPROFILE environment variable not set")
		}
		configDir = filepath.Join(userProfile, ".config", "gameshelf")
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config", "gameshelf")
	}

	return filepath.Join(configDir, "config"), nil
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Browse: BrowseConfig{
			PageSize:       models.DefaultPageSize,
			SortBy:         models.DefaultSortField,
			SortDescending: false,
		},
		Proxy: ProxyConfig{
			Mode: "no-proxy",
			Port: 8080,
		},
	}
}

// Load reads configuration from an INI file and applies environment
// overrides. A missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			file, err := ini.Load(path)
			if err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}

			if err := file.Section("catalog").MapTo(cfg); err != nil {
				return nil, fmt.Errorf("failed to map catalog section: %w", err)
			}
			if err := file.Section("browse").MapTo(&cfg.Browse); err != nil {
				return nil, fmt.Errorf("failed to map browse section: %w", err)
			}
			if err := file.Section("proxy").MapTo(&cfg.Proxy); err != nil {
				return nil, fmt.Errorf("failed to map proxy section: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration to an INI file, creating the parent
// directory if needed. The file is written 0600 since it carries the key.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file := ini.Empty()
	if err := file.Section("catalog").ReflectFrom(c); err != nil {
		return fmt.Errorf("failed to encode catalog section: %w", err)
	}
	if err := file.Section("browse").ReflectFrom(&c.Browse); err != nil {
		return fmt.Errorf("failed to encode browse section: %w", err)
	}
	if err := file.Section("proxy").ReflectFrom(&c.Proxy); err != nil {
		return fmt.Errorf("failed to encode proxy section: %w", err)
	}

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return os.Chmod(path, 0600)
}

// applyEnvOverrides lets the environment win over the config file.
// A .env file in the working directory is loaded first if present.
func (c *Config) applyEnvOverrides() {
	_ = godotenv.Load()

	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}

	c.APIBaseURL = strings.TrimSuffix(c.APIBaseURL, "/")
}

// Validate checks the configuration for use against a live service.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return ErrMissingAPIBaseURL
	}
	if !models.IsPageSize(c.Browse.PageSize) {
		return ErrInvalidPageSize
	}
	if !models.IsSortField(c.Browse.SortBy) {
		return ErrInvalidSortField
	}

	switch strings.ToLower(c.Proxy.Mode) {
	case "", "no-proxy", "system", "basic", "ntlm":
	default:
		return ErrInvalidProxyMode
	}

	return nil
}
