// Package config holds the terminal host settings.
package config

import (
	"context"
	"fmt"
	"github.com/viant/afs"
	"github.com/viant/sitekit/notify"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	DefaultBaseURL  = "http://localhost:8000"
	DefaultStoreURL = "~/.sitekit/session.json"
	DefaultTimeout  = 30 * time.Second
	DefaultLogLevel = "info"
)

// Config represents the client settings
type Config struct {
	BaseURL         string        `yaml:"baseURL"`
	StoreURL        string        `yaml:"storeURL"`
	LogLevel        string        `yaml:"logLevel"`
	Timeout         time.Duration `yaml:"timeout"`
	NotificationTTL time.Duration `yaml:"notificationTTL"`
	Color           *bool         `yaml:"color"`
}

// Init fills in defaults and expands the home directory in StoreURL
func (c *Config) Init() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.StoreURL == "" {
		c.StoreURL = DefaultStoreURL
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.NotificationTTL <= 0 {
		c.NotificationTTL = notify.DefaultTTL
	}
	if c.Color == nil {
		color := true
		c.Color = &color
	}
	c.StoreURL = expandHome(c.StoreURL)
}

// Validate checks the settings
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("invalid baseURL: %q, expected http(s) URL", c.BaseURL)
	}
	return nil
}

// Load reads a YAML config from an afs URL; an empty URL yields defaults.
func Load(ctx context.Context, URL string) (*Config, error) {
	ret := &Config{}
	if URL != "" {
		fs := afs.New()
		data, err := fs.DownloadWithURL(ctx, expandHome(URL))
		if err != nil {
			return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
		}
		if err = yaml.Unmarshal(data, ret); err != nil {
			return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
		}
	}
	ret.Init()
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

func expandHome(location string) string {
	if !strings.HasPrefix(location, "~/") {
		return location
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return location
	}
	return filepath.Join(home, location[2:])
}
