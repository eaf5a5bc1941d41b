// Package config provides centralized configuration for the server.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/hugo-85/mcp-randomuserme/pkg/randomuser"
)

// Config holds the complete configuration for the application.
type Config struct {
	// Upstream API configuration
	RandomUser struct {
		BaseURL string
		Timeout time.Duration
	}

	// Logging configuration
	Log struct {
		Level string
	}
}

var (
	once   sync.Once
	config *Config
)

// Load initializes the configuration from environment variables, falling
// back to defaults. RANDOMUSER_BASE_URL, RANDOMUSER_TIMEOUT and LOG_LEVEL
// are recognized.
func Load() *Config {
	once.Do(func() {
		v := viper.New()

		v.SetDefault("randomuser.base_url", randomuser.DefaultBaseURL)
		v.SetDefault("randomuser.timeout", 30*time.Second)
		v.SetDefault("log.level", "info")

		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		config = &Config{}
		config.RandomUser.BaseURL = v.GetString("randomuser.base_url")
		config.RandomUser.Timeout = v.GetDuration("randomuser.timeout")
		config.Log.Level = v.GetString("log.level")
	})

	return config
}

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	if _, err := url.ParseRequestURI(c.RandomUser.BaseURL); err != nil {
		return fmt.Errorf("invalid randomuser base URL %q: %w", c.RandomUser.BaseURL, err)
	}
	if c.RandomUser.Timeout <= 0 {
		return fmt.Errorf("randomuser timeout must be positive, got %s", c.RandomUser.Timeout)
	}
	return nil
}
