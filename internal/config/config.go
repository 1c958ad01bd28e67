package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPageURL = "http://localhost:8080/"
	DefaultTimeout = 30 * time.Second
)

type Config struct {
	// PageURL is the editor page the clip endpoint is resolved against.
	PageURL string `yaml:"page_url"`
	// Schedule reloads the clip listing on a cron spec. Empty loads once.
	Schedule string `yaml:"schedule,omitempty"`
	// Timeout bounds each load.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := strings.TrimSuffix(strings.TrimPrefix(string(match), "${"), "}")

		// Support ${VAR:-default} syntax
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		if val, ok := os.LookupEnv(varName); ok {
			return []byte(val)
		}
		if hasDefault {
			return []byte(defaultVal)
		}
		return match
	})
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.PageURL == "" {
		cfg.PageURL = DefaultPageURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the page URL is absolute http(s), that the timeout is
// positive, and that the schedule, if set, is a standard cron spec.
func (c *Config) Validate() error {
	u, err := url.Parse(c.PageURL)
	if err != nil {
		return fmt.Errorf("invalid page_url %q: %w", c.PageURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("page_url %q must be an absolute http(s) URL", c.PageURL)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}

	if c.Schedule != "" {
		if _, err := cron.ParseStandard(c.Schedule); err != nil {
			return fmt.Errorf("invalid schedule %q: %w", c.Schedule, err)
		}
	}

	return nil
}
