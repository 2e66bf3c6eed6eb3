package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// Config holds runtime settings for the StyloCoin dashboard front ends.
//
// Units: the timeouts and OnlineCheckInterval are time.Duration values.
// AllowedOrigins is only used by the web gateway.
type Config struct {
	BackendURL          string        `env:"BACKEND_URL"`
	AuthTimeout         time.Duration `env:"AUTH_TIMEOUT"`
	RequestTimeout      time.Duration `env:"REQUEST_TIMEOUT"`
	DatabasePath        string        `env:"DATABASE"`
	ListenAddr          string        `env:"LISTEN_ADDR"`
	AllowedOrigins      []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
	PageSize            int           `env:"PAGE_SIZE"`
	OnlineCheckInterval time.Duration `env:"ONLINE_CHECK_INTERVAL"`
	LogLevel            string        `env:"LOG_LEVEL"`
	LogFormat           string        `env:"LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendURL = "http://127.0.0.1:8080"
	c.AuthTimeout = 25 * time.Second
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "stylo.db"
	c.ListenAddr = "127.0.0.1:8090"
	c.AllowedOrigins = []string{"http://localhost:3000"}
	c.PageSize = 10
	c.OnlineCheckInterval = 5 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "console"
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	var errs []error
	if u, err := url.Parse(c.BackendURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("backend url %q must be an absolute http(s) url", c.BackendURL))
	}
	if c.AuthTimeout <= 0 {
		errs = append(errs, errors.New("auth timeout must be positive"))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("request timeout must be positive"))
	}
	if c.PageSize <= 0 {
		errs = append(errs, errors.New("page size must be positive"))
	}
	if c.OnlineCheckInterval <= 0 {
		errs = append(errs, errors.New("online check interval must be positive"))
	}
	if c.DatabasePath == "" {
		errs = append(errs, errors.New("database path is empty"))
	}
	if len(c.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("allowed origins must list at least one origin"))
	}
	for _, o := range c.AllowedOrigins {
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			errs = append(errs, fmt.Errorf("allowed origin %q must start with http:// or https://", o))
		}
	}
	return errors.Join(errs...)
}

// Default adjusts the built-in defaults before any other source is applied.
type Default func(*Config)

// WebDefaults are the defaults of the web gateway: structured JSON logs.
func WebDefaults(c *Config) {
	c.LogFormat = "json"
}

// LoadConfig constructs a Config from os.Args and the environment. See Load.
func LoadConfig(defaults ...Default) *Config {
	return Load(os.Args[1:], defaults...)
}

// Load applies defaults, then overlays the environment (including a .env
// file), a JSON file named by -c and finally the flags in args. Later sources
// take precedence over earlier ones. Malformed input panics.
func Load(args []string, defaults ...Default) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	for _, d := range defaults {
		d(cfg)
	}
	parseEnv(cfg, args, nil)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
