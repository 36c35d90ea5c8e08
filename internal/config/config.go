package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

const (
	EnvWebhookURL = "SLACK_WEBHOOK_URL"
	EnvLogJSON    = "LOG_JSON"
	EnvLogLevel   = "LOG_LEVEL"
)

// ErrMissingWebhook means SLACK_WEBHOOK_URL is unset or blank.
var ErrMissingWebhook = errors.New(EnvWebhookURL + " not set")

// Config is everything the process reads from its environment.
type Config struct {
	WebhookURL string
	Logging    LoggingConfig
}

type LoggingConfig struct {
	Level string
	JSON  bool
}

// Load reads the process environment. The returned Config is only usable
// when err is nil.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom is Load with an explicit variable lookup.
func LoadFrom(getenv func(string) string) (Config, error) {
	cfg := Config{
		WebhookURL: strings.TrimSpace(getenv(EnvWebhookURL)),
		Logging: LoggingConfig{
			Level: strings.TrimSpace(getenv(EnvLogLevel)),
		},
	}
	if raw := strings.TrimSpace(getenv(EnvLogJSON)); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogJSON, err)
		}
		cfg.Logging.JSON = enabled
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.WebhookURL == "" {
		return ErrMissingWebhook
	}
	if err := validateHTTPURL(c.WebhookURL); err != nil {
		return fmt.Errorf("%s: %w", EnvWebhookURL, err)
	}
	return nil
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}
