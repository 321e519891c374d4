package server

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds HTTP server configuration.
type Config struct {
	// Addr is the listen address. Default: ":8080".
	Addr string

	// CORSOrigins lists the publisher origins allowed to call the API.
	// Default: every origin, since the widget is framed by arbitrary pages.
	CORSOrigins []string

	// RequestTimeout bounds each request, upstream search included.
	// Default: 30s.
	RequestTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		CORSOrigins:    []string{"*"},
		RequestTimeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from BOOSTPUB_HTTP_ADDR,
// BOOSTPUB_CORS_ORIGINS and BOOSTPUB_REQUEST_TIMEOUT.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("BOOSTPUB_HTTP_ADDR"); v != "" {
		cfg.Addr = v
	}
	if origins := csv(os.Getenv("BOOSTPUB_CORS_ORIGINS")); len(origins) > 0 {
		cfg.CORSOrigins = origins
	}
	if d, err := time.ParseDuration(os.Getenv("BOOSTPUB_REQUEST_TIMEOUT")); err == nil {
		cfg.RequestTimeout = d
	}
	return cfg
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("listen address is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if len(c.CORSOrigins) == 0 {
		return fmt.Errorf("at least one CORS origin is required")
	}
	return nil
}

func csv(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
