package search

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds search provider configuration.
type Config struct {
	// Provider selects the backend.
	// Values: "graph", "file"
	Provider string

	Graph GraphConfig
	File  FileConfig
	Retry RetryConfig

	// Timeout bounds a single search including retries. Default: 20s.
	Timeout time.Duration
}

// GraphConfig holds graph API configuration.
type GraphConfig struct {
	BaseURL string // Default: "https://graph.boostpow.com"
}

// FileConfig points the file provider at a stored search response.
type FileConfig struct {
	Path string
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "graph",
		Graph: GraphConfig{
			BaseURL: defaultGraphBaseURL,
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 20 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset or unparsable values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("BOOSTPUB_SEARCH_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if u := os.Getenv("BOOSTPUB_GRAPH_URL"); u != "" {
		cfg.Graph.BaseURL = u
	}
	if f := os.Getenv("BOOSTPUB_SEARCH_FIXTURE"); f != "" {
		cfg.File.Path = f
	}
	if d, err := time.ParseDuration(os.Getenv("BOOSTPUB_SEARCH_TIMEOUT")); err == nil {
		cfg.Timeout = d
	}
	if n, err := strconv.Atoi(os.Getenv("BOOSTPUB_SEARCH_RETRIES")); err == nil && n > 0 {
		cfg.Retry.MaxAttempts = n
	}

	return cfg
}

// Validate checks that the selected provider is fully configured.
func (c Config) Validate() error {
	switch c.Provider {
	case "graph":
		if c.Graph.BaseURL == "" {
			return fmt.Errorf("BOOSTPUB_GRAPH_URL is required for the graph provider")
		}
	case "file":
		if c.File.Path == "" {
			return fmt.Errorf("BOOSTPUB_SEARCH_FIXTURE is required for the file provider")
		}
	default:
		return fmt.Errorf("unknown search provider: %q", c.Provider)
	}
	return nil
}
