package search

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/boostpow/boostpub/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with timeout,
// retry and logging middleware.
func NewProvider(cfg Config, logger *zap.Logger, eventRepo store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "graph":
		base, err = NewGraphProvider(cfg.Graph, &http.Client{})
	case "file":
		base, err = NewFileProvider(cfg.File)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → timeout → retry → logging → base
	logged := WithLogging(base, logger, eventRepo)
	retried := WithRetry(logged, cfg.Retry, WithRetryLogger(logger))
	return WithTimeout(retried, cfg.Timeout), nil
}

// NewProviderFromEnv is NewProvider with ConfigFromEnv.
func NewProviderFromEnv(logger *zap.Logger, eventRepo store.EventRepo) (Provider, error) {
	return NewProvider(ConfigFromEnv(), logger, eventRepo)
}
