package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/boostpow/boostpub/internal/boost"
)

const (
	defaultGraphBaseURL = "https://graph.boostpow.com"
	graphSearchPath     = "/api/v1/main/boost/search"

	// maxResponseBytes bounds how much of a search response is read.
	maxResponseBytes = 8 << 20
)

// GraphProvider queries the Boost POW graph search API over HTTP.
type GraphProvider struct {
	baseURL string
	client  *http.Client
}

// NewGraphProvider creates a provider for the graph API at cfg.BaseURL.
// A nil client selects http.DefaultClient.
func NewGraphProvider(cfg GraphConfig, client *http.Client) (*GraphProvider, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = defaultGraphBaseURL
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return nil, fmt.Errorf("graph base URL must be http(s): %q", cfg.BaseURL)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &GraphProvider{baseURL: base, client: client}, nil
}

func (g *GraphProvider) Search(ctx context.Context, opts Options) (*Result, error) {
	endpoint := g.baseURL + graphSearchPath + "?" + opts.Values().Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("read response: %w", err)}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &ErrRateLimit{
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("HTTP %d", resp.StatusCode),
		}
	case resp.StatusCode >= 500:
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	case resp.StatusCode != http.StatusOK:
		return nil, &ErrRequestRejected{StatusCode: resp.StatusCode, Body: snippet(body)}
	}

	return decodeResult(body)
}

func (g *GraphProvider) Name() string {
	return "graph"
}

// decodeResult validates and decodes a search response body. The returned
// list is never nil.
func decodeResult(body []byte) (*Result, error) {
	if err := validateResponse(ResponseSchema, body); err != nil {
		return nil, err
	}

	var res Result
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, &ErrInvalidResponse{Content: body, Err: err}
	}
	if res.List == nil {
		res.List = boost.RankedList{}
	}
	return &res, nil
}

// parseRetryAfter reads a Retry-After header given in seconds.
func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		return s[:200]
	}
	return s
}
