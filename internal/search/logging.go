package search

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/boostpow/boostpub/internal/store"
)

// LoggingProvider is a decorator that logs every search and records it as
// an event.
type LoggingProvider struct {
	inner     Provider
	logger    *zap.Logger
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with structured logging and event recording.
// Either logger or repo may be nil.
func WithLogging(p Provider, logger *zap.Logger, repo store.EventRepo) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingProvider{inner: p, logger: logger, eventRepo: repo}
}

func (l *LoggingProvider) Search(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	requestID := RequestIDFrom(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	res, err := l.inner.Search(ctx, opts)

	latency := time.Since(start)
	data := store.SearchEventData{
		RequestID:     requestID,
		Provider:      l.inner.Name(),
		Purpose:       PurposeFrom(ctx),
		MinedTimeFrom: opts.MinedTimeFrom,
		Query:         opts.Values().Encode(),
		LatencyMs:     latency.Milliseconds(),
		Success:       err == nil,
	}
	if res != nil {
		data.ResultCount = len(res.List)
		if body, mErr := json.Marshal(res); mErr == nil {
			data.ResponseBody = string(body)
		}
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	fields := []zap.Field{
		zap.String("provider", data.Provider),
		zap.String("purpose", data.Purpose),
		zap.String("request_id", requestID),
		zap.Int64("mined_time_from", opts.MinedTimeFrom),
		zap.Int64("latency_ms", data.LatencyMs),
	}
	if err != nil {
		l.logger.Warn("boost search failed", append(fields, zap.Error(err))...)
	} else {
		l.logger.Debug("boost search", append(fields, zap.Int("results", data.ResultCount))...)
	}

	// Recording is best effort; the search result stands either way.
	if l.eventRepo != nil {
		if logErr := l.eventRepo.AppendSearch(ctx, data); logErr != nil {
			l.logger.Warn("failed to record search event", zap.Error(logErr))
		}
	}

	return res, err
}

func (l *LoggingProvider) Name() string {
	return l.inner.Name()
}
