package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/boostpow/boostpub/internal/store"
)

func openStore(t *testing.T, name string) *store.Store {
	t.Helper()
	s, err := store.Open("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLogging_RecordsSuccess(t *testing.T) {
	s := openStore(t, "search_logging_success")
	core, logs := observer.New(zap.DebugLevel)

	mock := NewMockProvider(MockResponse{List: listOf(30, 20)})
	p := WithLogging(mock, zap.New(core), s.EventRepo())

	ctx := WithRequestID(WithPurpose(context.Background(), "props"), "req-1")
	_, err := p.Search(ctx, Options{MinedTimeFrom: 100, Tag: "t"})
	require.NoError(t, err)

	events, err := s.EventRepo().QuerySearchEvents(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, "req-1", ev.RequestID)
	assert.Equal(t, "mock", ev.Provider)
	assert.Equal(t, "props", ev.Purpose)
	assert.Equal(t, int64(100), ev.MinedTimeFrom)
	assert.Equal(t, "minedTimeFrom=100&tag=t", ev.Query)
	assert.Equal(t, 2, ev.ResultCount)
	assert.True(t, ev.Success)
	assert.Contains(t, ev.ResponseBody, `"list"`)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zap.DebugLevel, entry.Level)
	assert.Equal(t, "props", entry.ContextMap()["purpose"])
}

func TestLogging_RecordsFailure(t *testing.T) {
	s := openStore(t, "search_logging_failure")
	core, logs := observer.New(zap.DebugLevel)

	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := WithLogging(mock, zap.New(core), s.EventRepo())

	_, err := p.Search(context.Background(), Options{})
	require.Error(t, err)

	events, err := s.EventRepo().QuerySearchEvents(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Contains(t, events[0].ErrorMessage, "down")
	assert.Equal(t, "unknown", events[0].Purpose)
	assert.NotEmpty(t, events[0].RequestID)

	require.Equal(t, 1, logs.FilterLevelExact(zap.WarnLevel).Len())
}

func TestLogging_NilDependencies(t *testing.T) {
	mock := NewMockProvider(MockResponse{List: listOf(1)})
	p := WithLogging(mock, nil, nil)

	res, err := p.Search(context.Background(), Options{})
	require.NoError(t, err)
	assert.Len(t, res.List, 1)
	assert.Equal(t, "mock", p.Name())
}
