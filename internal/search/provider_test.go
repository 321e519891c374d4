package search

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOptionsValues(t *testing.T) {
	assert.Equal(t, "minedTimeFrom=0", Options{}.Values().Encode())

	v := Options{MinedTimeFrom: 5, Category: "B", Content: "abc", Limit: -1}.Values()
	assert.Equal(t, "5", v.Get("minedTimeFrom"))
	assert.Equal(t, "B", v.Get("category"))
	assert.Equal(t, "abc", v.Get("content"))
	assert.False(t, v.Has("limit"))
	assert.False(t, v.Has("tag"))
}

func TestMockProvider_EmptyQueue(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Search(context.Background(), Options{})
	var unavail *ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavail))

	mock.AddResponse(MockResponse{})
	res, err := mock.Search(context.Background(), Options{})
	require.NoError(t, err)
	assert.NotNil(t, res.List)
	assert.Equal(t, 2, mock.CallCount())
}

func TestMockProvider_HonoursLimitAndCopies(t *testing.T) {
	scripted := listOf(30, 20, 10)
	mock := NewMockProvider(MockResponse{List: scripted})

	res, err := mock.Search(context.Background(), Options{Limit: 2})
	require.NoError(t, err)
	require.Len(t, res.List, 2)

	res.List[0].TotalDifficulty = 1
	assert.Equal(t, 30.0, scripted[0].TotalDifficulty)
	assert.Equal(t, 2, mock.Calls[0].Limit)
}

type blockingProvider struct{}

func (blockingProvider) Search(ctx context.Context, _ Options) (*Result, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) Name() string { return "blocking" }

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 10*time.Millisecond)
	_, err := p.Search(context.Background(), Options{})
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, "blocking", p.Name())

	var inner Provider = blockingProvider{}
	assert.Equal(t, inner, WithTimeout(inner, 0))
}

func TestFileProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"list":[{"totalDifficulty":9},{"totalDifficulty":"4"}]}`), 0o644))

	p, err := NewFileProvider(FileConfig{Path: path})
	require.NoError(t, err)

	res, err := p.Search(context.Background(), Options{MinedTimeFrom: 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 4}, res.List.Difficulties())

	_, err = NewFileProvider(FileConfig{})
	assert.Error(t, err)

	missing, err := NewFileProvider(FileConfig{Path: filepath.Join(t.TempDir(), "none.json")})
	require.NoError(t, err)
	_, err = missing.Search(context.Background(), Options{})
	var unavail *ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavail))
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("BOOSTPUB_SEARCH_PROVIDER", "file")
	t.Setenv("BOOSTPUB_SEARCH_FIXTURE", "/tmp/x.json")
	t.Setenv("BOOSTPUB_SEARCH_TIMEOUT", "3s")
	t.Setenv("BOOSTPUB_SEARCH_RETRIES", "5")

	cfg := ConfigFromEnv()
	assert.Equal(t, "file", cfg.Provider)
	assert.Equal(t, "/tmp/x.json", cfg.File.Path)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Provider = "carrier-pigeon"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Provider = "file"
	assert.Error(t, cfg.Validate())
}

func TestNewProvider_StacksDecorators(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"list":[{"totalDifficulty":2}]}`), 0o644))

	cfg := DefaultConfig()
	cfg.Provider = "file"
	cfg.File.Path = path

	p, err := NewProvider(cfg, zap.NewNop(), nil)
	require.NoError(t, err)
	assert.IsType(t, &TimeoutProvider{}, p)
	assert.Equal(t, "file", p.Name())

	res, err := p.Search(context.Background(), Options{})
	require.NoError(t, err)
	assert.Len(t, res.List, 1)
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", PurposeFrom(ctx))
	assert.Equal(t, "props", PurposeFrom(WithDefaultPurpose(ctx, "props")))

	rank := WithPurpose(ctx, "rank")
	assert.Equal(t, "rank", PurposeFrom(WithDefaultPurpose(rank, "props")))
	assert.Equal(t, "", RequestIDFrom(ctx))
	assert.Equal(t, "abc", RequestIDFrom(WithRequestID(ctx, "abc")))
}
