package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_ProductionWritesJSONAtWarn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	logger, err := New(Options{OutputPath: path})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("search failed", zap.String("provider", "graph"))
	require.NoError(t, logger.Sync())

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "search failed", entry["msg"])
	assert.Equal(t, "graph", entry["provider"])
	assert.Contains(t, entry, "ts")
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	logger, err := New(Options{Verbose: true, OutputPath: filepath.Join(t.TempDir(), "log.txt")})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}
