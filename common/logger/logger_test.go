package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileLogger(t *testing.T) {
	file := filepath.Join(t.TempDir(), "navtool.log")
	cfg := DefaultConfig()
	cfg.File = file
	cfg.JSON = true
	cfg.Level = "debug"

	l, err := New(cfg)
	require.NoError(t, err)
	l.Debug("navmesh built")
	_ = l.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "navmesh built"))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	require.Error(t, err)
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
}
