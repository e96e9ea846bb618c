package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/htmlmerge/internal/adapters/driven/config/file"
	"github.com/custodia-labs/htmlmerge/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/htmlmerge/internal/adapters/driving/cli"
	"github.com/custodia-labs/htmlmerge/internal/logger"
)

func TestOpenConfigStore_File(t *testing.T) {
	store := openConfigStore(t.TempDir())
	assert.IsType(t, &file.ConfigStore{}, store)
}

func TestOpenConfigStore_FallsBackToMemory(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stderr)

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	store := openConfigStore(filepath.Join(blocker, "config"))

	assert.IsType(t, &memory.ConfigStore{}, store)
	assert.Contains(t, buf.String(), "config unavailable")
}

func TestBootstrap_UnwritableConfigDir(t *testing.T) {
	logger.SetOutput(&bytes.Buffer{})
	defer logger.SetOutput(os.Stderr)

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	svc, err := bootstrap(cli.GlobalOptions{ConfigDir: filepath.Join(blocker, "config"), NoHistory: true})
	require.NoError(t, err)
	require.NotNil(t, svc)
	defer svc.Close() //nolint:errcheck

	settings, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.True(t, settings.History.Enabled)
	assert.Equal(t, ":memory:", svc.Settings.Path())
}
