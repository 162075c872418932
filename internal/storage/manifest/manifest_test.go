package manifest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jgivc/docviewer/internal/adapter/fsadapter"
	"github.com/jgivc/docviewer/internal/config"
	"github.com/jgivc/docviewer/internal/entity"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, files map[string]string) *manifestStorage {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/docs", os.ModeDir))
	for path, content := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), os.ModeDir))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), os.ModeAppend))
	}

	cfg := &config.ScannerConfig{
		WorkDir: "/docs",
		Workers: 2,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	return NewManifestStorage(fsadapter.NewFSAdapterWithFS(fs, cfg, log), cfg, log)
}

func TestScan(t *testing.T) {
	store := newTestStorage(t, map[string]string{
		"/docs/js/intro.md":    "# Intro",
		"/docs/js/closures.md": "# Closures",
		"/docs/ts/types.md":    "# Types",
		"/docs/README.md":      "# Readme",
	})

	root, err := store.Scan(context.Background())
	require.NoError(t, err)
	require.NoError(t, root.Validate())

	require.Equal(t, "docs", root.Name)
	require.Equal(t, entity.NodeDirectory, root.Type)
	require.Len(t, root.Children, 3)

	js, ok := root.Child("js")
	require.True(t, ok)
	require.Equal(t, entity.NodeDirectory, js.Type)
	require.Len(t, js.Children, 2)

	readme, ok := root.Child("README.md")
	require.True(t, ok)
	require.Equal(t, entity.NodeFile, readme.Type)
}

func TestScanEmptyWorkDir(t *testing.T) {
	store := newTestStorage(t, nil)

	root, err := store.Scan(context.Background())
	require.NoError(t, err)
	require.Equal(t, entity.NodeDirectory, root.Type)
	require.NotNil(t, root.Children)
	require.Empty(t, root.Children)
}

func TestScanMissingWorkDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := &config.ScannerConfig{WorkDir: "/nope", Workers: 2}
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	store := NewManifestStorage(fsadapter.NewFSAdapterWithFS(fs, cfg, log), cfg, log)

	_, err := store.Scan(context.Background())
	require.Error(t, err)
}
