package fsadapter

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jgivc/docviewer/internal/config"
	"github.com/jgivc/docviewer/internal/entity"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, files map[string]string, dirs ...string) *fsAdapter {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, dir := range dirs {
		require.NoError(t, fs.MkdirAll(dir, os.ModeDir))
	}
	for path, content := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), os.ModeDir))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), os.ModeAppend))
	}

	cfg := &config.ScannerConfig{
		WorkDir:   "/docs",
		Workers:   2,
		SkipNames: []string{"assets"},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	return NewFSAdapterWithFS(fs, cfg, log)
}

func TestSubtree(t *testing.T) {
	adapter := newTestAdapter(t, map[string]string{
		"/docs/js/intro.md":       "# Intro",
		"/docs/js/advanced/gc.md": "# GC",
		"/docs/README.md":         "# Readme",
	})

	node, err := adapter.Subtree("/docs/js")
	require.NoError(t, err)
	require.NoError(t, node.Validate())

	require.Equal(t, "js", node.Name)
	require.Equal(t, entity.NodeDirectory, node.Type)
	require.Len(t, node.Children, 2)

	advanced, ok := node.Child("advanced")
	require.True(t, ok)
	require.Equal(t, entity.NodeDirectory, advanced.Type)
	require.Len(t, advanced.Children, 1)
	require.Equal(t, "gc.md", advanced.Children[0].Name)
	require.Equal(t, entity.NodeFile, advanced.Children[0].Type)

	intro, ok := node.Child("intro.md")
	require.True(t, ok)
	require.Equal(t, entity.NodeFile, intro.Type)
	require.Nil(t, intro.Children)
}

func TestSubtreeFile(t *testing.T) {
	adapter := newTestAdapter(t, map[string]string{
		"/docs/README.md": "# Readme",
	})

	node, err := adapter.Subtree("/docs/README.md")
	require.NoError(t, err)
	require.Equal(t, entity.NodeFile, node.Type)
	require.Nil(t, node.Children)
}

func TestSubtreeSkipsHiddenAndConfigured(t *testing.T) {
	adapter := newTestAdapter(t, map[string]string{
		"/docs/js/intro.md":        "# Intro",
		"/docs/js/.hidden.md":      "secret",
		"/docs/js/assets/logo.svg": "<svg/>",
	})

	node, err := adapter.Subtree("/docs/js")
	require.NoError(t, err)
	require.Len(t, node.Children, 1)
	require.Equal(t, "intro.md", node.Children[0].Name)
}

func TestSubtreeRejectsTraversal(t *testing.T) {
	adapter := newTestAdapter(t, nil, "/docs")

	_, err := adapter.Subtree("/docs/../etc")
	require.Error(t, err)
}

func TestSubtreeMissingPath(t *testing.T) {
	adapter := newTestAdapter(t, nil, "/docs")

	_, err := adapter.Subtree("/docs/missing")
	require.Error(t, err)
}

func TestRootEntries(t *testing.T) {
	adapter := newTestAdapter(t, map[string]string{
		"/docs/js/intro.md": "# Intro",
		"/docs/README.md":   "# Readme",
		"/docs/.env":        "SECRET=1",
	}, "/docs/assets")

	paths, err := adapter.RootEntries()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		filepath.Join("/docs", "js"),
		filepath.Join("/docs", "README.md"),
	}, paths)
}
