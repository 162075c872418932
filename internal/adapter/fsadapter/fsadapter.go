package fsadapter

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jgivc/docviewer/internal/config"
	"github.com/jgivc/docviewer/internal/entity"
	"github.com/spf13/afero"
)

const (
	maxEntriesPerDir = 1000
)

type fsAdapter struct {
	fs        afero.Fs
	cfg       *config.ScannerConfig
	skipNames map[string]struct{}
	log       *slog.Logger
}

func NewFSAdapter(cfg *config.ScannerConfig, log *slog.Logger) *fsAdapter {
	return NewFSAdapterWithFS(afero.NewOsFs(), cfg, log)
}

func NewFSAdapterWithFS(fs afero.Fs, cfg *config.ScannerConfig, log *slog.Logger) *fsAdapter {
	skipNames := make(map[string]struct{}, len(cfg.SkipNames))
	for _, name := range cfg.SkipNames {
		skipNames[name] = struct{}{}
	}

	return &fsAdapter{
		fs:        fs,
		cfg:       cfg,
		skipNames: skipNames,
		log:       log.With(slog.String("item", "FSAdapter")),
	}
}

// RootEntries returns the paths of the entries directly under the configured
// work dir, in filesystem order.
func (a *fsAdapter) RootEntries() ([]string, error) {
	entries, err := afero.ReadDir(a.fs, a.cfg.WorkDir)
	if err != nil {
		return nil, fmt.Errorf("cannot read work dir %s: %w", a.cfg.WorkDir, err)
	}

	var paths []string
	for _, entry := range entries {
		if a.skip(entry.Name()) {
			a.log.Info("Skip entry", slog.String("name", entry.Name()))

			continue
		}

		paths = append(paths, filepath.Join(a.cfg.WorkDir, entry.Name()))

		if len(paths) >= maxEntriesPerDir {
			break
		}
	}

	return paths, nil
}

// Subtree builds the manifest node for one filesystem entry, recursing into
// subdirectories. Entries keep filesystem order; sorting is a display-time
// concern of the listing service, not of the builder.
func (a *fsAdapter) Subtree(path string) (*entity.Node, error) {
	if strings.Contains(path, "..") {
		return nil, fmt.Errorf("invalid path: %s", path)
	}

	info, err := a.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot stat %s: %w", path, err)
	}

	node := &entity.Node{
		Name: filepath.Base(path),
	}

	if !info.IsDir() {
		node.Type = entity.NodeFile

		return node, nil
	}

	node.Type = entity.NodeDirectory
	node.Children = []*entity.Node{}

	entries, err := afero.ReadDir(a.fs, path)
	if err != nil {
		return nil, fmt.Errorf("cannot read dir %s: %w", path, err)
	}

	for _, entry := range entries {
		if a.skip(entry.Name()) {
			a.log.Info("Skip entry", slog.String("path", filepath.Join(path, entry.Name())))

			continue
		}

		child, err := a.Subtree(filepath.Join(path, entry.Name()))
		if err != nil {
			return nil, err
		}

		node.Children = append(node.Children, child)

		if len(node.Children) >= maxEntriesPerDir {
			break
		}
	}

	return node, nil
}

func (a *fsAdapter) skip(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}

	_, exists := a.skipNames[name]

	return exists
}
