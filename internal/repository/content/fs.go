package content

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jgivc/docviewer/internal/common"
	"github.com/jgivc/docviewer/internal/config"
	"github.com/spf13/afero"
)

type fsRepository struct {
	fs      afero.Fs
	workDir string
	log     *slog.Logger
}

func NewFSRepository(cfg *config.ScannerConfig, log *slog.Logger) *fsRepository {
	return NewFSRepositoryWithFS(afero.NewOsFs(), cfg, log)
}

func NewFSRepositoryWithFS(fs afero.Fs, cfg *config.ScannerConfig, log *slog.Logger) *fsRepository {
	return &fsRepository{
		fs:      fs,
		workDir: cfg.WorkDir,
		log:     log.With(slog.String("item", "FSContentRepository")),
	}
}

func (r *fsRepository) Fetch(_ context.Context, segments []string) ([]byte, error) {
	rel, err := joinSegments(segments)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(r.fs, filepath.Join(r.workDir, filepath.FromSlash(rel)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", rel, common.ErrContentNotFoundError)
		}

		return nil, fmt.Errorf("cannot read %s: %w", rel, common.ErrContentUnavailableError)
	}

	return data, nil
}
