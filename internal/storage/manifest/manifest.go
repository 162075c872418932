package manifest

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/jgivc/docviewer/internal/common"
	"github.com/jgivc/docviewer/internal/config"
	"github.com/jgivc/docviewer/internal/entity"
)

type FSAdapter interface {
	RootEntries() ([]string, error)
	Subtree(path string) (*entity.Node, error)
}

type manifestStorage struct {
	running atomic.Bool
	adapter FSAdapter
	cfg     *config.ScannerConfig
	log     *slog.Logger
}

func NewManifestStorage(adapter FSAdapter, cfg *config.ScannerConfig, log *slog.Logger) *manifestStorage {
	return &manifestStorage{
		adapter: adapter,
		cfg:     cfg,
		log:     log.With(slog.String("item", "ManifestStorage")),
	}
}

// Scan builds a fresh manifest tree from the work dir. Top-level entries are
// scanned concurrently; the resulting child order is filesystem- and
// scheduling-dependent, sorting happens at display time.
func (s *manifestStorage) Scan(ctx context.Context) (*entity.Node, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, common.ErrScanProcessHasAlreadyStarted
	}
	defer s.running.Store(false)

	paths, err := s.adapter.RootEntries()
	if err != nil {
		return nil, err
	}

	root := &entity.Node{
		Name:     filepath.Base(s.cfg.WorkDir),
		Type:     entity.NodeDirectory,
		Children: []*entity.Node{},
	}

	if len(paths) == 0 {
		return root, nil
	}

	in := make(chan string, len(paths))
	out := make(chan *entity.Node, len(paths))

	for _, path := range paths {
		in <- path
	}
	close(in)

	var wg sync.WaitGroup
	wg.Add(s.cfg.Workers)
	for n := 0; n < s.cfg.Workers; n++ {
		go s.worker(ctx, n, in, out, &wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	for node := range out {
		s.log.Info("Found entry", slog.String("name", node.Name), slog.String("type", node.Type.String()))
		root.Children = append(root.Children, node)
	}

	return root, nil
}

func (s *manifestStorage) worker(ctx context.Context, n int, in chan string, out chan *entity.Node, wg *sync.WaitGroup) {
	defer wg.Done()

	log := s.log.With(slog.Int("worker_id", n))
	log.Info("Started")

	for path := range in {
		node, err := s.adapter.Subtree(path)
		if err != nil {
			log.Error("Cannot scan entry", slog.String("path", path), slog.Any("error", err))

			continue
		}

		select {
		case <-ctx.Done():
			log.Info("Interrupted")

			return
		case out <- node:
		}
	}

	log.Info("Done")
}
