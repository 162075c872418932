package manifest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/jgivc/docviewer/internal/common"
	"github.com/jgivc/docviewer/internal/entity"
	"github.com/jgivc/docviewer/internal/service/resolver"
)

type ManifestStorage interface {
	Scan(ctx context.Context) (*entity.Node, error)
}

// ManifestService owns the current manifest snapshot. The tree is immutable;
// Rebuild produces a whole new tree and swaps it in atomically, readers keep
// whatever snapshot they already hold.
type ManifestService struct {
	store ManifestStorage
	tree  atomic.Value // *entity.Node
	log   *slog.Logger
}

func NewManifestService(store ManifestStorage, log *slog.Logger) *ManifestService {
	return &ManifestService{
		store: store,
		log:   log.With(slog.String("item", "ManifestService")),
	}
}

func (m *ManifestService) Rebuild(ctx context.Context) error {
	root, err := m.store.Scan(ctx)
	if err != nil {
		m.log.Error("Cannot scan work dir", slog.Any("error", err))

		return fmt.Errorf("cannot scan work dir: %w", err)
	}

	if err := root.Validate(); err != nil {
		m.log.Error("Scan produced malformed manifest", slog.Any("error", err))

		return fmt.Errorf("scan produced malformed manifest: %w", err)
	}

	m.tree.Store(root)
	m.log.Info("Manifest rebuilt", slog.Int("entries", countNodes(root)))

	return nil
}

func (m *ManifestService) Root() (*entity.Node, error) {
	v := m.tree.Load()
	if v == nil {
		return nil, common.ErrManifestNotBuilt
	}

	return v.(*entity.Node), nil
}

// ResolveLink maps a wiki-link target from a document to a viewer URL. A
// target that does not resolve against the current manifest is reported as
// missing so the renderer can keep the label as plain text.
func (m *ManifestService) ResolveLink(target string) (string, bool) {
	root, err := m.Root()
	if err != nil {
		return "", false
	}

	segments := resolver.Split(target)
	if _, ok := resolver.Resolve(root, segments); !ok {
		return "", false
	}

	return "/tree/" + strings.Join(segments, "/"), true
}

func countNodes(n *entity.Node) int {
	count := 1
	for _, child := range n.Children {
		count += countNodes(child)
	}

	return count
}
