package page

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/jgivc/docviewer/internal/adapter/mdadapter"
	"github.com/jgivc/docviewer/internal/entity"
	"github.com/jgivc/docviewer/internal/service/listing"
	"github.com/jgivc/docviewer/internal/util"
)

const (
	serviceName = "page"
)

type ContentRepository interface {
	Fetch(ctx context.Context, segments []string) ([]byte, error)
}

type MarkdownRenderer interface {
	Render(source []byte) (string, *mdadapter.Meta, error)
}

type pageService struct {
	repo ContentRepository
	md   MarkdownRenderer
	log  *slog.Logger
}

func NewPageService(repo ContentRepository, md MarkdownRenderer, log *slog.Logger) *pageService {
	return &pageService{
		repo: repo,
		md:   md,
		log:  log.With(slog.String("service", serviceName)),
	}
}

// GetDocument fetches the raw markdown addressed by the navigation path and
// renders it. Nothing is cached: every navigation to a file re-fetches and
// re-renders it.
func (p *pageService) GetDocument(ctx context.Context, segments []string) (*entity.Document, error) {
	raw, err := p.repo.Fetch(ctx, segments)
	if err != nil {
		p.log.Error("Cannot fetch content", slog.String("path", strings.Join(segments, "/")), slog.Any("error", err))

		return nil, fmt.Errorf("cannot fetch content: %w", err)
	}

	html, meta, err := p.md.Render(raw)
	if err != nil {
		p.log.Error("Cannot render content", slog.String("path", strings.Join(segments, "/")), slog.Any("error", err))

		return nil, fmt.Errorf("cannot render content: %w", err)
	}

	title := meta.Title
	if title == "" && len(segments) > 0 {
		title = strings.TrimSuffix(segments[len(segments)-1], path.Ext(segments[len(segments)-1]))
	}

	return &entity.Document{
		Path:        "/" + strings.Join(segments, "/"),
		Title:       title,
		HTML:        html,
		Hash:        util.ContentHash([]byte(html)),
		Breadcrumbs: listing.Breadcrumbs(segments),
	}, nil
}
