package mdadapter

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"go.abhg.dev/goldmark/frontmatter"
)

// LinkResolver maps a wiki-link target found in a document to a viewer URL.
// The second result reports whether the target exists in the manifest.
type LinkResolver interface {
	ResolveLink(target string) (string, bool)
}

// Meta is the document frontmatter the viewer cares about.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type mdAdapter struct {
	md  goldmark.Markdown
	log *slog.Logger
}

func NewMDAdapter(r LinkResolver, log *slog.Logger) *mdAdapter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Table,
			extension.Linkify,
			extension.TaskList,
			&frontmatter.Extender{},
			NewDocLinksExtension(r),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	return &mdAdapter{
		md:  md,
		log: log.With(slog.String("item", "MDAdapter")),
	}
}

// Render converts raw markdown to HTML and decodes the frontmatter, if any.
func (a *mdAdapter) Render(source []byte) (string, *Meta, error) {
	var buf bytes.Buffer

	ctx := parser.NewContext()
	if err := a.md.Convert(source, &buf, parser.WithContext(ctx)); err != nil {
		return "", nil, fmt.Errorf("cannot convert markdown: %w", err)
	}

	meta := &Meta{}
	if fm := frontmatter.Get(ctx); fm != nil {
		if err := fm.Decode(meta); err != nil {
			return "", nil, fmt.Errorf("cannot decode frontmatter: %w", err)
		}
	}

	return buf.String(), meta, nil
}
