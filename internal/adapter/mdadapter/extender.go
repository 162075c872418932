package mdadapter

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

type DocLinksExtension struct {
	r LinkResolver
}

func NewDocLinksExtension(r LinkResolver) goldmark.Extender {
	return &DocLinksExtension{r: r}
}

func (e *DocLinksExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithInlineParsers(
			util.Prioritized(NewDocLinkParser(), 199),
		),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(NewDocLinkRenderer(e.r), 199),
		),
	)
}
