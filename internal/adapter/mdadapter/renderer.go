package mdadapter

import (
	"fmt"
	"html"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

type DocLinkRenderer struct {
	r LinkResolver
}

func NewDocLinkRenderer(r LinkResolver) renderer.NodeRenderer {
	return &DocLinkRenderer{r: r}
}

func (r *DocLinkRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindDocLink, r.renderDocLink)
}

func (r *DocLinkRenderer) renderDocLink(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	link, ok := n.(*DocLink)
	if !ok {
		return ast.WalkStop, fmt.Errorf("unexpected node %T, expected *DocLink", n)
	}

	// A link to a document missing from the manifest is a content problem,
	// not a render failure. Keep the label visible and carry on.
	url, exists := r.r.ResolveLink(link.Target)
	if !exists {
		w.WriteString(fmt.Sprintf(`<span class="doc-link-missing">%s</span>`, html.EscapeString(link.Label)))

		return ast.WalkContinue, nil
	}

	w.WriteString(fmt.Sprintf(`<a class="doc-link" href="%s">%s</a>`,
		html.EscapeString(url), html.EscapeString(link.Label)))

	return ast.WalkContinue, nil
}
