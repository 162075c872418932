package mdadapter

import (
	"github.com/yuin/goldmark/ast"
)

var KindDocLink = ast.NewNodeKind("DocLink")

type DocLink struct {
	ast.BaseInline
	Target string
	Label  string
}

func (n *DocLink) Kind() ast.NodeKind {
	return KindDocLink
}

func (n *DocLink) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Target": n.Target,
		"Label":  n.Label,
	}, nil)
}
