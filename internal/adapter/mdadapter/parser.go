package mdadapter

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var (
	startSeq = []byte{'[', '['}
	endSeq   = []byte{']', ']'}
	descSep  = []byte{'|'}
)

/*
 * Wiki link to another document of the tree:
 * [[javascript/01-fundamentals.md]]
 * [[javascript/01-fundamentals.md|Fundamentals]]
 */
type DocLinkParser struct{}

func NewDocLinkParser() parser.InlineParser {
	return &DocLinkParser{}
}

func (s *DocLinkParser) Trigger() []byte {
	return startSeq
}

func (s *DocLinkParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	b, _ := block.PeekLine()
	if !bytes.HasPrefix(b, startSeq) {
		return nil
	}

	end := bytes.Index(b, endSeq)
	if end < len(startSeq) {
		return nil
	}

	line := bytes.TrimSpace(b[len(startSeq):end])
	if len(line) == 0 {
		return nil
	}

	block.Advance(end + len(endSeq))

	if idx := bytes.Index(line, descSep); idx > 0 {
		target := bytes.TrimSpace(line[:idx])
		label := bytes.TrimSpace(line[idx+len(descSep):])
		if len(label) == 0 {
			label = target
		}

		return &DocLink{
			Target: string(target),
			Label:  string(label),
		}
	}

	return &DocLink{
		Target: string(line),
		Label:  string(line),
	}
}
