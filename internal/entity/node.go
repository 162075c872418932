package entity

import (
	"encoding/json"
	"fmt"

	"github.com/jgivc/docviewer/internal/common"
)

const (
	NodeDirectory NodeType = iota
	NodeFile
)

const (
	nodeTypeNameDirectory = "directory"
	nodeTypeNameFile      = "file"
)

// NodeType is a tagged variant, not a bare string, so a switch over it
// is checked by the compiler when a new node kind appears.
type NodeType int

func (t NodeType) String() string {
	switch t {
	case NodeDirectory:
		return nodeTypeNameDirectory
	case NodeFile:
		return nodeTypeNameFile
	}

	return fmt.Sprintf("NodeType(%d)", int(t))
}

func (t NodeType) MarshalJSON() ([]byte, error) {
	switch t {
	case NodeDirectory, NodeFile:
		return json.Marshal(t.String())
	}

	return nil, fmt.Errorf("cannot marshal node type %d", int(t))
}

func (t *NodeType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("cannot unmarshal node type: %w", err)
	}

	switch name {
	case nodeTypeNameDirectory:
		*t = NodeDirectory
	case nodeTypeNameFile:
		*t = NodeFile
	default:
		return fmt.Errorf("unknown node type %q: %w", name, common.ErrMalformedManifest)
	}

	return nil
}

// Node is one entry of the manifest tree. The tree is built wholesale by the
// manifest builder and treated as read-only afterwards; a rebuild produces an
// entirely new tree that replaces the old one.
type Node struct {
	Name     string   `json:"name"`
	Type     NodeType `json:"type"`
	Children []*Node  `json:"children,omitempty"` // directories only
}

// Child returns the child with the given name. Comparison is exact and
// case-sensitive.
func (n *Node) Child(name string) (*Node, bool) {
	for _, child := range n.Children {
		if child.Name == name {
			return child, true
		}
	}

	return nil, false
}

// Validate checks the structural invariants of the subtree rooted at n:
// a file node has no children, a directory never shares a child name and
// every node carries a known type. A violation means the manifest builder
// is broken, so callers are expected to fail loudly.
func (n *Node) Validate() error {
	switch n.Type {
	case NodeFile:
		if len(n.Children) > 0 {
			return fmt.Errorf("file node %q has children: %w", n.Name, common.ErrMalformedManifest)
		}

		return nil
	case NodeDirectory:
	default:
		return fmt.Errorf("node %q has unknown type %d: %w", n.Name, int(n.Type), common.ErrMalformedManifest)
	}

	seen := make(map[string]struct{}, len(n.Children))
	for _, child := range n.Children {
		if _, exists := seen[child.Name]; exists {
			return fmt.Errorf("directory %q has duplicate child %q: %w", n.Name, child.Name, common.ErrMalformedManifest)
		}
		seen[child.Name] = struct{}{}

		if err := child.Validate(); err != nil {
			return err
		}
	}

	return nil
}
