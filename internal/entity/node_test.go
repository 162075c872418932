package entity

import (
	"encoding/json"
	"testing"

	"github.com/jgivc/docviewer/internal/common"
	"github.com/stretchr/testify/require"
)

func TestNodeUnmarshalManifest(t *testing.T) {
	data := `{
		"name": "root",
		"type": "directory",
		"children": [
			{"name": "js", "type": "directory", "children": [
				{"name": "intro.md", "type": "file"}
			]}
		]
	}`

	var root Node
	require.NoError(t, json.Unmarshal([]byte(data), &root))
	require.NoError(t, root.Validate())

	require.Equal(t, NodeDirectory, root.Type)
	require.Len(t, root.Children, 1)

	js := root.Children[0]
	require.Equal(t, "js", js.Name)
	require.Equal(t, NodeDirectory, js.Type)
	require.Len(t, js.Children, 1)
	require.Equal(t, NodeFile, js.Children[0].Type)
}

func TestNodeUnmarshalUnknownType(t *testing.T) {
	var node Node
	err := json.Unmarshal([]byte(`{"name": "x", "type": "symlink"}`), &node)
	require.Error(t, err)
}

func TestNodeMarshalType(t *testing.T) {
	data, err := json.Marshal(&Node{Name: "intro.md", Type: NodeFile})
	require.NoError(t, err)
	require.JSONEq(t, `{"name": "intro.md", "type": "file"}`, string(data))
}

func TestNodeChild(t *testing.T) {
	node := &Node{
		Name: "root",
		Type: NodeDirectory,
		Children: []*Node{
			{Name: "js", Type: NodeDirectory, Children: []*Node{}},
		},
	}

	child, ok := node.Child("js")
	require.True(t, ok)
	require.Equal(t, "js", child.Name)

	_, ok = node.Child("Js")
	require.False(t, ok)
}

func TestNodeValidate(t *testing.T) {
	testCases := []struct {
		name  string
		node  *Node
		valid bool
	}{
		{
			name:  "file without children",
			node:  &Node{Name: "a.md", Type: NodeFile},
			valid: true,
		},
		{
			name:  "empty directory",
			node:  &Node{Name: "d", Type: NodeDirectory, Children: []*Node{}},
			valid: true,
		},
		{
			name: "file with children",
			node: &Node{Name: "a.md", Type: NodeFile, Children: []*Node{
				{Name: "b.md", Type: NodeFile},
			}},
		},
		{
			name: "duplicate sibling names",
			node: &Node{Name: "d", Type: NodeDirectory, Children: []*Node{
				{Name: "a.md", Type: NodeFile},
				{Name: "a.md", Type: NodeFile},
			}},
		},
		{
			name: "nested violation",
			node: &Node{Name: "d", Type: NodeDirectory, Children: []*Node{
				{Name: "e", Type: NodeDirectory, Children: []*Node{
					{Name: "f.md", Type: NodeFile, Children: []*Node{
						{Name: "g.md", Type: NodeFile},
					}},
				}},
			}},
		},
		{
			name: "unknown type",
			node: &Node{Name: "x", Type: NodeType(42)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.node.Validate()
			if tc.valid {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, common.ErrMalformedManifest)
		})
	}
}
