// Package resolver maps a navigation path onto the manifest tree. Both
// functions are pure: they read the tree, never touch it, and signal a miss
// as a value instead of an error.
package resolver

import "github.com/jgivc/docviewer/internal/entity"

// Split extracts navigation segments from a URL path. Leading, trailing and
// repeated slashes produce no segments, so "/", "" and "//" all mean root.
func Split(path string) []string {
	var segments []string

	start := -1
	for i := 0; i < len(path); i++ {
		if path[i] == '/' {
			if start >= 0 {
				segments = append(segments, path[start:i])
				start = -1
			}

			continue
		}

		if start < 0 {
			start = i
		}
	}

	if start >= 0 {
		segments = append(segments, path[start:])
	}

	return segments
}

// Resolve walks the tree from root following segments child-by-child.
// Matching is exact and case-sensitive. An empty segment list resolves to
// the root itself. The boolean reports whether every segment matched.
func Resolve(root *entity.Node, segments []string) (*entity.Node, bool) {
	node := root
	for _, segment := range segments {
		child, ok := node.Child(segment)
		if !ok {
			return nil, false
		}

		node = child
	}

	return node, true
}
