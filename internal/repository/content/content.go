// Package content retrieves the raw markdown addressed by a navigation path.
// Two implementations exist: one reads the work dir directly, the other
// mirrors the tree over HTTP from a static-asset host. Both signal a missing
// document and an unavailable backend as distinct sentinel errors so the
// caller can turn them into UI state instead of crashing.
package content

import (
	"fmt"
	"strings"

	"github.com/jgivc/docviewer/internal/common"
)

// joinSegments validates navigation segments and joins them into a relative
// path. Segments come from URLs, so path traversal is rejected here, before
// any backend sees them.
func joinSegments(segments []string) (string, error) {
	if len(segments) == 0 {
		return "", fmt.Errorf("empty path: %w", common.ErrContentNotFoundError)
	}

	for _, segment := range segments {
		if segment == "" || segment == "." || segment == ".." || strings.ContainsAny(segment, `/\`) {
			return "", fmt.Errorf("invalid path segment %q: %w", segment, common.ErrContentNotFoundError)
		}
	}

	return strings.Join(segments, "/"), nil
}
