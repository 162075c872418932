package util

import (
	"crypto/sha1"
	"encoding/hex"
)

// ContentHash returns a stable hex digest of content, used as the ETag of a
// rendered page.
func ContentHash(content []byte) string {
	hasher := sha1.New()
	hasher.Write(content)

	return hex.EncodeToString(hasher.Sum(nil))
}
