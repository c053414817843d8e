// Package checksum marks generated documentation blobs with a digest of the
// source they were rendered from, so up-to-date files can be skipped.
package checksum

import (
	"fmt"
	"hash/fnv"
	"strings"
)

const headerPrefix = "// brsdoc:checksum:"

// Calculate computes the checksum of one source file's content.
func Calculate(source string) string {
	h := fnv.New32a()
	h.Write([]byte(source))

	// 8-character hex string
	return fmt.Sprintf("%08x", h.Sum32())
}

// Header formats the checksum marker line placed at the top of a blob.
func Header(sum string) string {
	return headerPrefix + sum
}

// FromBlob extracts the checksum recorded in a previously generated blob.
// Returns an empty string when the blob carries no marker.
func FromBlob(blob string) string {
	line, _, _ := strings.Cut(blob, "\n")
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, headerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(line, headerPrefix))
	}
	return ""
}
