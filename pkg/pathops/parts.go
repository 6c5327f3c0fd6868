package pathops

import "strings"

// lastExt extracts the extension from a final path segment. A dot at position
// zero marks a dotfile, not an extension, and `..` has no extension at all.
func lastExt(base string) string {
	if base == ".." {
		return ""
	}

	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return ""
	}

	return base[i:]
}

// splitSegments breaks a path into its non-empty segments.
func splitSegments(path string, isSep func(byte) bool) []string {
	var parts []string

	start := -1

	for i := 0; i < len(path); i++ {
		if isSep(path[i]) {
			if start >= 0 {
				parts = append(parts, path[start:i])
				start = -1
			}

			continue
		}

		if start < 0 {
			start = i
		}
	}

	if start >= 0 {
		parts = append(parts, path[start:])
	}

	return parts
}
