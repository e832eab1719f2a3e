package inventory

// exclude.go — Glob patterns that keep paths out of the inventory.
//
// Patterns come from the audit config ("exclude:" list). Two forms:
//
//	"prefix/**"  matches the prefix directory itself and everything beneath it
//	anything else uses filepath.Match semantics (single * does not cross /)

import (
	"path/filepath"
	"strings"
)

// Match reports whether path (forward-slash, relative to the root) matches
// the exclude pattern.
func Match(pattern, path string) bool {
	if strings.HasSuffix(pattern, "/**") {
		prefix := strings.TrimSuffix(pattern, "/**")
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	matched, _ := filepath.Match(pattern, path)
	return matched
}

func matchAny(patterns []string, path string) bool {
	for _, p := range patterns {
		if Match(p, path) {
			return true
		}
	}
	return false
}
