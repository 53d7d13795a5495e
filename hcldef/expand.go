package hcldef

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand resolves glob patterns (with ** support) to a sorted list of
// files, dropping any path that matches one of excludes.
func Expand(patterns, excludes []string) ([]string, error) {
	for _, ex := range excludes {
		if !doublestar.ValidatePattern(filepath.ToSlash(ex)) {
			return nil, fmt.Errorf("bad exclude pattern %q: %w", ex, doublestar.ErrBadPattern)
		}
	}

	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			m = filepath.Clean(m)
			if seen[m] || Excluded(m, excludes) {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

// Excluded reports whether path matches any of the patterns. A pattern
// matches when it matches the whole path or any trailing run of its
// components, so "draft/**" and "*.bak" need no leading "**/".
func Excluded(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	parts := strings.Split(strings.TrimPrefix(filepath.ToSlash(path), "/"), "/")
	for i := range parts {
		tail := strings.Join(parts[i:], "/")
		for _, p := range patterns {
			if ok, _ := doublestar.Match(filepath.ToSlash(p), tail); ok {
				return true
			}
		}
	}
	return false
}
