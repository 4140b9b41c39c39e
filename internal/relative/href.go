// Package relative builds links between files in the output directory.
package relative

import (
	"net/url"
	"path"
	"strings"
)

// Href returns a link to target from the document at from.
// Both are /-separated paths relative to the output directory.
//
// Targets that are absolute paths or URLs with a scheme
// are returned unchanged.
func Href(from, target string) string {
	if target == "" || path.IsAbs(target) {
		return target
	}
	if u, err := url.Parse(target); err != nil || u.Scheme != "" || u.Host != "" {
		return target
	}

	dir := path.Dir(path.Clean(from))
	target = path.Clean(target)
	if dir == "." {
		return target
	}

	dirParts := strings.Split(dir, "/")
	targetParts := strings.Split(target, "/")

	// Drop the directories shared by both paths.
	// The last part of target is a file, so it's never shared.
	common := 0
	for common < len(dirParts) && common < len(targetParts)-1 &&
		dirParts[common] == targetParts[common] {
		common++
	}

	parts := make([]string, 0, len(dirParts)-common+len(targetParts)-common)
	for range dirParts[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, targetParts[common:]...)
	return strings.Join(parts, "/")
}
