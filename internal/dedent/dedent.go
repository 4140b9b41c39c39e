// Package dedent cleans up indented text literals.
//
// Slide content is usually written as an indented block inside
// some larger structure:
//
//	code: |
//	    fn gcd(n: u64) -> u64 {
//	        ...
//	    }
//
// [Clean] turns that into "fn gcd(n: u64) -> u64 {\n    ...\n}\n",
// preserving indentation relative to the least indented line.
package dedent

import (
	"strings"
	"unicode"
)

// Clean removes leading newlines, trailing blank lines and spaces,
// and the indentation shared by all non-blank lines of s.
// The result ends with exactly one newline.
//
// If s has no non-blank lines, Clean returns what remains
// after stripping, usually the empty string.
func Clean(s string) string {
	s = strings.TrimLeft(s, "\n")
	s = strings.TrimRight(s, "\n ")
	if s == "" {
		return s
	}

	lines := strings.Split(s, "\n")
	common := -1
	for _, line := range lines {
		if isBlank(line) {
			continue
		}
		if n := indentation(line); common < 0 || n < common {
			common = n
		}
	}
	if common < 0 {
		return s
	}

	if common > 0 {
		for i, line := range lines {
			if len(line) < common {
				// Only blank lines can be shorter than the common indent.
				lines[i] = ""
				continue
			}
			lines[i] = line[common:]
		}
	}
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n") + "\n"
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// indentation reports the number of bytes of leading whitespace in line.
func indentation(line string) int {
	return len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
}
