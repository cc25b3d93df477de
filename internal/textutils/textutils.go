// Package textutils provides text manipulation utilities shared by the
// statement parsers.
package textutils

import "strings"

// SplitLines splits extracted statement text into lines. Both "\n" and
// "\r\n" line endings are tolerated; the terminators themselves are not
// part of the returned lines. A trailing newline does not produce a final
// empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// CountNonBlank returns the number of lines with any non-whitespace content.
func CountNonBlank(lines []string) int {
	n := 0
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
