// Package textscan decides whether a byte buffer looks like text and
// extracts line-level substring matches from it.
package textscan

import (
	"bytes"
	"strings"
)

// Match is one matching line within a scanned file. Line numbers are
// 1-indexed; Text is capped at 400 characters.
type Match struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

const matchTextLimit = 400

// IsProbablyText is a cheap binary check: any NUL byte means binary.
// It is not a MIME sniff, just enough to skip scanning garbage.
func IsProbablyText(b []byte) bool {
	return bytes.IndexByte(b, 0) < 0
}

// FindLineMatches returns the lines of text containing needle as a
// case-insensitive substring, in order, stopping after maxMatches.
func FindLineMatches(text, needle string, maxMatches int) []Match {
	n := strings.ToLower(needle)
	var out []Match
	for i, line := range splitLines(text) {
		if strings.Contains(strings.ToLower(line), n) {
			out = append(out, Match{Line: i + 1, Text: truncate(line, matchTextLimit)})
			if len(out) >= maxMatches {
				break
			}
		}
	}
	return out
}

// splitLines splits on \n, \r\n and bare \r. A trailing line terminator
// does not produce a final empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(s)
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
