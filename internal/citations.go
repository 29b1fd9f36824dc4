package internal

import "strings"

// StripCitations removes a trailing citations/sources section from answer
// text. The first line consisting solely of "Citations" or "Sources"
// terminates the kept text; everything from that line on is dropped.
// Text without a marker is returned unchanged apart from trimming.
func StripCitations(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch strings.TrimSpace(line) {
		case "Citations", "Sources":
			return strings.TrimSpace(strings.Join(lines[:i], "\n"))
		}
	}
	return strings.TrimSpace(text)
}
