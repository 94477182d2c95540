package parsers

import "strings"

// splitLines splits text on "\n", dropping a trailing "\r" from each line and the empty
// element produced by a final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
