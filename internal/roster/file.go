package roster

import (
	"fmt"
	"os"
	"strings"
)

// parseNames splits newline-delimited text into trimmed, non-empty names.
func parseNames(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// LoadFile reads a roster file with one name per line. Blank lines are
// skipped and surrounding whitespace is trimmed.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	return parseNames(string(data)), nil
}
