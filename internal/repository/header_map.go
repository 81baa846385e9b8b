package repository

import (
	"fmt"
	"strings"
)

// cleanHeader trims the header cells and disambiguates repeated names the way
// spreadsheet tools do ("Amount", "Amount.1", ...), so every column stays addressable
func cleanHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))

	for i, field := range header {
		name := strings.TrimSpace(strings.TrimPrefix(field, "\ufeff"))
		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n)
		} else {
			seen[name] = 1
		}
		out[i] = name
	}

	return out
}
