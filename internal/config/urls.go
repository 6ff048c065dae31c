package config

import (
	"fmt"
	"os"
	"strings"
)

// LoadURLList reads a newline-delimited URL list from path.
// Each line is trimmed of surrounding whitespace; blank lines are
// discarded. Order and duplicates are preserved because progress
// numbering and the dead-link list follow input order.
//
// A missing or unreadable file returns an error wrapping
// ErrURLListNotFound; this aborts the run before any network call.
func LoadURLList(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrURLListNotFound, path)
	}

	lines := strings.Split(string(data), "\n")
	urls := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		urls = append(urls, line)
	}
	return urls, nil
}
