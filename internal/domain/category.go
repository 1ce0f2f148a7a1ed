package domain

import "strings"

// A raw category field encodes one or more hierarchical paths, e.g.
// "Fashion, Fashion > Women > Shoes". Paths are comma-separated and levels
// within a path are separated by ">".
const (
	categoryPathSeparator  = ","
	categoryLevelSeparator = ">"
)

// CategoryPaths parses a raw category field into its hierarchical paths.
// Every level token is whitespace-trimmed; empty paths are skipped.
func CategoryPaths(rawCategory string) [][]string {
	if strings.TrimSpace(rawCategory) == "" {
		return nil
	}

	var paths [][]string
	for _, rawPath := range strings.Split(rawCategory, categoryPathSeparator) {
		rawPath = strings.TrimSpace(rawPath)
		if rawPath == "" {
			continue
		}

		levels := strings.Split(rawPath, categoryLevelSeparator)
		path := make([]string, 0, len(levels))
		for _, level := range levels {
			path = append(path, strings.TrimSpace(level))
		}
		paths = append(paths, path)
	}

	return paths
}
