// Package paths expands ontology path patterns into concrete files.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Resolve expands glob patterns to concrete ontology files. Supports both
// single-level wildcards (*) and recursive wildcards (**).
//
// Examples:
//   - "ontologies/*.ttl" → every Turtle file in ontologies/
//   - "data/**/*.owl" → every OWL file under data/, recursively
//   - "schema.nt" → ["schema.nt"]
//
// Returns only regular files, deduplicated, in pattern order.
func Resolve(patterns []string) ([]string, error) {
	var resolved []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		files, err := resolvePattern(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}

		for _, f := range files {
			if !seen[f] {
				seen[f] = true
				resolved = append(resolved, f)
			}
		}
	}

	return resolved, nil
}

// resolvePattern expands a single glob pattern to files.
func resolvePattern(pattern string) ([]string, error) {
	if !containsGlob(pattern) {
		absPath, err := filepath.Abs(pattern)
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			return nil, fmt.Errorf("path is a directory, not an ontology file: %s", absPath)
		}
		return []string{absPath}, nil
	}

	absPattern, err := filepath.Abs(pattern)
	if err != nil {
		return nil, err
	}

	// Use doublestar for ** support
	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, m)
	}
	return files, nil
}

// containsGlob reports whether the pattern carries glob metacharacters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
