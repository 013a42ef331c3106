// File: pkg/merge/discover.go
package merge

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Discover scans folder (non-recursively) and partitions its directly
// contained .txt files into one Group per profile class. Files matching no
// class prefix are ignored, as are the profile's own combined output files
// left behind by an earlier run. Empty groups are a valid result.
func Discover(folder string, profile Profile, logger *zap.Logger) ([]Group, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		logger.Error("Failed to scan folder", zap.String("folder", folder), zap.Error(err))
		return nil, fmt.Errorf("failed to scan folder: %w", err)
	}

	outputs := profile.outputNames()
	groups := make([]Group, len(profile.Classes))
	for i, c := range profile.Classes {
		groups[i] = Group{Class: c}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ".txt" {
			continue
		}
		if outputs[name] {
			logger.Debug("Skipping combined output from an earlier run", zap.String("file", name))
			continue
		}
		for i := range groups {
			if strings.HasPrefix(name, groups[i].Class.Prefix) {
				groups[i].Files = append(groups[i].Files, filepath.Join(folder, name))
				break
			}
		}
	}

	// Sort each group by filename so merge order is stable across platforms
	// and filesystems.
	for i := range groups {
		files := groups[i].Files
		sort.Slice(files, func(a, b int) bool {
			return filepath.Base(files[a]) < filepath.Base(files[b])
		})
		logger.Debug("Discovered class files",
			zap.String("class", groups[i].Class.Name),
			zap.Int("fileCount", len(files)))
	}

	return groups, nil
}
