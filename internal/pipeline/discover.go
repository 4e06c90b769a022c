package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiscoverArchives returns the root-level .zip files in name order. The
// scan is deliberately non-recursive; nested folders are out of scope.
func DiscoverArchives(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read input folder %q: %w", root, err)
	}

	var zips []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".zip") {
			zips = append(zips, filepath.Join(root, e.Name()))
		}
	}
	return zips, nil
}

// DiscoverStandalone returns root-level loose media files (.mp4 and .png)
// that live next to the archives. The sweep is best-effort; a read failure
// yields an empty list.
func DiscoverStandalone(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".mp4", ".png":
			files = append(files, filepath.Join(root, e.Name()))
		}
	}
	return files
}
