// Package naming builds output file names and resolves in-run collisions
// between items that would claim the same output path.
package naming

import (
	"path/filepath"
	"strings"
)

// OutputName returns the output base name for an archive item: the
// archive's stem carrying the main asset's extension, with .jpeg
// normalized to .jpg.
func OutputName(archivePath, mainName string) string {
	stem := strings.TrimSuffix(filepath.Base(archivePath), filepath.Ext(archivePath))
	ext := strings.ToLower(filepath.Ext(mainName))
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	return stem + ext
}
