package archive

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zip"
)

// ErrDirectoryEntry is returned by ExtractFlat when the named entry is a
// directory; such archives are skipped.
var ErrDirectoryEntry = errors.New("directory entry")

// Archive wraps an opened zip file for inspection and flattened extraction.
type Archive struct {
	path string
	zr   *zip.ReadCloser
}

// Open opens the archive at path for reading.
func Open(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive %q: %w", path, err)
	}
	return &Archive{path: path, zr: zr}, nil
}

// Close releases the underlying zip reader.
func (a *Archive) Close() error {
	return a.zr.Close()
}

// Path returns the archive file's own path.
func (a *Archive) Path() string { return a.path }

// Names returns the entry names in listing order.
func (a *Archive) Names() []string {
	names := make([]string, 0, len(a.zr.File))
	for _, f := range a.zr.File {
		names = append(names, f.Name)
	}
	return names
}

// EntryTime returns the recorded modification time of the named entry in
// UTC. The second return is false when the entry does not exist; callers
// treat a missing candidate as simply unavailable.
func (a *Archive) EntryTime(name string) (time.Time, bool) {
	f := a.find(name)
	if f == nil {
		return time.Time{}, false
	}
	return f.Modified.UTC(), true
}

// ExtractFlat extracts the named entry into destDir under its base name,
// discarding any directory components inside the archive. Directory entries
// are rejected; the owning item gets skipped.
func (a *Archive) ExtractFlat(name, destDir string) (string, error) {
	f := a.find(name)
	if f == nil {
		return "", fmt.Errorf("entry %q not found in %s", name, filepath.Base(a.path))
	}
	if f.FileInfo().IsDir() {
		return "", fmt.Errorf("%w: %q", ErrDirectoryEntry, name)
	}

	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("open entry %q: %w", name, err)
	}
	defer rc.Close()

	dest := filepath.Join(destDir, filepath.Base(f.Name))
	out, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return "", fmt.Errorf("extract entry %q: %w", name, err)
	}
	return dest, nil
}

func (a *Archive) find(name string) *zip.File {
	for _, f := range a.zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}
