//go:build !windows

package timestamp

import (
	"os"
	"time"
)

// WriteFileTimes rewrites the file's timestamps to the three UTC instants.
// POSIX filesystems expose no settable creation time, so only access and
// modification times are applied; created is accepted for interface parity
// with the Windows implementation.
func WriteFileTimes(path string, created, accessed, modified time.Time) error {
	_ = created
	return os.Chtimes(path, accessed, modified)
}
