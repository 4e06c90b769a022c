//go:build !linux && !darwin

package timestamp

import (
	"os"
	"time"
)

// statCtime reports no status-change time on platforms without a portable
// source for it; the candidate is simply not gathered.
func statCtime(_ os.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
