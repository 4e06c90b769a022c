//go:build linux

package timestamp

import (
	"os"
	"syscall"
	"time"
)

// statCtime extracts the status-change time from the platform stat data.
func statCtime(fi os.FileInfo) (time.Time, bool) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(st.Ctim.Sec, st.Ctim.Nsec), true
}
