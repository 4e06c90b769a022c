//go:build windows

package timestamp

import (
	"syscall"
	"time"
)

// WriteFileTimes rewrites the file's creation, access, and modification
// times via SetFileTime, which is the only way to set the creation time
// on NTFS.
func WriteFileTimes(path string, created, accessed, modified time.Time) error {
	p, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	h, err := syscall.CreateFile(p,
		syscall.FILE_WRITE_ATTRIBUTES,
		syscall.FILE_SHARE_READ|syscall.FILE_SHARE_WRITE,
		nil,
		syscall.OPEN_EXISTING,
		syscall.FILE_ATTRIBUTE_NORMAL,
		0,
	)
	if err != nil {
		return err
	}
	defer syscall.CloseHandle(h)

	cft := syscall.NsecToFiletime(created.UnixNano())
	aft := syscall.NsecToFiletime(accessed.UnixNano())
	mft := syscall.NsecToFiletime(modified.UnixNano())
	return syscall.SetFileTime(h, &cft, &aft, &mft)
}
