//go:build linux

package pipeline

import (
	"os"
	"syscall"
	"time"

	"github.com/backmassage/filenorm/internal/naming"
)

// creationDate approximates a file's creation time. Linux exposes no birth
// time through os.FileInfo, so the earlier of status-change and modification
// time is used.
func creationDate(fi os.FileInfo) naming.Date {
	t := fi.ModTime()
	if st, ok := fi.Sys().(*syscall.Stat_t); ok {
		// Timespec fields are int32 on 32-bit platforms.
		ctime := time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
		if ctime.Before(t) {
			t = ctime
		}
	}
	return dateOf(t)
}
