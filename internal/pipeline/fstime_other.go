//go:build !linux

package pipeline

import (
	"os"

	"github.com/backmassage/filenorm/internal/naming"
)

// creationDate approximates a file's creation time with its modification
// time on platforms without a portable birth-time field.
func creationDate(fi os.FileInfo) naming.Date {
	return dateOf(fi.ModTime())
}
