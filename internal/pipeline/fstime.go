package pipeline

import (
	"time"

	"github.com/backmassage/filenorm/internal/naming"
)

// dateOf truncates a timestamp to the opaque calendar date the engine
// consumes.
func dateOf(t time.Time) naming.Date {
	return naming.Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}
