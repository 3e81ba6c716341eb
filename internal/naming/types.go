package naming

import (
	"path/filepath"
	"strings"
)

// Granularity selects how much of a date is rendered into a name.
type Granularity string

const (
	GranularityDay   Granularity = "day"   // YYYY-MM-DD (default).
	GranularityMonth Granularity = "month" // YYYY-MM.
	GranularityYear  Granularity = "year"  // YYYY.
)

// Date is a calendar date with optional month and day. Month and Day are 0
// when absent; a Date with Day set always has Month set.
type Date struct {
	Year  int
	Month int
	Day   int
}

// IsZero reports whether no date value is present at all.
func (d Date) IsZero() bool { return d.Year == 0 }

// DateToken is a date recognized inside a stem, with the half-open byte
// span [Start, End) it occupied in the source text.
type DateToken struct {
	Date  Date
	Start int
	End   int
}

// Candidate is one input file to be normalized. Immutable once built.
type Candidate struct {
	Path    string // Absolute source path.
	Stem    string // Base name without extension.
	Ext     string // Extension including the leading dot; "" if none.
	Created Date   // Creation date; zero when not requested or unknown.
}

// NewCandidate splits an absolute path into a Candidate. The creation date
// is left zero; callers that need it fill it in.
func NewCandidate(path string) Candidate {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return Candidate{
		Path: path,
		Stem: strings.TrimSuffix(base, ext),
		Ext:  ext,
	}
}
