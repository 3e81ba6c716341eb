package naming

import "strings"

// Compose produces the proposed file name (extension included) for a
// candidate. When the stem carries a recognized date token, the token is
// reformatted at the requested granularity and sits inline where it was
// found, hyphen-separated from the normalized text around it. When no token
// is found and addDate is set, the candidate's creation date is prefixed.
// The extension is lowercased.
//
// Composing an already-canonical name yields it unchanged, including when
// addDate is set and the name already starts with a canonical date: the
// detector sees the existing token, so no second prefix is added. That
// guarantee requires the prefix to be re-detectable, so a creation year
// outside the detector's accepted range is never prefixed.
func Compose(c Candidate, g Granularity, addDate bool) string {
	var stem string
	if tok, ok := DetectDate(c.Stem); ok {
		before := NormalizeStem(c.Stem[:tok.Start])
		after := NormalizeStem(c.Stem[tok.End:])
		stem = joinSegments(before, FormatDate(tok.Date, g), after)
	} else {
		stem = NormalizeStem(c.Stem)
		if addDate && !c.Created.IsZero() && validYear(c.Created.Year) {
			stem = joinSegments(FormatDate(c.Created, g), stem)
		}
	}
	return stem + strings.ToLower(c.Ext)
}
