package naming

import "strings"

// NormalizeStem applies the lexical normalization rules to a stem:
// whitespace and underscore runs become single hyphens, ASCII letters are
// lowercased (non-ASCII passes through unchanged), hyphen runs collapse to
// one, and edge hyphens are trimmed. Pure and idempotent.
func NormalizeStem(stem string) string {
	var b strings.Builder
	b.Grow(len(stem))

	pendingHyphen := false
	for _, r := range stem {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '_' || r == '-' {
			pendingHyphen = true
			continue
		}
		if pendingHyphen {
			if b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// joinSegments joins non-empty segments with single hyphens.
func joinSegments(segments ...string) string {
	parts := segments[:0:0]
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "-")
}
