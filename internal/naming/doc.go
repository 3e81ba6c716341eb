// Package naming implements the filename normalization engine: lexical
// separator/case normalization, date detection and reformatting, proposed
// name composition, and batch collision resolution.
//
// The pieces split along these boundaries: normalizer.go (pure lexical
// transform), dates.go (priority-ordered detection rule table and the
// canonical formatter), composer.go (one candidate in, one proposed name
// out), collision.go (stateful per-run resolver). Everything here is
// filesystem-free; discovery and renaming live in internal/pipeline.
package naming
