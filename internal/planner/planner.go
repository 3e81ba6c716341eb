package planner

import (
	"path/filepath"

	"github.com/backmassage/filenorm/internal/config"
	"github.com/backmassage/filenorm/internal/naming"
)

// BuildPlan composes a proposed name for every candidate and resolves
// collisions against the other entries and the pre-existing paths. existing
// is the full set of paths already present in the directories the batch
// touches; the resolver discounts the batch's own sources from it.
//
// Resolution runs in two passes: entries already carrying their canonical
// name claim it first, then the rest resolve in input order. Without the
// first pass an earlier entry could claim the bare name of a file that is
// not moving, and executing that rename would overwrite it. Entries keep
// input order in the returned plan, and the plan is deterministic for a
// given candidate order and configuration.
func BuildPlan(candidates []naming.Candidate, existing []string, cfg *config.Config) *Plan {
	sources := make([]string, len(candidates))
	proposals := make([]string, len(candidates))
	for i, c := range candidates {
		sources[i] = c.Path
		name := naming.Compose(c, cfg.Granularity, cfg.AddDatePrefix)
		proposals[i] = filepath.Join(filepath.Dir(c.Path), name)
	}
	return resolve(sources, proposals, existing)
}

// BuildDirPlan plans directory renames. Directory names get the lexical
// normalization only: a directory has no extension to anchor date
// reformatting semantics, and the original tool never reformatted them.
// dirs must already be ordered deepest first so executing in plan order
// cannot invalidate child paths.
func BuildDirPlan(dirs []string, existing []string) *Plan {
	proposals := make([]string, len(dirs))
	for i, dir := range dirs {
		name := naming.NormalizeStem(filepath.Base(dir))
		if name == "" {
			name = filepath.Base(dir)
		}
		proposals[i] = filepath.Join(filepath.Dir(dir), name)
	}
	return resolve(dirs, proposals, existing)
}

func resolve(sources, proposals, existing []string) *Plan {
	resolver := naming.NewCollisionResolver(existing, sources)
	targets := make([]string, len(sources))

	// Pass 1: no-op entries keep their current names.
	for i := range sources {
		if proposals[i] == sources[i] {
			targets[i] = resolver.Resolve(sources[i], proposals[i])
		}
	}
	// Pass 2: everything else, in input order.
	for i := range sources {
		if targets[i] == "" {
			targets[i] = resolver.Resolve(sources[i], proposals[i])
		}
	}

	plan := &Plan{Entries: make([]Entry, 0, len(sources))}
	for i := range sources {
		plan.Entries = append(plan.Entries, Entry{
			Source:   sources[i],
			Proposed: proposals[i],
			Target:   targets[i],
		})
	}
	return plan
}
