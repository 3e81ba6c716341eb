package pipeline

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/backmassage/filenorm/internal/planner"
)

// renameReporter receives per-entry outcomes as execution proceeds.
// internal/display.Reporter implements it.
type renameReporter interface {
	Rename(source, target string, dir bool)
	Failure(source, target string, err error)
}

// Execute performs the plan's renames in plan order. A failed rename is
// reported and logged but never aborts the batch; the remaining entries
// still run. Unchanged entries are skipped. Returns the number of renames
// performed and the number that failed.
func Execute(ctx context.Context, plan *planner.Plan, dir bool, rep renameReporter, log zerolog.Logger) (renamed, failed int) {
	for _, e := range plan.Entries {
		if ctx.Err() != nil {
			log.Warn().Msg("interrupted")
			break
		}
		if e.Unchanged() {
			continue
		}

		if err := os.Rename(e.Source, e.Target); err != nil {
			failed++
			rep.Failure(e.Source, e.Target, err)
			log.Error().Err(err).
				Str("source", e.Source).
				Str("target", e.Target).
				Msg("rename failed")
			continue
		}

		renamed++
		rep.Rename(e.Source, e.Target, dir)
		log.Debug().
			Str("source", e.Source).
			Str("target", e.Target).
			Msg("renamed")
	}
	return renamed, failed
}
