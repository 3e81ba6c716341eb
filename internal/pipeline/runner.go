package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/backmassage/filenorm/internal/config"
	"github.com/backmassage/filenorm/internal/display"
	"github.com/backmassage/filenorm/internal/naming"
	"github.com/backmassage/filenorm/internal/planner"
)

// Run is the top-level entry point for one normalization run: discover
// candidates, build the full plan, then preview or execute it. The plan is
// completely materialized before the first rename, so aborting a dry run
// leaves the filesystem untouched by construction.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger, rep *display.Reporter) (RunStats, error) {
	stats := RunStats{RunID: uuid.NewString()}
	log = log.With().Str("run_id", stats.RunID).Logger()

	files, err := CollectFiles(cfg.Path, cfg.Recursive, cfg.ExtensionSet())
	if err != nil {
		return stats, err
	}
	log.Debug().Int("files", len(files)).Str("path", cfg.Path).Msg("candidates discovered")

	candidates := make([]naming.Candidate, 0, len(files))
	for _, f := range files {
		c := naming.NewCandidate(f)
		if cfg.AddDatePrefix {
			if fi, statErr := os.Stat(f); statErr == nil {
				c.Created = creationDate(fi)
			}
		}
		candidates = append(candidates, c)
	}

	existing, err := ExistingPaths(files)
	if err != nil {
		return stats, err
	}
	plan := planner.BuildPlan(candidates, existing, cfg)

	var dirPlan *planner.Plan
	if cfg.IncludeDirs {
		dirs, err := CollectDirs(cfg.Path, cfg.Recursive)
		if err != nil {
			return stats, err
		}
		if len(dirs) > 0 {
			dirExisting, err := ExistingPaths(dirs)
			if err != nil {
				return stats, err
			}
			// The file plan executes first; its targets are taken by the
			// time directory renames run, so they count as existing here.
			for _, e := range plan.Entries {
				dirExisting = append(dirExisting, e.Target)
			}
			dirPlan = planner.BuildDirPlan(dirs, dirExisting)
		}
	}

	stats.Unchanged = len(plan.Entries) - plan.Changes()

	if plan.Empty() && (dirPlan == nil || dirPlan.Empty()) {
		rep.NothingToDo()
		log.Info().Msg("no candidates matched")
		return stats, nil
	}

	if cfg.DryRun {
		for _, e := range plan.Entries {
			if !e.Unchanged() {
				rep.Rename(e.Source, e.Target, false)
				stats.FilesRenamed++
			}
		}
		if dirPlan != nil {
			for _, e := range dirPlan.Entries {
				if !e.Unchanged() {
					rep.Rename(e.Source, e.Target, true)
					stats.DirsRenamed++
				}
			}
		}
		rep.Summary(stats.FilesRenamed, stats.DirsRenamed, 0, cfg.IncludeDirs)
		return stats, nil
	}

	release, err := acquireRunLock(lockDir(cfg.Path))
	if err != nil {
		return stats, err
	}
	defer release()

	renamed, failed := Execute(ctx, plan, false, rep, log)
	stats.FilesRenamed = renamed
	stats.Failed += failed

	if dirPlan != nil {
		renamed, failed = Execute(ctx, dirPlan, true, rep, log)
		stats.DirsRenamed = renamed
		stats.Failed += failed
	}

	rep.Summary(stats.FilesRenamed, stats.DirsRenamed, stats.Failed, cfg.IncludeDirs)
	log.Info().
		Int("files_renamed", stats.FilesRenamed).
		Int("dirs_renamed", stats.DirsRenamed).
		Int("unchanged", stats.Unchanged).
		Int("failed", stats.Failed).
		Msg("run complete")
	return stats, nil
}

// lockDir picks where the run lock lives: the directory itself, or the
// parent when the run targets a single file.
func lockDir(path string) string {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return path
	}
	return filepath.Dir(path)
}
