// Package pipeline orchestrates a normalization run: candidate discovery,
// plan construction via internal/planner, plan execution, and the run
// summary. Planning always completes before the first rename; a dry run and
// a real run differ only in whether the executor performs the final effect.
package pipeline
