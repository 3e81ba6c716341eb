// Package planner turns an ordered batch of candidates into a rename plan.
// It is the pure decision layer: it consumes candidates and the set of
// pre-existing paths produced by discovery, composes each proposed name,
// resolves collisions, and emits a fully materialized plan. No filesystem
// access happens here; execution lives in internal/pipeline.
package planner
