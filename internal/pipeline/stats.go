package pipeline

// RunStats aggregates the outcome of one run.
type RunStats struct {
	RunID        string
	FilesRenamed int
	DirsRenamed  int
	Unchanged    int
	Failed       int
}
