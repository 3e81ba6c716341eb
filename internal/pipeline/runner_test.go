package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/filenorm/internal/config"
	"github.com/backmassage/filenorm/internal/display"
	"github.com/backmassage/filenorm/internal/logging"
	"github.com/backmassage/filenorm/internal/planner"
)

func runIn(t *testing.T, cfg *config.Config) (RunStats, string) {
	t.Helper()
	var out, logBuf bytes.Buffer
	log := logging.Setup(false, &logBuf)
	rep := display.NewReporter(&out, cfg.DryRun)

	stats, err := Run(context.Background(), cfg, log, rep)
	require.NoError(t, err)
	return stats, out.String()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestRun_RenamesFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Hello_World.txt")
	touch(t, dir, "My Document.PDF")

	cfg := config.Default()
	cfg.Path = dir

	stats, out := runIn(t, cfg)

	assert.Equal(t, 2, stats.FilesRenamed)
	assert.Equal(t, 0, stats.Failed)
	assert.True(t, exists(filepath.Join(dir, "hello-world.txt")))
	assert.True(t, exists(filepath.Join(dir, "my-document.pdf")))
	assert.False(t, exists(filepath.Join(dir, "Hello_World.txt")))
	assert.Contains(t, out, "Hello_World.txt -> hello-world.txt")
	assert.Contains(t, out, "Renamed 2 file(s)")
}

func TestRun_DryRunTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Hello_World.txt")

	cfg := config.Default()
	cfg.Path = dir
	cfg.DryRun = true

	stats, out := runIn(t, cfg)

	assert.Equal(t, 1, stats.FilesRenamed)
	assert.True(t, exists(filepath.Join(dir, "Hello_World.txt")))
	assert.False(t, exists(filepath.Join(dir, "hello-world.txt")))
	assert.Contains(t, out, "[DRY RUN] Hello_World.txt -> hello-world.txt")
	assert.Contains(t, out, "Would rename 1 file(s)")
}

func TestRun_BatchCollisionGetsSuffix(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a b.txt")
	touch(t, dir, "A_B.txt")

	cfg := config.Default()
	cfg.Path = dir

	stats, _ := runIn(t, cfg)

	assert.Equal(t, 2, stats.FilesRenamed)
	assert.True(t, exists(filepath.Join(dir, "a-b.txt")))
	assert.True(t, exists(filepath.Join(dir, "a-b-2.txt")))
}

func TestRun_ExistingFileIsNotClobbered(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "report.txt") // already canonical, stays put
	touch(t, dir, "Report Final.txt")
	touch(t, dir, "REPORT.txt") // collides with the untouched report.txt

	cfg := config.Default()
	cfg.Path = dir

	_, _ = runIn(t, cfg)

	assert.True(t, exists(filepath.Join(dir, "report.txt")))
	assert.True(t, exists(filepath.Join(dir, "report-final.txt")))
	assert.True(t, exists(filepath.Join(dir, "report-2.txt")))
}

func TestRun_UnchangedFilesAreSkipped(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "already-canonical.txt")

	cfg := config.Default()
	cfg.Path = dir

	stats, out := runIn(t, cfg)

	assert.Equal(t, 0, stats.FilesRenamed)
	assert.Equal(t, 1, stats.Unchanged)
	assert.Contains(t, out, "Renamed 0 file(s)")
}

func TestRun_NoMatchesIsInformational(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Some File.md")

	cfg := config.Default()
	cfg.Path = dir
	cfg.Extensions = []string{"txt"}
	require.NoError(t, cfg.Validate())

	stats, out := runIn(t, cfg)

	assert.Equal(t, 0, stats.FilesRenamed)
	assert.Contains(t, out, "No files matched.")
	assert.True(t, exists(filepath.Join(dir, "Some File.md")))
}

func TestRun_AddDatePrefix(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, dir, "document.txt")
	stamp := time.Date(2024, 12, 13, 10, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	cfg := config.Default()
	cfg.Path = dir
	cfg.AddDatePrefix = true

	stats, _ := runIn(t, cfg)

	assert.Equal(t, 1, stats.FilesRenamed)
	assert.True(t, exists(filepath.Join(dir, "2024-12-13-document.txt")))

	// A second run is a no-op: the name now carries its date.
	cfg2 := config.Default()
	cfg2.Path = dir
	cfg2.AddDatePrefix = true
	stats2, _ := runIn(t, cfg2)
	assert.Equal(t, 0, stats2.FilesRenamed)
	assert.True(t, exists(filepath.Join(dir, "2024-12-13-document.txt")))
}

func TestRun_EmbeddedDateReformatted(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "2024_05_15_Report.docx")

	cfg := config.Default()
	cfg.Path = dir

	_, _ = runIn(t, cfg)

	assert.True(t, exists(filepath.Join(dir, "2024-05-15-report.docx")))
}

func TestRun_DirectoryNormalization(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "Parent Dir", "Child_Dir")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	touch(t, filepath.Join(root, "Parent Dir"), "Some File.txt")

	cfg := config.Default()
	cfg.Path = root
	cfg.Recursive = true
	cfg.IncludeDirs = true

	stats, out := runIn(t, cfg)

	assert.Equal(t, 1, stats.FilesRenamed)
	assert.Equal(t, 2, stats.DirsRenamed)
	assert.True(t, exists(filepath.Join(root, "parent-dir", "child-dir")))
	assert.True(t, exists(filepath.Join(root, "parent-dir", "some-file.txt")))
	assert.Contains(t, out, "Renamed 2 directory(ies)")
}

func TestRun_LeftoverLockFileIsIgnored(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "First File.txt")

	cfg := config.Default()
	cfg.Path = dir
	cfg.AddDatePrefix = true

	stats, _ := runIn(t, cfg)
	require.Equal(t, 1, stats.FilesRenamed)
	require.True(t, exists(filepath.Join(dir, lockFileName)))

	// The lock file left behind is neither renamed nor date-prefixed, and
	// the lock can be taken again.
	stats, _ = runIn(t, cfg)
	assert.Equal(t, 0, stats.FilesRenamed)
	assert.Equal(t, 0, stats.Failed)
	assert.True(t, exists(filepath.Join(dir, lockFileName)))
}

func TestRun_FileAndDirectorySharingATargetDoNotCollide(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "My Photos"), 0o755))
	touch(t, root, "My_Photos")

	cfg := config.Default()
	cfg.Path = root
	cfg.IncludeDirs = true

	stats, _ := runIn(t, cfg)

	assert.Equal(t, 1, stats.FilesRenamed)
	assert.Equal(t, 1, stats.DirsRenamed)
	assert.Equal(t, 0, stats.Failed)
	assert.True(t, exists(filepath.Join(root, "my-photos")))
	assert.True(t, exists(filepath.Join(root, "my-photos-2")))
}

func TestExecute_ContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Good File.txt")

	plan := &planner.Plan{Entries: []planner.Entry{
		{
			Source:   filepath.Join(dir, "missing.txt"),
			Proposed: filepath.Join(dir, "gone.txt"),
			Target:   filepath.Join(dir, "gone.txt"),
		},
		{
			Source:   filepath.Join(dir, "Good File.txt"),
			Proposed: filepath.Join(dir, "good-file.txt"),
			Target:   filepath.Join(dir, "good-file.txt"),
		},
	}}

	var out, logs bytes.Buffer
	rep := display.NewReporter(&out, false)
	log := logging.Setup(false, &logs)

	renamed, failed := Execute(context.Background(), plan, false, rep, log)
	require.Equal(t, 1, renamed)
	require.Equal(t, 1, failed)
	require.True(t, exists(filepath.Join(dir, "good-file.txt")))
}
