// Package display renders the user-facing plan preview and run summary.
// Diagnostics go through internal/logging; everything here is the output a
// user reads, colored when stdout is a terminal.
package display

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	dryTag    = color.New(color.FgYellow).Sprint("[DRY RUN]")
	failTag   = color.New(color.FgRed, color.Bold).Sprint("[FAILED]")
	arrowText = color.New(color.FgCyan).Sprint("->")
)

// Reporter writes rename lines and the final summary. It prints base names
// only, like the tool it replaces; sources and targets always share a parent
// directory, so full paths add nothing.
type Reporter struct {
	out    io.Writer
	dryRun bool
	plain  bool
}

// NewReporter builds a reporter for out. Color is used only when out is a
// terminal; piped output gets plain "old -> new" lines.
func NewReporter(out io.Writer, dryRun bool) *Reporter {
	plain := true
	if f, ok := out.(*os.File); ok {
		plain = !isatty.IsTerminal(f.Fd())
	}
	return &Reporter{out: out, dryRun: dryRun, plain: plain}
}

// Rename prints one planned or performed rename.
func (r *Reporter) Rename(source, target string, dir bool) {
	from := filepath.Base(source)
	to := filepath.Base(target)
	if dir {
		from += "/"
		to += "/"
	}

	switch {
	case r.plain && r.dryRun:
		fmt.Fprintf(r.out, "[DRY RUN] %s -> %s\n", from, to)
	case r.plain:
		fmt.Fprintf(r.out, "%s -> %s\n", from, to)
	case r.dryRun:
		fmt.Fprintf(r.out, "%s %s %s %s\n", dryTag, from, arrowText, to)
	default:
		fmt.Fprintf(r.out, "%s %s %s\n", from, arrowText, to)
	}
}

// Failure prints a rename that could not be performed. The batch continues;
// failures are counted and resurface in the summary.
func (r *Reporter) Failure(source, target string, err error) {
	if r.plain {
		fmt.Fprintf(r.out, "[FAILED] %s -> %s: %v\n", filepath.Base(source), filepath.Base(target), err)
		return
	}
	fmt.Fprintf(r.out, "%s %s %s %s: %v\n", failTag, filepath.Base(source), arrowText, filepath.Base(target), err)
}

// NothingToDo reports an empty plan. Informational, not an error.
func (r *Reporter) NothingToDo() {
	fmt.Fprintln(r.out, "No files matched.")
}

// Summary prints the end-of-run counts.
func (r *Reporter) Summary(files, dirs, failed int, includeDirs bool) {
	action := "Renamed"
	if r.dryRun {
		action = "Would rename"
	}

	fmt.Fprintf(r.out, "\n%s %d file(s)\n", action, files)
	if includeDirs {
		fmt.Fprintf(r.out, "%s %d directory(ies)\n", action, dirs)
	}
	if failed > 0 {
		msg := fmt.Sprintf("%d rename(s) failed", failed)
		if !r.plain {
			msg = color.New(color.FgRed).Sprint(msg)
		}
		fmt.Fprintln(r.out, msg)
	}
}
