// Package report renders the user facing output of hook runs and
// interactive commands.
//
// Diagnostics go to the structured logger; this package prints the part
// the user is meant to read, on stdout by default. Colors are enabled
// only when writing to a terminal, and every message has a sober and a
// funny variant, selected by the repository settings.
package report

import (
	"fmt"
	"io"
	"os"

	units "github.com/docker/go-units"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Reporter writes human readable progress messages
type Reporter struct {
	out     io.Writer
	colors  bool
	verbose bool
	funny   bool
}

// New builds a reporter writing to stdout, with colors when stdout is a
// terminal. Use options to redirect output or force the presentation.
func New(opts ...Option) *Reporter {
	r := &Reporter{
		out:    os.Stdout,
		colors: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
	for _, apply := range opts {
		apply(r)
	}
	return r
}

func (r *Reporter) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *Reporter) green(s string) string {
	if r.colors {
		return color.GreenString("%s", s)
	}
	return s
}

func (r *Reporter) red(s string) string {
	if r.colors {
		return color.RedString("%s", s)
	}
	return s
}

func (r *Reporter) yellow(s string) string {
	if r.colors {
		return color.YellowString("%s", s)
	}
	return s
}

func (r *Reporter) cyan(s string) string {
	if r.colors {
		return color.CyanString("%s", s)
	}
	return s
}

func (r *Reporter) magenta(s string) string {
	if r.colors {
		return color.MagentaString("%s", s)
	}
	return s
}

// PreCommitStart announces a strip run
func (r *Reporter) PreCommitStart() {
	if r.funny {
		r.printf("%s\n", r.magenta("Abra kadabra! Vanishing unwanted lines..."))
		return
	}
	r.printf("%s\n", r.yellow("Processing staged files..."))
}

// DryRun announces that nothing will be persisted
func (r *Reporter) DryRun() {
	r.printf("%s\n", r.cyan("DRY RUN: no changes will be persisted"))
}

// FileMatched reports how many patterns apply to a staged file.
// Verbose only.
func (r *Reporter) FileMatched(path string, patterns int) {
	if !r.verbose {
		return
	}
	r.printf("%s: %d pattern(s) configured\n", r.cyan(path), patterns)
}

// FileStripped reports lines removed from one staged file
func (r *Reporter) FileStripped(path string, lines int, ranges string, removed int64) {
	if r.funny {
		r.printf("%s\n", r.green(fmt.Sprintf("%s: %d line(s) [%s] never happened", path, lines, ranges)))
		return
	}
	r.printf("%s\n", r.green(fmt.Sprintf("%s: stripped %d line(s) [%s], %s lighter",
		path, lines, ranges, units.HumanSize(float64(removed)))))
}

// FileWouldStrip reports a dry run match
func (r *Reporter) FileWouldStrip(path string, lines int, ranges string) {
	r.printf("%s: would strip %d line(s) [%s] and re-stage\n", r.cyan(path), lines, ranges)
}

// FileClean reports a file no pattern touched. Verbose only.
func (r *Reporter) FileClean(path string) {
	if !r.verbose {
		return
	}
	r.printf("%s: nothing to strip\n", path)
}

// Restaged reports how many stripped files went back on the index
func (r *Reporter) Restaged(n int) {
	if n == 0 {
		return
	}
	r.printf("Re-staged %d file(s)\n", n)
}

// PreCommitDone closes a strip run
func (r *Reporter) PreCommitDone(files, lines int) {
	if files == 0 {
		r.printf("No staged file matches the configured patterns.\n")
		return
	}
	if r.funny {
		r.printf("%s\n", r.green("Mischief managed."))
		return
	}
	r.printf("%s\n", r.green(fmt.Sprintf("Pre-commit processing complete: %d line(s) stripped from %d file(s).", lines, files)))
}

// PostCommitStart announces a restore run
func (r *Reporter) PostCommitStart() {
	if r.funny {
		r.printf("%s\n", r.magenta("It's alive! Bringing lines back from the dead..."))
		return
	}
	r.printf("%s\n", r.yellow("Restoring files after commit..."))
}

// FileRestored reports one file put back to its original bytes
func (r *Reporter) FileRestored(path string, size int64) {
	r.printf("%s\n", r.green(fmt.Sprintf("%s: restored (%s)", path, units.HumanSize(float64(size)))))
}

// FileWouldRestore reports a dry run restore
func (r *Reporter) FileWouldRestore(path string, size int64) {
	r.printf("%s: would restore %s\n", r.cyan(path), units.HumanSize(float64(size)))
}

// RestoreFailed reports a failed restore and where the retained original lives
func (r *Reporter) RestoreFailed(path string, key string, err error) {
	r.printf("%s\n", r.red(fmt.Sprintf("%s: restore FAILED: %v", path, err)))
	r.printf("%s\n", r.red(fmt.Sprintf("  the original content is retained under %s", key)))
}

// PostCommitDone closes a restore run
func (r *Reporter) PostCommitDone(restored int) {
	if restored == 0 {
		r.printf("Nothing to restore.\n")
		return
	}
	if r.funny {
		r.printf("%s\n", r.green("All restored. Like nothing happened."))
		return
	}
	r.printf("%s\n", r.green(fmt.Sprintf("Post-commit processing complete: %d file(s) restored.", restored)))
}

// Recovered reports stale backups from an interrupted earlier run that
// were put back before doing anything else
func (r *Reporter) Recovered(n int) {
	if n == 0 {
		return
	}
	r.printf("%s\n", r.yellow(fmt.Sprintf("Recovered %d file(s) from an interrupted run.", n)))
}

// Warning relays a non fatal condition the user should read
func (r *Reporter) Warning(format string, args ...interface{}) {
	r.printf("%s\n", r.yellow("warning: "+fmt.Sprintf(format, args...)))
}

// VerifyViolation reports staged content still matching a pattern
func (r *Reporter) VerifyViolation(path string, count int, ranges string, pattern string) {
	r.printf("%s\n", r.red(fmt.Sprintf("%s: %d staged line(s) [%s] match %s", path, count, ranges, pattern)))
}

// VerifyPassed reports a clean staging area
func (r *Reporter) VerifyPassed() {
	r.printf("%s\n", r.green("Staging area verification passed."))
}

// Issues lists validation findings
func (r *Reporter) Issues(issues []string) {
	if len(issues) == 0 {
		r.printf("%s\n", r.green("Configuration is clean."))
		return
	}
	for _, found := range issues {
		r.printf("%s\n", r.yellow("finding: "+found))
	}
	r.printf("%d finding(s).\n", len(issues))
}
