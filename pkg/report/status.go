package report

import (
	"fmt"
	"time"

	units "github.com/docker/go-units"
)

// FileStatus is the per file line of a status report
type FileStatus struct {
	File     string
	Exists   bool
	Patterns int
	Ignored  int // lines currently matching on the working copy
	Total    int // total lines in the working copy
	Rules    []PatternLine
}

// PatternLine is one configured pattern, shown under its file in verbose mode
type PatternLine struct {
	ID   string
	Kind string
	Spec string
}

// PendingBackup describes a backup awaiting restore
type PendingBackup struct {
	Path string
	Size int64
	Age  time.Duration
}

// StatusData is everything the status command displays
type StatusData struct {
	ConfigPath    string
	Version       string
	State         string
	Strategy      string
	AutoCleanup   bool
	FunnyMode     bool
	TotalPatterns int
	PerFile       []FileStatus
	Pending       []PendingBackup
}

// Status renders the repository wide state of the tool.
// Files with nothing to strip only show in verbose mode.
func (r *Reporter) Status(d StatusData) {
	r.printf("configuration: %s (version %s)\n", d.ConfigPath, d.Version)

	state := r.green(d.State)
	if d.State != "idle" {
		state = r.yellow(d.State)
	}
	r.printf("state: %s\n", state)

	cleanup := "off"
	if d.AutoCleanup {
		cleanup = "on"
	}
	r.printf("backup strategy: %s, auto cleanup %s\n", d.Strategy, cleanup)
	if d.FunnyMode {
		r.printf("funny mode: on\n")
	}

	r.printf("patterns: %d\n", d.TotalPatterns)
	for _, fs := range d.PerFile {
		switch {
		case !fs.Exists:
			r.printf("  %s: %d pattern(s), %s\n", fs.File, fs.Patterns, r.yellow("missing from the working tree"))
		case fs.Ignored > 0:
			r.printf("  %s: %d pattern(s), %d/%d line(s) ignored (%s)\n",
				fs.File, fs.Patterns, fs.Ignored, fs.Total, percentage(fs.Ignored, fs.Total))
		case r.verbose:
			r.printf("  %s: %d pattern(s), nothing to strip\n", fs.File, fs.Patterns)
		}
		if r.verbose {
			for _, rl := range fs.Rules {
				r.printf("    [%s] %q (%s)\n", rl.Kind, rl.Spec, rl.ID)
			}
		}
	}

	if len(d.Pending) == 0 {
		r.printf("pending backups: none\n")
		return
	}
	r.printf("%s\n", r.yellow(fmt.Sprintf("pending backups: %d", len(d.Pending))))
	for _, p := range d.Pending {
		r.printf("  %s (%s, %s ago)\n", p.Path, units.HumanSize(float64(p.Size)), units.HumanDuration(p.Age))
	}
}

func percentage(part, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(total)*100)
}
