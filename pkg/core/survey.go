package core

import (
	"context"
	"path/filepath"
	"sort"
	"time"

	"github.com/oneconcern/git-veil/pkg/content"
	"github.com/oneconcern/git-veil/pkg/model"
	"github.com/oneconcern/git-veil/pkg/pattern"
	"github.com/oneconcern/git-veil/pkg/report"
)

// Survey gathers everything the status command displays.
//
// Files named by the configuration are always inspected. When "all"
// patterns exist, tracked and staged files join the candidate set, the
// same set a strip run would consider.
func (e *Engine) Survey(ctx context.Context) (*report.StatusData, error) {
	cur, err := e.machine.Current(ctx)
	if err != nil {
		return nil, err
	}

	d := &report.StatusData{
		ConfigPath:    filepath.Join(e.git.GitDir(), model.ConfigFileName),
		Version:       e.doc.Version,
		State:         cur.State.String(),
		Strategy:      e.doc.Settings.BackupStrategy.String(),
		AutoCleanup:   e.doc.Settings.AutoCleanup,
		FunnyMode:     e.doc.Settings.FunnyMode,
		TotalPatterns: len(e.doc.Patterns),
	}

	candidates := map[string]struct{}{}
	for _, f := range e.doc.Files() {
		candidates[f] = struct{}{}
	}
	if len(e.doc.AllPatterns()) > 0 {
		if tracked, terr := e.git.TrackedPaths(); terr == nil {
			for _, f := range tracked {
				candidates[f] = struct{}{}
			}
		}
		if staged, serr := e.git.StagedPaths(); serr == nil {
			for _, f := range staged {
				candidates[f] = struct{}{}
			}
		}
	}

	files := make([]string, 0, len(candidates))
	for f := range candidates {
		files = append(files, f)
	}
	sort.Strings(files)

	for _, f := range files {
		patterns := e.doc.PatternsFor(f)
		fst := report.FileStatus{File: f, Patterns: len(patterns)}
		for _, p := range patterns {
			fst.Rules = append(fst.Rules, report.PatternLine{
				ID:   p.ID,
				Kind: p.Kind.String(),
				Spec: p.Spec,
			})
		}

		if b, rerr := e.readWorking(f); rerr == nil {
			fst.Exists = true
			lines := content.Texts(content.Split(b))
			fst.Total = len(lines)

			ev, eerr := pattern.Evaluate(lines, patterns)
			if eerr != nil {
				return nil, eerr
			}
			fst.Ignored = len(ev.Ignored)
		}
		d.PerFile = append(d.PerFile, fst)
	}

	pending, err := e.manifest.Pending(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for i := range pending {
		d.Pending = append(d.Pending, report.PendingBackup{
			Path: pending[i].Path,
			Size: int64(len(pending[i].Original)),
			Age:  now.Sub(pending[i].Timestamp),
		})
	}
	return d, nil
}
