package core

import (
	"context"
	"fmt"

	"github.com/oneconcern/git-veil/pkg/content"
	"github.com/oneconcern/git-veil/pkg/core/status"
	"github.com/oneconcern/git-veil/pkg/model"
	"github.com/oneconcern/git-veil/pkg/pattern"
	"go.uber.org/zap"
)

// stripTask carries one file between the two phases of a strip run
type stripTask struct {
	path     string
	original []byte
	stripped []byte
	ignored  []int
	ranges   string
}

// StripOutcome summarizes a pre-commit run
type StripOutcome struct {
	Scope   string
	Files   int
	Lines   int
	Skipped []string
	DryRun  bool
}

// PreCommit strips ignored lines from staged files ahead of a commit.
//
// The run has two phases. A read-only phase matches every candidate's
// staged content, so a malformed pattern or a strict mode skip fails
// the commit before anything moved. The mutating phase then, per file,
// persists a backup, writes the filtered bytes to the working tree and
// re-stages. A file is never modified before its backup returned, and
// the machine only leaves idle when at least one file is about to
// change.
func (e *Engine) PreCommit(ctx context.Context, dryRun bool) (*StripOutcome, error) {
	if dryRun {
		// a dry run must not touch anything, stale recovery included
		e.rep.DryRun()
		pending, perr := e.manifest.Pending(ctx)
		if perr != nil {
			return nil, status.ErrStrip.Wrap(perr)
		}
		if len(pending) > 0 {
			e.rep.Warning("%d pending backup(s) from an interrupted run left untouched", len(pending))
		}
	} else {
		recovered, err := e.RecoverStale(ctx)
		if err != nil {
			return nil, err
		}
		e.rep.Recovered(recovered)
	}
	e.rep.PreCommitStart()

	staged, err := e.git.StagedPaths()
	if err != nil {
		return nil, status.ErrStrip.Wrap(err)
	}

	outcome := &StripOutcome{
		Scope:  model.NewScopeID(),
		DryRun: dryRun,
	}

	var tasks []stripTask
	for _, path := range staged {
		patterns := e.doc.PatternsFor(path)
		if len(patterns) == 0 {
			continue
		}
		e.rep.FileMatched(path, len(patterns))

		original, rerr := e.git.StagedContent(path)
		if rerr != nil {
			e.rep.Warning("skipping %s: %v", path, rerr)
			e.l.Warn("cannot read staged content", zap.String("path", path), zap.Error(rerr))
			outcome.Skipped = append(outcome.Skipped, path)
			continue
		}

		lines := content.Split(original)
		ev, eerr := pattern.Evaluate(content.Texts(lines), patterns)
		if eerr != nil {
			// one malformed pattern fails the commit before anything moved
			return nil, status.ErrStrip.Wrap(eerr)
		}
		for _, w := range ev.Warnings {
			e.rep.Warning("%s: %s", path, w)
		}
		if !ev.HasMatches() {
			e.rep.FileClean(path)
			continue
		}

		tasks = append(tasks, stripTask{
			path:     path,
			original: original,
			stripped: content.Join(content.StripLines(lines, ev.Ignored)),
			ignored:  ev.Ignored,
			ranges:   pattern.FormatRanges(ev.IgnoredRanges()),
		})
	}

	if e.strict && len(outcome.Skipped) > 0 {
		return outcome, status.ErrStrict.Wrap(fmt.Errorf("%d staged file(s) skipped", len(outcome.Skipped)))
	}

	if len(tasks) == 0 {
		e.rep.PreCommitDone(0, 0)
		return outcome, nil
	}

	if dryRun {
		for _, t := range tasks {
			e.rep.FileWouldStrip(t.path, len(t.ignored), t.ranges)
			e.rep.Diff(t.path, string(t.original), string(t.stripped))
			outcome.Files++
			outcome.Lines += len(t.ignored)
		}
		e.rep.PreCommitDone(outcome.Files, outcome.Lines)
		return outcome, nil
	}

	if _, err = e.machine.Transition(ctx, model.StateStripping, outcome.Scope); err != nil {
		return outcome, err
	}
	for _, t := range tasks {
		if err = e.stripOne(ctx, t, outcome); err != nil {
			return outcome, e.abortStrip(ctx, err)
		}
	}
	if _, err = e.machine.Transition(ctx, model.StateStripped, outcome.Scope); err != nil {
		return outcome, err
	}

	e.rep.Restaged(outcome.Files)
	e.rep.PreCommitDone(outcome.Files, outcome.Lines)

	// hand control back to git for the commit itself
	if _, err = e.machine.Transition(ctx, model.StateCommitting, outcome.Scope); err != nil {
		return outcome, err
	}
	return outcome, nil
}

func (e *Engine) stripOne(ctx context.Context, t stripTask, outcome *StripOutcome) error {
	record := model.NewBackupRecord(t.path, t.original,
		model.RecordScope(outcome.Scope),
		model.RecordStrategy(e.doc.Settings.BackupStrategy),
		model.RecordStrippedCRC(model.ContentCRC(t.stripped)),
		model.RecordIgnoredLines(t.ignored),
	)
	if err := e.manifest.Put(ctx, record); err != nil {
		return err
	}
	if err := e.writeWorking(t.path, t.stripped); err != nil {
		return err
	}
	if err := e.git.Stage(t.path); err != nil {
		return err
	}

	e.rep.FileStripped(t.path, len(t.ignored), t.ranges, int64(len(t.original)-len(t.stripped)))
	e.l.Debug("stripped",
		zap.String("path", t.path),
		zap.Int("lines", len(t.ignored)),
		zap.String("scope", outcome.Scope),
	)
	outcome.Files++
	outcome.Lines += len(t.ignored)
	return nil
}

// abortStrip rolls back whatever the mutating phase already touched,
// then surfaces the cause. The commit must not proceed.
func (e *Engine) abortStrip(ctx context.Context, cause error) error {
	e.l.Warn("aborting strip run", zap.Error(cause))

	if _, err := e.restorePending(ctx, nil, false); err != nil {
		e.rep.Warning("roll back after abort failed: %v", err)
	}
	return status.ErrStrip.Wrap(cause)
}
