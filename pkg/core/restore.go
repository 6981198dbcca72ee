package core

import (
	"context"
	"fmt"
	"os"

	backupstatus "github.com/oneconcern/git-veil/pkg/backup/status"
	"github.com/oneconcern/git-veil/pkg/core/status"
	"github.com/oneconcern/git-veil/pkg/model"
	"go.uber.org/zap"
)

// RestoreOutcome summarizes a restore run
type RestoreOutcome struct {
	Restored int
	Failed   []string
}

// Restore puts original bytes back outside the hook cycle, the manual
// recovery path. With no paths every pending backup is restored. force
// overrides the divergence guard and restores over whatever content the
// working tree holds now.
func (e *Engine) Restore(ctx context.Context, paths []string, force bool) (*RestoreOutcome, error) {
	if len(paths) > 0 {
		pending, err := e.manifest.Pending(ctx)
		if err != nil {
			return nil, status.ErrRestore.Wrap(err)
		}
		known := make(map[string]bool, len(pending))
		for i := range pending {
			known[pending[i].Path] = true
		}
		for _, p := range paths {
			if !known[p] {
				e.rep.Warning("no pending backup for %s", p)
			}
		}
	}
	return e.restorePending(ctx, paths, force)
}

// restorePending restores pending records, oldest first. A nil or empty
// only slice selects every record; force skips the divergence guard.
// The machine settles back to idle only once no pending record remains,
// so a partial restore stays visible to the next run.
func (e *Engine) restorePending(ctx context.Context, only []string, force bool) (*RestoreOutcome, error) {
	pending, err := e.manifest.Pending(ctx)
	if err != nil {
		return nil, status.ErrRestore.Wrap(err)
	}

	outcome := &RestoreOutcome{}
	if len(pending) == 0 {
		if err = e.machine.Settle(ctx); err != nil {
			return outcome, err
		}
		return outcome, nil
	}

	selected := make(map[string]bool, len(only))
	for _, p := range only {
		selected[p] = true
	}
	work := make([]*model.BackupRecord, 0, len(pending))
	for i := range pending {
		if len(only) > 0 && !selected[pending[i].Path] {
			continue
		}
		work = append(work, &pending[i])
	}
	if len(work) == 0 {
		return outcome, nil
	}

	if _, err = e.machine.BeginRestore(ctx); err != nil {
		return outcome, err
	}

	for _, rec := range work {
		if rerr := e.restoreOne(rec, force); rerr != nil {
			outcome.Failed = append(outcome.Failed, rec.Path)
			e.rep.RestoreFailed(rec.Path, model.PendingKey(rec.Path), rerr)
			e.l.Error("restore failed", zap.String("path", rec.Path), zap.Error(rerr))
			continue
		}

		if ferr := e.manifest.Finalize(ctx, rec, !e.doc.Settings.AutoCleanup); ferr != nil {
			// the file is back, the record is not settled: the next run
			// retries and finds the content already restored
			outcome.Failed = append(outcome.Failed, rec.Path)
			e.l.Error("cannot settle backup record", zap.String("path", rec.Path), zap.Error(ferr))
			continue
		}

		outcome.Restored++
		e.rep.FileRestored(rec.Path, int64(len(rec.Original)))
	}

	left, err := e.manifest.Pending(ctx)
	if err == nil && len(left) == 0 {
		if err = e.machine.Settle(ctx); err != nil {
			return outcome, err
		}
	}

	if len(outcome.Failed) > 0 {
		return outcome, status.ErrRestore.Wrap(fmt.Errorf("%d file(s) kept their backup", len(outcome.Failed)))
	}
	return outcome, nil
}

// restoreOne writes a record's original bytes back to the working tree.
//
// Restores are idempotent: a working file already holding the original
// bytes succeeds without a write. Unless forced, any other content not
// matching the stripped snapshot trips the divergence guard, because
// overwriting it would destroy edits made after the strip.
func (e *Engine) restoreOne(rec *model.BackupRecord, force bool) error {
	current, err := e.readWorking(rec.Path)
	if err == nil && model.ContentCRC(current) == rec.OriginalCRC {
		return nil
	}
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if !force {
		if err != nil {
			return backupstatus.ErrContentDiverged.Wrap(fmt.Errorf("%s is gone from the working tree", rec.Path))
		}
		if model.ContentCRC(current) != rec.StrippedCRC {
			return backupstatus.ErrContentDiverged.Wrap(fmt.Errorf("%s was edited after stripping", rec.Path))
		}
	}

	return e.writeWorking(rec.Path, rec.Original)
}
