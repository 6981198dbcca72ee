package core

import (
	"context"

	"github.com/oneconcern/git-veil/pkg/core/status"
)

// PostCommit restores every pending backup after the commit went
// through. Files failing the divergence guard keep their backup and the
// machine stays off idle, so the failure remains visible until resolved
// with a manual restore.
func (e *Engine) PostCommit(ctx context.Context, dryRun bool) (*RestoreOutcome, error) {
	if dryRun {
		e.rep.DryRun()
	}
	e.rep.PostCommitStart()

	if dryRun {
		pending, err := e.manifest.Pending(ctx)
		if err != nil {
			return nil, status.ErrRestore.Wrap(err)
		}
		for i := range pending {
			e.rep.FileWouldRestore(pending[i].Path, int64(len(pending[i].Original)))
		}
		return &RestoreOutcome{}, nil
	}

	outcome, err := e.restorePending(ctx, nil, false)
	if err != nil {
		return outcome, err
	}
	e.rep.PostCommitDone(outcome.Restored)
	return outcome, nil
}
