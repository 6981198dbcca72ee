package core

import (
	"context"

	"github.com/oneconcern/git-veil/pkg/core/status"
	"go.uber.org/zap"
)

// RecoverStale settles the leftovers of interrupted runs before any new
// work. Pre-commit calls this first thing: positional patterns address
// pristine content, and stripping an already stripped working tree
// would remove the wrong lines.
//
// A non idle machine without pending backups settles quietly. Pending
// backups are restored through the usual guards; a failure here is
// fatal for the caller, since proceeding would pile a new run onto an
// unresolved one.
func (e *Engine) RecoverStale(ctx context.Context) (int, error) {
	pending, err := e.manifest.Pending(ctx)
	if err != nil {
		return 0, status.ErrRecovery.Wrap(err)
	}
	cur, err := e.machine.Current(ctx)
	if err != nil {
		return 0, err
	}

	if len(pending) == 0 {
		if cur.State.NeedsRecovery() {
			if err = e.machine.Settle(ctx); err != nil {
				return 0, err
			}
		}
		return 0, nil
	}

	e.l.Warn("restoring leftovers of an interrupted run",
		zap.Int("pending", len(pending)),
		zap.String("state", cur.State.String()),
	)
	outcome, err := e.restorePending(ctx, nil, false)
	if err != nil {
		restored := 0
		if outcome != nil {
			restored = outcome.Restored
		}
		return restored, status.ErrRecovery.Wrap(err)
	}
	return outcome.Restored, nil
}
