package core

import (
	"context"
	"testing"

	"github.com/oneconcern/git-veil/pkg/core/status"
	"github.com/oneconcern/git-veil/pkg/errors"
	"github.com/oneconcern/git-veil/pkg/model"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverAfterInterruptedCommit(t *testing.T) {
	doc := docWith(model.NewIgnorePattern(model.KindLineRegex, "TOKEN", model.PatternFile("ci.yaml")))
	rig := setupEngine(t, doc)
	ctx := context.Background()

	original := []byte("image: builder\nTOKEN: t-123\n")
	require.NoError(t, rig.git.add("ci.yaml", original))
	_, err := rig.engine.PreCommit(ctx, false)
	require.NoError(t, err)
	require.Equal(t, model.StateCommitting, rig.state(t))

	// the post-commit hook never ran; a fresh process finds the leftovers
	fresh := rig.reopen(t)
	restored, err := fresh.RecoverStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, restored)

	assert.Equal(t, original, rig.working(t, "ci.yaml"))
	assert.Equal(t, model.StateIdle, rig.state(t))
	assert.Zero(t, rig.pendingCount(t))
}

func TestRecoverStaleStateWithoutBackups(t *testing.T) {
	doc := docWith(model.NewIgnorePattern(model.KindLineRegex, "TOKEN"))
	rig := setupEngine(t, doc)
	ctx := context.Background()

	// a leftover state with no pending records settles quietly
	_, err := rig.engine.Machine().Transition(ctx, model.StateStripping, "stale")
	require.NoError(t, err)

	restored, err := rig.engine.RecoverStale(ctx)
	require.NoError(t, err)
	assert.Zero(t, restored)
	assert.Equal(t, model.StateIdle, rig.state(t))
}

func TestPostCommitDivergenceGuard(t *testing.T) {
	doc := docWith(model.NewIgnorePattern(model.KindLineRegex, "SECRET", model.PatternFile("app.env")))
	rig := setupEngine(t, doc)
	ctx := context.Background()

	original := []byte("SECRET=s3cr3t\nplain\n")
	require.NoError(t, rig.git.add("app.env", original))
	_, err := rig.engine.PreCommit(ctx, false)
	require.NoError(t, err)

	// the user edited the stripped file before post-commit ran
	edited := []byte("plain\nextra note\n")
	require.NoError(t, afero.WriteFile(rig.fs, "/repo/app.env", edited, 0644))

	outcome, err := rig.engine.PostCommit(ctx, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrRestore))
	assert.Equal(t, []string{"app.env"}, outcome.Failed)

	// the edit and the backup both survive, the machine stays off idle
	assert.Equal(t, edited, rig.working(t, "app.env"))
	assert.Equal(t, 1, rig.pendingCount(t))
	assert.Equal(t, model.StateRestoring, rig.state(t))
	assert.Contains(t, rig.out.String(), "FAILED")

	// a forced restore resolves the conflict in favor of the backup
	forced, err := rig.engine.Restore(ctx, []string{"app.env"}, true)
	require.NoError(t, err)
	assert.Equal(t, 1, forced.Restored)
	assert.Equal(t, original, rig.working(t, "app.env"))
	assert.Equal(t, model.StateIdle, rig.state(t))
	assert.Zero(t, rig.pendingCount(t))
}

func TestPostCommitGuardsDeletedFile(t *testing.T) {
	doc := docWith(model.NewIgnorePattern(model.KindLineRegex, "SECRET", model.PatternFile("app.env")))
	rig := setupEngine(t, doc)
	ctx := context.Background()

	original := []byte("SECRET=x\nplain\n")
	require.NoError(t, rig.git.add("app.env", original))
	_, err := rig.engine.PreCommit(ctx, false)
	require.NoError(t, err)

	require.NoError(t, rig.fs.Remove("/repo/app.env"))

	_, err = rig.engine.PostCommit(ctx, false)
	require.Error(t, err)
	assert.Equal(t, 1, rig.pendingCount(t))

	// forcing recreates the file from the backup
	forced, err := rig.engine.Restore(ctx, []string{"app.env"}, true)
	require.NoError(t, err)
	assert.Equal(t, 1, forced.Restored)
	assert.Equal(t, original, rig.working(t, "app.env"))
}

func TestPostCommitAfterManualRestore(t *testing.T) {
	doc := docWith(model.NewIgnorePattern(model.KindLineRegex, "SECRET", model.PatternFile("app.env")))
	rig := setupEngine(t, doc)
	ctx := context.Background()

	original := []byte("SECRET=x\nplain\n")
	require.NoError(t, rig.git.add("app.env", original))
	_, err := rig.engine.PreCommit(ctx, false)
	require.NoError(t, err)

	// the user already put the original back, e.g. via checkout
	require.NoError(t, afero.WriteFile(rig.fs, "/repo/app.env", original, 0644))

	outcome, err := rig.engine.PostCommit(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Restored)
	assert.Equal(t, original, rig.working(t, "app.env"))
	assert.Equal(t, model.StateIdle, rig.state(t))
	assert.Zero(t, rig.pendingCount(t))
}

func TestPostCommitTwice(t *testing.T) {
	doc := docWith(model.NewIgnorePattern(model.KindLineRegex, "SECRET", model.PatternFile("app.env")))
	rig := setupEngine(t, doc)
	ctx := context.Background()

	original := []byte("SECRET=x\nplain\n")
	require.NoError(t, rig.git.add("app.env", original))
	_, err := rig.engine.PreCommit(ctx, false)
	require.NoError(t, err)

	outcome, err := rig.engine.PostCommit(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Restored)

	// the post-merge hook may fire right after post-commit
	again, err := rig.engine.PostCommit(ctx, false)
	require.NoError(t, err)
	assert.Zero(t, again.Restored)
	assert.Empty(t, again.Failed)
	assert.Equal(t, original, rig.working(t, "app.env"))
	assert.Equal(t, model.StateIdle, rig.state(t))
	assert.Contains(t, rig.out.String(), "Nothing to restore.")
}

func TestPostCommitDryRun(t *testing.T) {
	doc := docWith(model.NewIgnorePattern(model.KindLineRegex, "SECRET", model.PatternFile("app.env")))
	rig := setupEngine(t, doc)
	ctx := context.Background()

	require.NoError(t, rig.git.add("app.env", []byte("SECRET=x\nplain\n")))
	_, err := rig.engine.PreCommit(ctx, false)
	require.NoError(t, err)

	outcome, err := rig.engine.PostCommit(ctx, true)
	require.NoError(t, err)
	assert.Zero(t, outcome.Restored)

	assert.Equal(t, []byte("plain\n"), rig.working(t, "app.env"))
	assert.Equal(t, 1, rig.pendingCount(t))
	assert.Equal(t, model.StateCommitting, rig.state(t))
	assert.Contains(t, rig.out.String(), "would restore")
}

func TestPostCommitArchivesWithoutCleanup(t *testing.T) {
	doc := docWith(model.NewIgnorePattern(model.KindLineRegex, "SECRET", model.PatternFile("app.env")))
	doc.Settings.AutoCleanup = false
	rig := setupEngine(t, doc)
	ctx := context.Background()

	require.NoError(t, rig.git.add("app.env", []byte("SECRET=x\nplain\n")))
	outcome, err := rig.engine.PreCommit(ctx, false)
	require.NoError(t, err)

	_, err = rig.engine.PostCommit(ctx, false)
	require.NoError(t, err)
	assert.Zero(t, rig.pendingCount(t))

	// without auto cleanup the settled record stays on, under its scope
	has, err := rig.engine.store.Has(ctx, model.ArchiveKey(outcome.Scope, "app.env"))
	require.NoError(t, err)
	assert.True(t, has)
}

func TestRestoreSinglePath(t *testing.T) {
	doc := docWith(model.NewIgnorePattern(model.KindLineRegex, "KEY"))
	rig := setupEngine(t, doc)
	ctx := context.Background()

	origA := []byte("KEY=a\nplain-a\n")
	origB := []byte("KEY=b\nplain-b\n")
	require.NoError(t, rig.git.add("a.env", origA))
	require.NoError(t, rig.git.add("b.env", origB))
	_, err := rig.engine.PreCommit(ctx, false)
	require.NoError(t, err)

	outcome, err := rig.engine.Restore(ctx, []string{"a.env"}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Restored)
	assert.Equal(t, origA, rig.working(t, "a.env"))

	// the other backup is untouched and keeps the machine off idle
	assert.Equal(t, 1, rig.pendingCount(t))
	assert.Equal(t, model.StateRestoring, rig.state(t))

	_, err = rig.engine.PostCommit(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, origB, rig.working(t, "b.env"))
	assert.Equal(t, model.StateIdle, rig.state(t))
}

func TestRestoreUnknownPath(t *testing.T) {
	doc := docWith(model.NewIgnorePattern(model.KindLineRegex, "KEY", model.PatternFile("a.txt")))
	rig := setupEngine(t, doc)
	ctx := context.Background()

	outcome, err := rig.engine.Restore(ctx, []string{"nope.txt"}, false)
	require.NoError(t, err)
	assert.Zero(t, outcome.Restored)
	assert.Contains(t, rig.out.String(), "no pending backup for nope.txt")
	assert.Equal(t, model.StateIdle, rig.state(t))
}
