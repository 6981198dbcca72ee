package core

import (
	"context"
	"testing"

	"github.com/oneconcern/git-veil/pkg/core/status"
	"github.com/oneconcern/git-veil/pkg/errors"
	"github.com/oneconcern/git-veil/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyFindsStagedSecrets(t *testing.T) {
	doc := docWith(model.NewIgnorePattern(model.KindLineRegex, "PASSWORD", model.PatternFile("db.ini")))
	rig := setupEngine(t, doc)
	ctx := context.Background()

	require.NoError(t, rig.git.add("db.ini", []byte("host=db\nPASSWORD=root\n")))

	violations, err := rig.engine.Verify(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrVerify))
	require.Len(t, violations, 1)
	assert.Equal(t, "db.ini", violations[0].Path)
	assert.Equal(t, 1, violations[0].Count)
	assert.Equal(t, "2", violations[0].Ranges)
	assert.Contains(t, rig.out.String(), "db.ini")
}

func TestVerifyPassesAfterStrip(t *testing.T) {
	doc := docWith(model.NewIgnorePattern(model.KindLineRegex, "PASSWORD", model.PatternFile("db.ini")))
	rig := setupEngine(t, doc)
	ctx := context.Background()

	require.NoError(t, rig.git.add("db.ini", []byte("host=db\nPASSWORD=root\n")))
	_, err := rig.engine.PreCommit(ctx, false)
	require.NoError(t, err)

	violations, err := rig.engine.Verify(ctx)
	require.NoError(t, err)
	assert.Empty(t, violations)
	assert.Contains(t, rig.out.String(), "verification passed")
}

func TestVerifyIgnoresUnconfiguredFiles(t *testing.T) {
	doc := docWith(model.NewIgnorePattern(model.KindLineRegex, "PASSWORD", model.PatternFile("db.ini")))
	rig := setupEngine(t, doc)
	ctx := context.Background()

	require.NoError(t, rig.git.add("notes.md", []byte("the PASSWORD word is fine here\n")))

	violations, err := rig.engine.Verify(ctx)
	require.NoError(t, err)
	assert.Empty(t, violations)
}
