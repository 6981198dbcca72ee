package core

import (
	"context"
	"testing"

	"github.com/oneconcern/git-veil/pkg/model"
	"github.com/oneconcern/git-veil/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurvey(t *testing.T) {
	doc := docWith(
		model.NewIgnorePattern(model.KindLineRegex, "SECRET", model.PatternFile("app.env")),
		model.NewIgnorePattern(model.KindLineRange, "1-2", model.PatternFile("gone.txt")),
		model.NewIgnorePattern(model.KindLineRegex, "token"),
	)
	rig := setupEngine(t, doc)
	ctx := context.Background()

	require.NoError(t, rig.git.add("app.env", []byte("SECRET=x\nPLAIN=1\n")))
	require.NoError(t, rig.git.add("readme.md", []byte("docs\nwith token inside\nmore\n")))

	data, err := rig.engine.Survey(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ConfigVersion, data.Version)
	assert.Equal(t, "idle", data.State)
	assert.Equal(t, "tempfile", data.Strategy)
	assert.True(t, data.AutoCleanup)
	assert.False(t, data.FunnyMode)
	assert.Equal(t, 3, data.TotalPatterns)

	// configured files plus tracked ones, since an "all" pattern exists
	require.Len(t, data.PerFile, 3)
	byFile := map[string]report.FileStatus{}
	for _, f := range data.PerFile {
		byFile[f.File] = f
	}

	app := byFile["app.env"]
	assert.True(t, app.Exists)
	assert.Equal(t, 2, app.Patterns)
	assert.Equal(t, 2, app.Total)
	assert.Equal(t, 1, app.Ignored)

	// file-specific rules come ahead of the "all" one
	require.Len(t, app.Rules, 2)
	assert.Equal(t, "line-regex", app.Rules[0].Kind)
	assert.Equal(t, "SECRET", app.Rules[0].Spec)
	assert.NotEmpty(t, app.Rules[0].ID)
	assert.Equal(t, "token", app.Rules[1].Spec)

	gone := byFile["gone.txt"]
	assert.False(t, gone.Exists)
	assert.Equal(t, 2, gone.Patterns)
	assert.Zero(t, gone.Total)

	readme := byFile["readme.md"]
	assert.True(t, readme.Exists)
	assert.Equal(t, 1, readme.Patterns)
	assert.Equal(t, 3, readme.Total)
	assert.Equal(t, 1, readme.Ignored)

	assert.Empty(t, data.Pending)
}

func TestSurveyShowsPending(t *testing.T) {
	doc := docWith(model.NewIgnorePattern(model.KindLineRegex, "SECRET", model.PatternFile("app.env")))
	rig := setupEngine(t, doc)
	ctx := context.Background()

	original := []byte("SECRET=x\nplain\n")
	require.NoError(t, rig.git.add("app.env", original))
	_, err := rig.engine.PreCommit(ctx, false)
	require.NoError(t, err)

	data, err := rig.engine.Survey(ctx)
	require.NoError(t, err)
	assert.Equal(t, "committing", data.State)

	require.Len(t, data.Pending, 1)
	assert.Equal(t, "app.env", data.Pending[0].Path)
	assert.Equal(t, int64(len(original)), data.Pending[0].Size)
	assert.GreaterOrEqual(t, data.Pending[0].Age.Nanoseconds(), int64(0))

	// the working tree copy is currently stripped, nothing left to ignore
	require.Len(t, data.PerFile, 1)
	assert.Equal(t, 1, data.PerFile[0].Total)
	assert.Zero(t, data.PerFile[0].Ignored)
}
