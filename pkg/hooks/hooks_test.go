package hooks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHooksDir = "/repo/.git/hooks"

func TestInstallFresh(t *testing.T) {
	fs := afero.NewMemMapFs()

	results, err := Install(fs, testHooksDir)
	require.NoError(t, err)
	require.Len(t, results, 4)
	for _, res := range results {
		assert.Equal(t, ActionInstalled, res.Action, res.Hook)
	}

	preCommit, err := afero.ReadFile(fs, filepath.Join(testHooksDir, "pre-commit"))
	require.NoError(t, err)
	assert.Contains(t, string(preCommit), "#!/bin/sh")
	assert.Contains(t, string(preCommit), "exec git-veil pre-commit")
	assert.True(t, IsManaged(preCommit))

	postMerge, err := afero.ReadFile(fs, filepath.Join(testHooksDir, "post-merge"))
	require.NoError(t, err)
	assert.Contains(t, string(postMerge), "exec git-veil post-commit",
		"a merge bypasses pre-commit, so post-merge restores like post-commit")

	prePush, err := afero.ReadFile(fs, filepath.Join(testHooksDir, "pre-push"))
	require.NoError(t, err)
	assert.Contains(t, string(prePush), "exec git-veil verify")

	info, err := fs.Stat(filepath.Join(testHooksDir, "pre-commit"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestInstallIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Install(fs, testHooksDir)
	require.NoError(t, err)

	results, err := Install(fs, testHooksDir)
	require.NoError(t, err)
	for _, res := range results {
		assert.Equal(t, ActionUnchanged, res.Action, res.Hook)
	}
}

func TestInstallBacksUpForeignHook(t *testing.T) {
	fs := afero.NewMemMapFs()
	foreign := []byte("#!/bin/sh\nmake lint\n")
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testHooksDir, "pre-commit"), foreign, 0755))

	results, err := Install(fs, testHooksDir)
	require.NoError(t, err)
	assert.Equal(t, ActionReplaced, results[0].Action)

	saved, err := afero.ReadFile(fs, filepath.Join(testHooksDir, "pre-commit.backup"))
	require.NoError(t, err)
	assert.Equal(t, foreign, saved)

	current, err := afero.ReadFile(fs, filepath.Join(testHooksDir, "pre-commit"))
	require.NoError(t, err)
	assert.True(t, IsManaged(current))
}

func TestInstallCustomExecutable(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Install(fs, testHooksDir, WithExecutable("my-veil"))
	require.NoError(t, err)

	preCommit, err := afero.ReadFile(fs, filepath.Join(testHooksDir, "pre-commit"))
	require.NoError(t, err)
	assert.Contains(t, string(preCommit), "exec my-veil pre-commit")
	assert.NotContains(t, string(preCommit), "exec git-veil")
}

func TestUninstall(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := Install(fs, testHooksDir)
	require.NoError(t, err)

	results, err := Uninstall(fs, testHooksDir)
	require.NoError(t, err)
	for _, res := range results {
		assert.Equal(t, ActionRemoved, res.Action, res.Hook)
	}

	ok, err := afero.Exists(fs, filepath.Join(testHooksDir, "pre-commit"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUninstallRestoresBackup(t *testing.T) {
	fs := afero.NewMemMapFs()
	foreign := []byte("#!/bin/sh\nmake lint\n")
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testHooksDir, "pre-commit"), foreign, 0755))

	_, err := Install(fs, testHooksDir)
	require.NoError(t, err)

	results, err := Uninstall(fs, testHooksDir)
	require.NoError(t, err)
	assert.Equal(t, ActionRestored, results[0].Action)

	current, err := afero.ReadFile(fs, filepath.Join(testHooksDir, "pre-commit"))
	require.NoError(t, err)
	assert.Equal(t, foreign, current)
}

func TestUninstallLeavesForeignHook(t *testing.T) {
	fs := afero.NewMemMapFs()
	foreign := []byte("#!/bin/sh\nmake lint\n")
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testHooksDir, "post-commit"), foreign, 0755))

	results, err := Uninstall(fs, testHooksDir)
	require.NoError(t, err)
	assert.Equal(t, ActionAbsent, results[0].Action)
	assert.Equal(t, ActionForeign, results[1].Action)

	current, err := afero.ReadFile(fs, filepath.Join(testHooksDir, "post-commit"))
	require.NoError(t, err)
	assert.Equal(t, foreign, current)
}
