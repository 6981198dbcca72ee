// Package hooks installs and removes the git hook scripts driving the
// strip and restore cycle.
//
// Four hooks are managed: pre-commit strips, post-commit restores,
// post-merge restores as well (a merge commit bypasses pre-commit on the
// merged content), and pre-push verifies that no ignored content is
// about to leave the machine. Scripts carry a marker line so foreign
// hooks are never overwritten silently: they are moved aside to a
// .backup file and moved back on uninstall.
package hooks

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/oneconcern/git-veil/pkg/hooks/status"
	"github.com/spf13/afero"
)

// marker identifies scripts owned by this tool
const marker = "git-veil hook"

const scriptTemplate = `#!/bin/sh
# git-veil hook: %[2]s
# installed by %[1]s, remove with "%[1]s hooks uninstall"

if ! command -v %[1]s >/dev/null 2>&1; then
    echo "warning: %[1]s not found in PATH, skipping" >&2
    exit 0
fi

exec %[1]s %[3]s
`

// Hook binds a git hook name to the subcommand it runs
type Hook struct {
	Name    string
	Command string
}

// Managed lists the hooks this tool owns, in installation order
func Managed() []Hook {
	return []Hook{
		{Name: "pre-commit", Command: "pre-commit"},
		{Name: "post-commit", Command: "post-commit"},
		{Name: "post-merge", Command: "post-commit"},
		{Name: "pre-push", Command: "verify"},
	}
}

// Action tells what happened to one hook script
type Action string

const (
	// ActionInstalled means a fresh script was written
	ActionInstalled Action = "installed"

	// ActionUnchanged means the current script is already ours
	ActionUnchanged Action = "already installed"

	// ActionReplaced means a foreign hook was moved to a .backup file first
	ActionReplaced Action = "installed (previous hook saved)"

	// ActionRemoved means our script was deleted
	ActionRemoved Action = "removed"

	// ActionRestored means our script was deleted and the .backup moved back
	ActionRestored Action = "removed (previous hook restored)"

	// ActionAbsent means there was nothing to remove
	ActionAbsent Action = "not installed"

	// ActionForeign means the hook belongs to someone else and was left alone
	ActionForeign Action = "left alone (not a git-veil hook)"
)

// Result reports the outcome for one hook
type Result struct {
	Hook   string
	Action Action
}

// IsManaged tells whether a hook script was written by this tool
func IsManaged(content []byte) bool {
	return bytes.Contains(content, []byte(marker))
}

// Install writes the managed hook scripts into hooksDir.
// Pre-existing foreign hooks are moved to a .backup file next to them.
func Install(fs afero.Fs, hooksDir string, opts ...Option) ([]Result, error) {
	o := defaultOptions()
	for _, apply := range opts {
		apply(o)
	}

	if err := fs.MkdirAll(hooksDir, 0755); err != nil {
		return nil, status.ErrInstall.Wrap(err)
	}

	results := make([]Result, 0, len(Managed()))
	for _, h := range Managed() {
		res, err := installOne(fs, hooksDir, h, o.executable)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func installOne(fs afero.Fs, hooksDir string, h Hook, executable string) (Result, error) {
	path := filepath.Join(hooksDir, h.Name)
	script := []byte(fmt.Sprintf(scriptTemplate, executable, h.Name, h.Command))

	current, err := afero.ReadFile(fs, path)
	switch {
	case err == nil && bytes.Equal(current, script):
		return Result{Hook: h.Name, Action: ActionUnchanged}, nil

	case err == nil && !IsManaged(current):
		if rerr := fs.Rename(path, path+".backup"); rerr != nil {
			return Result{}, status.ErrInstall.Wrap(rerr)
		}
		if werr := writeScript(fs, path, script); werr != nil {
			return Result{}, werr
		}
		return Result{Hook: h.Name, Action: ActionReplaced}, nil

	default:
		// absent, or ours but outdated: (re)write in place
		if werr := writeScript(fs, path, script); werr != nil {
			return Result{}, werr
		}
		return Result{Hook: h.Name, Action: ActionInstalled}, nil
	}
}

func writeScript(fs afero.Fs, path string, script []byte) error {
	if err := afero.WriteFile(fs, path, script, 0755); err != nil {
		return status.ErrInstall.Wrap(err)
	}
	// WriteFile applies the umask on a real file system
	if err := fs.Chmod(path, 0755); err != nil {
		return status.ErrInstall.Wrap(err)
	}
	return nil
}

// Uninstall removes the managed hook scripts from hooksDir, moving any
// .backup hook saved at install time back in place. Foreign hooks are
// left untouched.
func Uninstall(fs afero.Fs, hooksDir string) ([]Result, error) {
	results := make([]Result, 0, len(Managed()))
	for _, h := range Managed() {
		res, err := uninstallOne(fs, hooksDir, h)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func uninstallOne(fs afero.Fs, hooksDir string, h Hook) (Result, error) {
	path := filepath.Join(hooksDir, h.Name)

	current, err := afero.ReadFile(fs, path)
	if err != nil {
		return Result{Hook: h.Name, Action: ActionAbsent}, nil
	}
	if !IsManaged(current) {
		return Result{Hook: h.Name, Action: ActionForeign}, nil
	}

	if err = fs.Remove(path); err != nil {
		return Result{}, status.ErrUninstall.Wrap(err)
	}

	if ok, _ := afero.Exists(fs, path+".backup"); ok {
		if err = fs.Rename(path+".backup", path); err != nil {
			return Result{}, status.ErrUninstall.Wrap(err)
		}
		return Result{Hook: h.Name, Action: ActionRestored}, nil
	}
	return Result{Hook: h.Name, Action: ActionRemoved}, nil
}
