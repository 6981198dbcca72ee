package core

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/oneconcern/git-veil/pkg/vcs"
	vcsstatus "github.com/oneconcern/git-veil/pkg/vcs/status"
	"github.com/spf13/afero"
)

var _ vcs.Client = &fakeGit{}

// fakeGit implements vcs.Client over a plain map standing in for the git
// index, with working tree files living on the engine's file system.
type fakeGit struct {
	fs         afero.Fs
	root       string
	gitDir     string
	index      map[string][]byte
	unreadable map[string]error
	failStage  map[string]error
}

func newFakeGit(fs afero.Fs) *fakeGit {
	return &fakeGit{
		fs:         fs,
		root:       "/repo",
		gitDir:     "/repo/.git",
		index:      map[string][]byte{},
		unreadable: map[string]error{},
		failStage:  map[string]error{},
	}
}

func (f *fakeGit) Root() string     { return f.root }
func (f *fakeGit) GitDir() string   { return f.gitDir }
func (f *fakeGit) HooksDir() string { return filepath.Join(f.gitDir, "hooks") }

func (f *fakeGit) StagedPaths() ([]string, error) {
	out := make([]string, 0, len(f.index))
	for p := range f.index {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeGit) StagedContent(path string) ([]byte, error) {
	if err, ok := f.unreadable[path]; ok {
		return nil, err
	}
	b, ok := f.index[path]
	if !ok {
		return nil, vcsstatus.ErrNotStaged.Wrap(fmt.Errorf("path %q", path))
	}
	return b, nil
}

func (f *fakeGit) Stage(path string) error {
	if err, ok := f.failStage[path]; ok {
		return err
	}
	b, err := afero.ReadFile(f.fs, filepath.Join(f.root, filepath.FromSlash(path)))
	if err != nil {
		return vcsstatus.ErrStage.Wrap(err)
	}
	f.index[path] = b
	return nil
}

func (f *fakeGit) TrackedPaths() ([]string, error) {
	return f.StagedPaths()
}

// add writes a working tree file and stages it, like git add on fresh content
func (f *fakeGit) add(path string, b []byte) error {
	if err := afero.WriteFile(f.fs, filepath.Join(f.root, filepath.FromSlash(path)), b, 0644); err != nil {
		return err
	}
	return f.Stage(path)
}
