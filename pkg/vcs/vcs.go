// Package vcs talks to the enclosing git repository.
//
// All operations go through go-git rather than the git binary, so hooks
// behave the same regardless of the git installation that invoked them.
// Paths handed out and accepted here are slash separated and relative to
// the working tree root, the way git itself reports them.
package vcs

import (
	"io"
	"path/filepath"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/oneconcern/git-veil/pkg/vcs/status"
)

// Client is the view of a git repository needed to strip and restore
// staged content.
type Client interface {
	// Root yields the absolute path of the working tree
	Root() string

	// GitDir yields the absolute path of the git directory
	GitDir() string

	// HooksDir yields the directory git runs hook scripts from,
	// honoring core.hooksPath when set
	HooksDir() string

	// StagedPaths lists the files whose index entry differs from HEAD,
	// sorted, excluding deletions
	StagedPaths() ([]string, error)

	// StagedContent returns the bytes of a path as recorded in the index,
	// which may differ from the working tree copy
	StagedContent(path string) ([]byte, error)

	// Stage records the current working tree content of a path in the index
	Stage(path string) error

	// TrackedPaths lists every path present in the index, sorted
	TrackedPaths() ([]string, error)
}

type client struct {
	repo   *git.Repository
	wt     *git.Worktree
	root   string
	gitDir string
}

// Open locates the repository enclosing path, walking up parent
// directories like git does.
func Open(path string) (Client, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, status.ErrNoRepository.Wrap(err)
	}

	// bare repositories have no working tree and nothing to strip
	wt, err := repo.Worktree()
	if err != nil {
		return nil, status.ErrNoRepository.Wrap(err)
	}

	root, err := filepath.Abs(wt.Filesystem.Root())
	if err != nil {
		return nil, status.ErrNoRepository.Wrap(err)
	}

	gitDir := filepath.Join(root, git.GitDirName)
	if st, ok := repo.Storer.(*filesystem.Storage); ok {
		if abs, aerr := filepath.Abs(st.Filesystem().Root()); aerr == nil {
			gitDir = abs
		}
	}

	return &client{
		repo:   repo,
		wt:     wt,
		root:   root,
		gitDir: gitDir,
	}, nil
}

func (c *client) Root() string {
	return c.root
}

func (c *client) GitDir() string {
	return c.gitDir
}

func (c *client) HooksDir() string {
	if cfg, err := c.repo.Config(); err == nil {
		if hp := cfg.Raw.Section("core").Option("hooksPath"); hp != "" {
			if filepath.IsAbs(hp) {
				return hp
			}
			return filepath.Join(c.root, hp)
		}
	}
	return filepath.Join(c.gitDir, "hooks")
}

func (c *client) StagedPaths() ([]string, error) {
	st, err := c.wt.Status()
	if err != nil {
		return nil, status.ErrStatus.Wrap(err)
	}

	var out []string
	for path, fst := range st {
		switch fst.Staging {
		case git.Added, git.Modified, git.Renamed, git.Copied:
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (c *client) StagedContent(path string) ([]byte, error) {
	idx, err := c.repo.Storer.Index()
	if err != nil {
		return nil, status.ErrReadObject.Wrap(err)
	}

	entry, err := idx.Entry(path)
	if err != nil {
		return nil, status.ErrNotStaged.Wrap(err)
	}

	blob, err := c.repo.BlobObject(entry.Hash)
	if err != nil {
		return nil, status.ErrReadObject.Wrap(err)
	}

	r, err := blob.Reader()
	if err != nil {
		return nil, status.ErrReadObject.Wrap(err)
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, status.ErrReadObject.Wrap(err)
	}
	return b, nil
}

func (c *client) Stage(path string) error {
	if _, err := c.wt.Add(path); err != nil {
		return status.ErrStage.Wrap(err)
	}
	return nil
}

func (c *client) TrackedPaths() ([]string, error) {
	idx, err := c.repo.Storer.Index()
	if err != nil {
		return nil, status.ErrReadObject.Wrap(err)
	}

	out := make([]string, 0, len(idx.Entries))
	for _, entry := range idx.Entries {
		out = append(out, entry.Name)
	}
	sort.Strings(out)
	return out, nil
}
