// Package status declares error constants returned by
// the vcs package.
package status

import (
	"github.com/oneconcern/git-veil/pkg/errors"
)

var (
	// ErrNoRepository indicates that the given path is not inside a git working tree
	ErrNoRepository = errors.New("not inside a git repository")

	// ErrStatus indicates that the staging state of the working tree could not be determined
	ErrStatus = errors.New("cannot determine staged files")

	// ErrNotStaged indicates a path with no entry in the index
	ErrNotStaged = errors.New("file is not staged")

	// ErrReadObject indicates that a staged blob could not be read back
	ErrReadObject = errors.New("cannot read staged content")

	// ErrStage indicates that a working tree file could not be added to the index
	ErrStage = errors.New("cannot stage file")
)
