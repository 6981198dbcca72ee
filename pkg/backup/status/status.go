// Package status declares error constants returned by
// the backup package.
package status

import (
	"github.com/oneconcern/git-veil/pkg/errors"
)

var (
	// ErrNoBackup indicates that no pending record exists for the path
	ErrNoBackup = errors.New("no backup recorded for this path")

	// ErrRecordExists indicates a pending record is already in place and would be clobbered
	ErrRecordExists = errors.New("a pending backup already exists for this path")

	// ErrPutRecord indicates that a backup record could not be persisted
	ErrPutRecord = errors.New("failed to persist backup record")

	// ErrCorruptRecord indicates that a stored record cannot be decoded
	ErrCorruptRecord = errors.New("backup record cannot be decoded")

	// ErrContentDiverged indicates that the working file changed after it was
	// stripped: restoring would clobber edits made since
	ErrContentDiverged = errors.New("working content diverged from the stripped snapshot")

	// ErrArchive indicates that a restored record could not be archived
	ErrArchive = errors.New("failed to archive restored record")
)
