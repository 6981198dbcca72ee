// Package status declares error constants returned by
// the core package.
package status

import (
	"github.com/oneconcern/git-veil/pkg/errors"
)

var (
	// ErrNoClient indicates an engine built without a repository client
	ErrNoClient = errors.New("an engine needs a repository client")

	// ErrNoConfig indicates an engine built without a configuration document
	ErrNoConfig = errors.New("an engine needs a configuration document")

	// ErrStore indicates that the backup store could not be opened
	ErrStore = errors.New("cannot open the backup store")

	// ErrState indicates that the persisted machine state cannot be accessed
	ErrState = errors.New("cannot access the persisted machine state")

	// ErrIllegalTransition indicates a machine transition outside the strip and restore cycle
	ErrIllegalTransition = errors.New("illegal machine transition")

	// ErrStrip indicates a failed pre-commit run. The commit must not proceed.
	ErrStrip = errors.New("pre-commit processing failed")

	// ErrStrict indicates files skipped under strict mode
	ErrStrict = errors.New("strict mode: some staged files could not be processed")

	// ErrRestore indicates files whose original content could not be written
	// back. Their backups are retained.
	ErrRestore = errors.New("some files could not be restored")

	// ErrRecovery indicates that leftovers of an interrupted run could not be settled
	ErrRecovery = errors.New("cannot recover from an interrupted run")

	// ErrVerify indicates ignored content sitting in the staging area
	ErrVerify = errors.New("ignored content detected in the staging area")
)
