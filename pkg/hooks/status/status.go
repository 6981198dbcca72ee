// Package status declares error constants returned by
// the hooks package.
package status

import (
	"github.com/oneconcern/git-veil/pkg/errors"
)

var (
	// ErrInstall indicates that a hook script could not be written
	ErrInstall = errors.New("cannot install hook")

	// ErrUninstall indicates that a hook script could not be removed
	ErrUninstall = errors.New("cannot uninstall hook")
)
