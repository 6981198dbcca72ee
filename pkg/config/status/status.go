// Package status declares error constants returned by
// the config package.
package status

import (
	"github.com/oneconcern/git-veil/pkg/errors"
)

var (
	// ErrNotInitialized indicates that no configuration document exists yet
	ErrNotInitialized = errors.New("no selective ignore configuration found, run init first")

	// ErrRead indicates that the configuration document exists but cannot be read
	ErrRead = errors.New("cannot read configuration")

	// ErrMalformed indicates a document that does not parse or carries invalid values.
	// A malformed configuration is always fatal: matching with a partial
	// configuration could let unstripped secrets through.
	ErrMalformed = errors.New("malformed configuration")

	// ErrVersion indicates a document written by an incompatible version
	ErrVersion = errors.New("unsupported configuration version")

	// ErrWrite indicates that the document could not be saved
	ErrWrite = errors.New("cannot write configuration")
)
