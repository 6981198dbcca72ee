// Package status declares error constants returned by
// the importer package.
package status

import (
	"github.com/oneconcern/git-veil/pkg/errors"
)

var (
	// ErrUnknownFormat indicates an import format this tool does not parse
	ErrUnknownFormat = errors.New("unknown import format")

	// ErrReadSource indicates that the import source could not be read
	ErrReadSource = errors.New("cannot read import source")

	// ErrNoTarget indicates a gitignore import without a target file
	ErrNoTarget = errors.New("gitignore imports need a target file to scope the patterns")
)
