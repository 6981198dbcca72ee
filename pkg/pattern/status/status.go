// Package status declares error constants returned by
// the pattern package.
package status

import (
	"github.com/oneconcern/git-veil/pkg/errors"
)

var (
	// ErrInvalidRegex indicates a line-regex, or a block side, that does not compile
	ErrInvalidRegex = errors.New("invalid regular expression")

	// ErrInvalidLineNumber indicates a line-number spec that is not a positive integer
	ErrInvalidLineNumber = errors.New("line number must be a positive integer")

	// ErrInvalidRange indicates a line-range spec that is not start-end with 1 <= start <= end
	ErrInvalidRange = errors.New("invalid line range")

	// ErrInvalidBlock indicates a block spec missing its separator or with an empty side
	ErrInvalidBlock = errors.New("invalid block delimiters")

	// ErrUnknownKind indicates an unsupported pattern kind
	ErrUnknownKind = errors.New("unknown pattern kind")
)
