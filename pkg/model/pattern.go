package model

import (
	"fmt"
	"strings"

	"github.com/segmentio/ksuid"
)

// AllFiles is the reserved file entry whose patterns apply to every staged file.
const AllFiles = "all"

// BlockSeparator splits the start and end expressions of a block-start-end spec.
const BlockSeparator = "|||"

// PatternKind enumerates the supported line matching strategies.
type PatternKind string

const (
	// KindLineRegex matches every line containing a regular expression
	KindLineRegex PatternKind = "line-regex"

	// KindLineNumber matches a single 1-indexed line
	KindLineNumber PatternKind = "line-number"

	// KindLineRange matches an inclusive range of 1-indexed lines
	KindLineRange PatternKind = "line-range"

	// KindBlockStartEnd matches every line between a start and an end marker, markers included
	KindBlockStartEnd PatternKind = "block-start-end"
)

// IsValid checks the value of a pattern kind
func (k PatternKind) IsValid() bool {
	switch k {
	case KindLineRegex, KindLineNumber, KindLineRange, KindBlockStartEnd:
		return true
	default:
		return false
	}
}

func (k PatternKind) String() string {
	return string(k)
}

// ParsePatternKind resolves user input into a PatternKind.
// Short aliases are accepted alongside the canonical names.
func ParsePatternKind(s string) (PatternKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line-regex", "regex":
		return KindLineRegex, nil
	case "line-number", "line":
		return KindLineNumber, nil
	case "line-range", "range":
		return KindLineRange, nil
	case "block-start-end", "block":
		return KindBlockStartEnd, nil
	default:
		return "", fmt.Errorf("unknown pattern kind: %q", s)
	}
}

// IgnorePattern describes one configured rule keeping lines out of commits
type IgnorePattern struct {
	ID   string      `json:"id" yaml:"id" toml:"id"`
	File string      `json:"file" yaml:"file" toml:"file"`
	Kind PatternKind `json:"kind" yaml:"kind" toml:"kind"`
	Spec string      `json:"spec" yaml:"spec" toml:"spec"`
	_    struct{}
}

func (p IgnorePattern) String() string {
	return fmt.Sprintf("%s[%s] %s: %q", p.File, p.ID, p.Kind, p.Spec)
}

func defaultIgnorePattern() *IgnorePattern {
	return &IgnorePattern{
		ID:   newID(),
		File: AllFiles,
	}
}

// NewIgnorePattern builds a pattern with a fresh unique ID.
// The pattern applies to every file unless scoped with PatternFile.
func NewIgnorePattern(kind PatternKind, spec string, opts ...IgnorePatternOption) IgnorePattern {
	p := defaultIgnorePattern()
	p.Kind = kind
	p.Spec = spec
	for _, apply := range opts {
		apply(p)
	}
	return *p
}

func newID() string {
	id, err := ksuid.NewRandom()
	if err != nil {
		panic(fmt.Sprintf("cannot generate random ksuid: %v", err))
	}
	return id.String()
}
