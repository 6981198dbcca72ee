// Package pattern compiles ignore patterns into line matchers and
// evaluates them over file content.
//
// Matching is deterministic: patterns are applied in configured order
// and the same content always yields the same selection. Compilation
// fails fast, so a malformed pattern can never reach matching time.
package pattern

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/oneconcern/git-veil/pkg/model"
	"github.com/oneconcern/git-veil/pkg/pattern/status"
)

// Matcher selects 1-indexed lines out of a file.
//
// Matchers are pure: they never mutate their input and hold no state
// across calls.
type Matcher interface {
	Kind() model.PatternKind

	// Match returns the selected lines in increasing order
	Match(lines []string) Selection
}

// Selection is the outcome of matching one pattern over one file
type Selection struct {
	// Lines are the selected 1-indexed line numbers, ascending
	Lines []int

	// Unterminated flags a block whose start was seen but whose end never
	// was: the block then runs through the end of the file
	Unterminated bool
}

// Compile turns a configured pattern into a Matcher
func Compile(p model.IgnorePattern) (Matcher, error) {
	switch p.Kind {
	case model.KindLineRegex:
		re, err := regexp.Compile(p.Spec)
		if err != nil {
			return nil, status.ErrInvalidRegex.Wrap(fmt.Errorf("pattern %s: %v", p.ID, err))
		}
		return &regexMatcher{re: re}, nil

	case model.KindLineNumber:
		n, err := strconv.Atoi(strings.TrimSpace(p.Spec))
		if err != nil || n <= 0 {
			return nil, status.ErrInvalidLineNumber.Wrap(fmt.Errorf("pattern %s: spec %q", p.ID, p.Spec))
		}
		return &lineMatcher{line: n}, nil

	case model.KindLineRange:
		start, end, err := parseRange(p.Spec)
		if err != nil {
			return nil, status.ErrInvalidRange.Wrap(fmt.Errorf("pattern %s: %v", p.ID, err))
		}
		return &rangeMatcher{start: start, end: end}, nil

	case model.KindBlockStartEnd:
		startRe, endRe, err := parseBlock(p.Spec)
		if err != nil {
			return nil, err
		}
		return &blockMatcher{start: startRe, end: endRe}, nil

	default:
		return nil, status.ErrUnknownKind.Wrap(fmt.Errorf("pattern %s: kind %q", p.ID, p.Kind))
	}
}

func parseRange(spec string) (int, int, error) {
	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("spec %q is not of the form start-end", spec)
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || start <= 0 {
		return 0, 0, fmt.Errorf("start of %q is not a positive integer", spec)
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || end <= 0 {
		return 0, 0, fmt.Errorf("end of %q is not a positive integer", spec)
	}
	if start > end {
		return 0, 0, fmt.Errorf("start of %q exceeds its end", spec)
	}
	return start, end, nil
}

func parseBlock(spec string) (*regexp.Regexp, *regexp.Regexp, error) {
	idx := strings.Index(spec, model.BlockSeparator)
	if idx < 0 {
		return nil, nil, status.ErrInvalidBlock.Wrap(
			fmt.Errorf("spec %q misses the %q separator", spec, model.BlockSeparator))
	}
	startSpec := strings.TrimSpace(spec[:idx])
	endSpec := strings.TrimSpace(spec[idx+len(model.BlockSeparator):])
	if startSpec == "" || endSpec == "" {
		return nil, nil, status.ErrInvalidBlock.Wrap(
			fmt.Errorf("spec %q has an empty side", spec))
	}
	startRe, err := regexp.Compile(startSpec)
	if err != nil {
		return nil, nil, status.ErrInvalidRegex.Wrap(fmt.Errorf("block start %q: %v", startSpec, err))
	}
	endRe, err := regexp.Compile(endSpec)
	if err != nil {
		return nil, nil, status.ErrInvalidRegex.Wrap(fmt.Errorf("block end %q: %v", endSpec, err))
	}
	return startRe, endRe, nil
}

type regexMatcher struct {
	re *regexp.Regexp
}

func (m *regexMatcher) Kind() model.PatternKind {
	return model.KindLineRegex
}

// Match selects every line in which the expression is found, anywhere
func (m *regexMatcher) Match(lines []string) Selection {
	var sel Selection
	for i, line := range lines {
		if m.re.MatchString(line) {
			sel.Lines = append(sel.Lines, i+1)
		}
	}
	return sel
}

type lineMatcher struct {
	line int
}

func (m *lineMatcher) Kind() model.PatternKind {
	return model.KindLineNumber
}

// Match selects the configured line, or nothing when the file is shorter
func (m *lineMatcher) Match(lines []string) Selection {
	if m.line > len(lines) {
		return Selection{}
	}
	return Selection{Lines: []int{m.line}}
}

type rangeMatcher struct {
	start int
	end   int
}

func (m *rangeMatcher) Kind() model.PatternKind {
	return model.KindLineRange
}

// Match selects the inclusive range, clipped to the end of the file.
// A range starting beyond the last line selects nothing.
func (m *rangeMatcher) Match(lines []string) Selection {
	if m.start > len(lines) {
		return Selection{}
	}
	end := m.end
	if end > len(lines) {
		end = len(lines)
	}
	var sel Selection
	for n := m.start; n <= end; n++ {
		sel.Lines = append(sel.Lines, n)
	}
	return sel
}

type blockMatcher struct {
	start *regexp.Regexp
	end   *regexp.Regexp
}

func (m *blockMatcher) Kind() model.PatternKind {
	return model.KindBlockStartEnd
}

// Match runs a single pass with an inside flag. The line matching the
// start expression opens the block; the first subsequent line matching
// the end expression closes it; both are selected. Blocks do not nest:
// further start matches inside an open block are ordinary content.
// A block still open at the last line selects through the end of the
// file and is flagged unterminated.
func (m *blockMatcher) Match(lines []string) Selection {
	var sel Selection
	inside := false
	for i, line := range lines {
		if !inside {
			if m.start.MatchString(line) {
				inside = true
				sel.Lines = append(sel.Lines, i+1)
			}
			continue
		}
		sel.Lines = append(sel.Lines, i+1)
		if m.end.MatchString(line) {
			inside = false
		}
	}
	sel.Unterminated = inside
	return sel
}
