package pattern

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/oneconcern/git-veil/pkg/model"
)

// LineRange is an inclusive run of consecutive 1-indexed lines
type LineRange struct {
	Start int
	End   int
}

func (r LineRange) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// FormatRanges renders ranges the way they appear in reports, e.g. "3, 7-9, 12"
func FormatRanges(ranges []LineRange) string {
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

// MatchResult is the per pattern outcome of an evaluation
type MatchResult struct {
	Pattern      model.IgnorePattern
	Ranges       []LineRange
	Count        int
	Unterminated bool
}

// Evaluation aggregates every pattern's matches over one file
type Evaluation struct {
	// Results holds one entry per evaluated pattern, in application order
	Results []MatchResult

	// Ignored is the union of all selections: deduplicated, ascending.
	// A line matched by several patterns appears exactly once.
	Ignored []int

	// Warnings collects non fatal findings, such as unterminated blocks
	Warnings []string
}

// HasMatches reports whether any line was selected at all
func (e *Evaluation) HasMatches() bool {
	return len(e.Ignored) > 0
}

// IgnoredRanges folds the union into inclusive ranges for display
func (e *Evaluation) IgnoredRanges() []LineRange {
	return groupRanges(e.Ignored)
}

// Evaluate runs patterns over the lines of one file, in the given order.
//
// All patterns are compiled up front: one malformed pattern fails the
// whole evaluation before any line is inspected.
func Evaluate(lines []string, patterns []model.IgnorePattern) (*Evaluation, error) {
	matchers := make([]Matcher, len(patterns))
	for i, p := range patterns {
		m, err := Compile(p)
		if err != nil {
			return nil, err
		}
		matchers[i] = m
	}

	ev := &Evaluation{}
	seen := make(map[int]struct{})
	for i, m := range matchers {
		sel := m.Match(lines)
		ev.Results = append(ev.Results, MatchResult{
			Pattern:      patterns[i],
			Ranges:       groupRanges(sel.Lines),
			Count:        len(sel.Lines),
			Unterminated: sel.Unterminated,
		})
		if sel.Unterminated {
			ev.Warnings = append(ev.Warnings,
				fmt.Sprintf("pattern %s (%q): block start without an end, ignoring through end of file",
					patterns[i].ID, patterns[i].Spec))
		}
		for _, n := range sel.Lines {
			seen[n] = struct{}{}
		}
	}

	ev.Ignored = make([]int, 0, len(seen))
	for n := range seen {
		ev.Ignored = append(ev.Ignored, n)
	}
	sort.Ints(ev.Ignored)
	return ev, nil
}

// groupRanges folds an ascending line selection into inclusive ranges
func groupRanges(lines []int) []LineRange {
	var out []LineRange
	for _, n := range lines {
		if len(out) > 0 && out[len(out)-1].End == n-1 {
			out[len(out)-1].End = n
			continue
		}
		out = append(out, LineRange{Start: n, End: n})
	}
	return out
}
