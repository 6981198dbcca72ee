package pattern

import (
	"testing"

	"github.com/oneconcern/git-veil/pkg/errors"
	"github.com/oneconcern/git-veil/pkg/model"
	"github.com/oneconcern/git-veil/pkg/pattern/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, kind model.PatternKind, spec string) Matcher {
	t.Helper()
	m, err := Compile(model.NewIgnorePattern(kind, spec))
	require.NoError(t, err)
	require.Equal(t, kind, m.Kind())
	return m
}

func TestCompileFailsFast(t *testing.T) {
	for _, tc := range []struct {
		kind     model.PatternKind
		spec     string
		sentinel error
	}{
		{model.KindLineRegex, "unclosed [", status.ErrInvalidRegex},
		{model.KindLineNumber, "0", status.ErrInvalidLineNumber},
		{model.KindLineNumber, "-3", status.ErrInvalidLineNumber},
		{model.KindLineNumber, "three", status.ErrInvalidLineNumber},
		{model.KindLineRange, "13", status.ErrInvalidRange},
		{model.KindLineRange, "16-13", status.ErrInvalidRange},
		{model.KindLineRange, "0-4", status.ErrInvalidRange},
		{model.KindLineRange, "a-b", status.ErrInvalidRange},
		{model.KindBlockStartEnd, "START END", status.ErrInvalidBlock},
		{model.KindBlockStartEnd, "START|||", status.ErrInvalidBlock},
		{model.KindBlockStartEnd, "|||END", status.ErrInvalidBlock},
		{model.KindBlockStartEnd, "unclosed [|||END", status.ErrInvalidRegex},
		{model.PatternKind("prose"), "whatever", status.ErrUnknownKind},
	} {
		_, err := Compile(model.NewIgnorePattern(tc.kind, tc.spec))
		require.Errorf(t, err, "%s %q", tc.kind, tc.spec)
		assert.Truef(t, errors.Is(err, tc.sentinel), "%s %q: got %v", tc.kind, tc.spec, err)
	}
}

func TestRegexMatcher(t *testing.T) {
	lines := []string{
		"API_KEY = secret",
		"harmless",
		"prefixed API_KEY too",
		"api_key lowercase does not match",
	}

	// the expression is searched anywhere in the line, not anchored
	m := mustCompile(t, model.KindLineRegex, "API_KEY")
	assert.Equal(t, []int{1, 3}, m.Match(lines).Lines)

	m = mustCompile(t, model.KindLineRegex, "^API_KEY")
	assert.Equal(t, []int{1}, m.Match(lines).Lines)

	m = mustCompile(t, model.KindLineRegex, "(?i)api_key")
	assert.Equal(t, []int{1, 3, 4}, m.Match(lines).Lines)

	m = mustCompile(t, model.KindLineRegex, "NO_SUCH_THING")
	assert.Empty(t, m.Match(lines).Lines)
}

func TestLineMatcher(t *testing.T) {
	lines := []string{"one", "two", "three"}

	m := mustCompile(t, model.KindLineNumber, "2")
	assert.Equal(t, []int{2}, m.Match(lines).Lines)

	// a line beyond the end of the file matches nothing
	m = mustCompile(t, model.KindLineNumber, "4")
	assert.Empty(t, m.Match(lines).Lines)

	m = mustCompile(t, model.KindLineNumber, " 3 ")
	assert.Equal(t, []int{3}, m.Match(lines).Lines)
}

func TestRangeMatcher(t *testing.T) {
	lines := make([]string, 20)

	// an inclusive range: 13-16 selects 4 lines
	m := mustCompile(t, model.KindLineRange, "13-16")
	assert.Equal(t, []int{13, 14, 15, 16}, m.Match(lines).Lines)

	// single line range
	m = mustCompile(t, model.KindLineRange, "5-5")
	assert.Equal(t, []int{5}, m.Match(lines).Lines)

	// the end is clipped to the last line
	m = mustCompile(t, model.KindLineRange, "18-25")
	assert.Equal(t, []int{18, 19, 20}, m.Match(lines).Lines)

	// a range starting beyond the end matches nothing
	m = mustCompile(t, model.KindLineRange, "21-25")
	assert.Empty(t, m.Match(lines).Lines)
}

func TestBlockMatcher(t *testing.T) {
	lines := []string{
		"before",
		"// DEBUG START",
		"debug line 1",
		"debug line 2",
		"// DEBUG END",
		"after",
	}

	m := mustCompile(t, model.KindBlockStartEnd, "DEBUG START ||| DEBUG END")
	sel := m.Match(lines)
	assert.Equal(t, []int{2, 3, 4, 5}, sel.Lines)
	assert.False(t, sel.Unterminated)
}

func TestBlockMatcherReopens(t *testing.T) {
	lines := []string{
		"START", "a", "END",
		"plain",
		"START", "b", "END",
	}
	m := mustCompile(t, model.KindBlockStartEnd, "START|||END")
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, m.Match(lines).Lines)
}

func TestBlockMatcherDoesNotNest(t *testing.T) {
	lines := []string{
		"START",
		"START", // inside an open block this is ordinary content
		"END",
		"tail",
	}
	m := mustCompile(t, model.KindBlockStartEnd, "START|||END")
	sel := m.Match(lines)
	assert.Equal(t, []int{1, 2, 3}, sel.Lines)
	assert.False(t, sel.Unterminated)
}

func TestBlockMatcherStartLineNeverCloses(t *testing.T) {
	// the start line itself matches both expressions: the block still
	// needs a later line to close
	lines := []string{"BEGIN FIN", "inner", "FIN", "after"}
	m := mustCompile(t, model.KindBlockStartEnd, "BEGIN|||FIN")
	assert.Equal(t, []int{1, 2, 3}, m.Match(lines).Lines)
}

func TestBlockMatcherUnterminated(t *testing.T) {
	lines := []string{"keep", "START", "swallowed 1", "swallowed 2"}
	m := mustCompile(t, model.KindBlockStartEnd, "START|||END")
	sel := m.Match(lines)
	assert.Equal(t, []int{2, 3, 4}, sel.Lines)
	assert.True(t, sel.Unterminated)
}
