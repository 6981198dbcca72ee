package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternKind(t *testing.T) {
	for _, k := range []PatternKind{KindLineRegex, KindLineNumber, KindLineRange, KindBlockStartEnd} {
		assert.True(t, k.IsValid())
		assert.Equal(t, string(k), k.String())
	}
	assert.False(t, PatternKind("line-prose").IsValid())
}

func TestParsePatternKind(t *testing.T) {
	for input, expected := range map[string]PatternKind{
		"line-regex":      KindLineRegex,
		"regex":           KindLineRegex,
		"LINE-NUMBER":     KindLineNumber,
		"line":            KindLineNumber,
		" range ":         KindLineRange,
		"line-range":      KindLineRange,
		"block":           KindBlockStartEnd,
		"block-start-end": KindBlockStartEnd,
	} {
		k, err := ParsePatternKind(input)
		require.NoError(t, err)
		assert.Equal(t, expected, k)
	}

	_, err := ParsePatternKind("prose")
	assert.Error(t, err)
}

func TestNewIgnorePattern(t *testing.T) {
	p := NewIgnorePattern(KindLineRegex, "API_KEY")
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, AllFiles, p.File)
	assert.Equal(t, KindLineRegex, p.Kind)
	assert.Equal(t, "API_KEY", p.Spec)

	q := NewIgnorePattern(KindLineNumber, "3",
		PatternFile("src/config.py"),
		PatternID("fixed-id"),
	)
	assert.Equal(t, "fixed-id", q.ID)
	assert.Equal(t, "src/config.py", q.File)

	// two patterns never share an ID by default
	assert.NotEqual(t, p.ID, NewIgnorePattern(KindLineRegex, "API_KEY").ID)

	clone := NewIgnorePattern(KindLineRange, "1-2", PatternClone(q))
	assert.Equal(t, q, clone)
}
