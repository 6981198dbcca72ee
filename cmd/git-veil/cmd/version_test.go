package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionInfo(t *testing.T) {
	v := NewVersionInfo()
	assert.Equal(t, "dev", v.Version)
	assert.Contains(t, v.String(), "Version: dev")

	Version = "v1.2.3"
	GitCommit = "abc1234"
	defer func() {
		Version = ""
		GitCommit = ""
	}()

	v = NewVersionInfo()
	assert.Equal(t, "v1.2.3", v.Version)
	assert.Equal(t, "clean", v.GitState)
	assert.Contains(t, v.String(), "Commit: abc1234")
}

func TestCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, expected := range []string{
		"init", "hooks", "pattern", "pre-commit", "post-commit",
		"verify", "status", "restore", "validate", "import", "version",
	} {
		assert.True(t, names[expected], expected)
	}
}
