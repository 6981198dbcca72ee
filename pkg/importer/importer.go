// Package importer converts foreign ignore descriptions into patterns.
//
// Two source formats are supported. The gitignore format takes each glob
// line and turns it into a line-regex pattern scoped to one target file.
// The rules format is a sectioned list, with file paths in brackets and
// one kind:spec pair per line:
//
//	[config/app.yaml]
//	line-regex: password
//	range: 3-5
//
// Imports never fail on a bad line: the line is skipped and reported in
// the warnings, so one typo does not discard a whole rule set.
package importer

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"github.com/oneconcern/git-veil/pkg/importer/status"
	"github.com/oneconcern/git-veil/pkg/model"
	"github.com/oneconcern/git-veil/pkg/pattern"
	"github.com/spf13/afero"
)

// Format selects the import source syntax
type Format string

const (
	// FormatGitignore is the glob-per-line syntax of .gitignore files
	FormatGitignore Format = "gitignore"

	// FormatRules is the sectioned kind:spec syntax native to this tool
	FormatRules Format = "rules"
)

// IsValid checks the value of a format
func (f Format) IsValid() bool {
	switch f {
	case FormatGitignore, FormatRules:
		return true
	default:
		return false
	}
}

func (f Format) String() string {
	return string(f)
}

// ParseFormat resolves user input into a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gitignore":
		return FormatGitignore, nil
	case "rules", "custom":
		return FormatRules, nil
	default:
		return "", status.ErrUnknownFormat.Wrap(fmt.Errorf("%q", s))
	}
}

// Import is the outcome of parsing one source
type Import struct {
	Patterns []model.IgnorePattern
	Warnings []string
}

// ParseFile reads and parses an import source from the file system
func ParseFile(fs afero.Fs, path string, format Format, opts ...Option) (*Import, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, status.ErrReadSource.Wrap(err)
	}
	return Parse(string(b), format, opts...)
}

// Parse converts source content into patterns
func Parse(content string, format Format, opts ...Option) (*Import, error) {
	o := defaultOptions()
	for _, apply := range opts {
		apply(o)
	}

	switch format {
	case FormatGitignore:
		if o.target == "" {
			return nil, status.ErrNoTarget
		}
		return parseGitignore(content, o.target), nil
	case FormatRules:
		return parseRules(content), nil
	default:
		return nil, status.ErrUnknownFormat.Wrap(fmt.Errorf("%q", format))
	}
}

// GlobToRegex converts a gitignore style glob into a search regex.
// Everything except the wildcards is escaped, so a glob like *.log
// becomes .*\.log and does not accidentally match "catalog".
func GlobToRegex(glob string) string {
	var b strings.Builder
	for _, r := range glob {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return b.String()
}

func parseGitignore(content string, target string) *Import {
	out := &Import{}

	scanner := bufio.NewScanner(strings.NewReader(content))
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "!") {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("line %d: negations cannot un-ignore a line, skipping %q", n, line))
			continue
		}
		out.Patterns = append(out.Patterns,
			model.NewIgnorePattern(model.KindLineRegex, GlobToRegex(line), model.PatternFile(target)))
	}

	return out
}

func parseRules(content string) *Import {
	out := &Import{}
	currentFile := ""

	scanner := bufio.NewScanner(strings.NewReader(content))
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentFile = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}
		if currentFile == "" {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("line %d: pattern before any [file] section, skipping %q", n, line))
			continue
		}

		kindSpec := strings.SplitN(line, ":", 2)
		if len(kindSpec) != 2 {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("line %d: expected kind:spec, skipping %q", n, line))
			continue
		}

		kind, err := model.ParsePatternKind(kindSpec[0])
		if err != nil {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("line %d: %v, skipping", n, err))
			continue
		}

		p := model.NewIgnorePattern(kind, strings.TrimSpace(kindSpec[1]), model.PatternFile(currentFile))
		if _, err = pattern.Compile(p); err != nil {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("line %d: %v, skipping", n, err))
			continue
		}
		out.Patterns = append(out.Patterns, p)
	}

	return out
}
