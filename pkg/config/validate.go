package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/oneconcern/git-veil/pkg/model"
	"github.com/oneconcern/git-veil/pkg/pattern"
	"github.com/spf13/afero"
)

// Lint reports problems in a loadable document that would only surface
// at strip time: patterns that do not compile, empty or overly broad
// specifications, and line number patterns aimed at the same line twice.
//
// The returned messages are meant for direct display to the user. An
// empty slice means the document is clean.
func Lint(doc *model.Document) []string {
	var issues []string

	type lineTarget struct {
		file string
		line int
	}
	firstAt := make(map[lineTarget]string)

	for _, p := range doc.Patterns {
		label := p.ID
		if label == "" {
			issues = append(issues, fmt.Sprintf("pattern %q for %s has no id: remove and re-add it", p.Spec, p.File))
			label = p.Spec
		}

		if strings.TrimSpace(p.Spec) == "" {
			issues = append(issues, fmt.Sprintf("pattern %s for %s has an empty specification", label, p.File))
			continue
		}

		if _, err := pattern.Compile(p); err != nil {
			issues = append(issues, fmt.Sprintf("pattern %s does not compile: %v", label, err))
			continue
		}

		switch p.Kind {
		case model.KindLineRegex:
			if spec := strings.TrimSpace(p.Spec); spec == ".*" || spec == ".+" || spec == "^" || spec == "$" {
				issues = append(issues, fmt.Sprintf("pattern %s (%q) matches every line of %s", label, p.Spec, p.File))
			}
		case model.KindLineNumber:
			n, _ := strconv.Atoi(strings.TrimSpace(p.Spec))
			target := lineTarget{file: p.File, line: n}
			if prev, ok := firstAt[target]; ok {
				issues = append(issues, fmt.Sprintf("patterns %s and %s both target line %d of %s", prev, label, n, p.File))
			} else {
				firstAt[target] = label
			}
		}
	}

	return issues
}

// CheckFiles reports configured paths that are absent from the working
// tree rooted at root. Patterns for missing files are harmless but
// usually indicate a rename the configuration did not follow.
func CheckFiles(fs afero.Fs, root string, doc *model.Document) []string {
	var issues []string
	for _, f := range doc.Files() {
		ok, err := afero.Exists(fs, filepath.Join(root, f))
		if err != nil || !ok {
			issues = append(issues, fmt.Sprintf("configured file %s does not exist in the working tree", f))
		}
	}
	return issues
}
