package report

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a line level difference between the staged content of a
// file and what a strip run would commit. Unchanged lines only show in
// verbose mode.
func (r *Reporter) Diff(path string, before, after string) {
	if before == after {
		r.printf("%s: no change\n", path)
		return
	}

	r.printf("%s\n", r.cyan("--- "+path+" (staged)"))
	r.printf("%s\n", r.cyan("+++ "+path+" (would commit)"))

	dmp := diffmatchpatch.New()
	src, dst, lineIndex := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(src, dst, false), lineIndex)

	for _, d := range diffs {
		for _, line := range splitDiffLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				r.printf("%s\n", r.red("-"+line))
			case diffmatchpatch.DiffInsert:
				r.printf("%s\n", r.green("+"+line))
			case diffmatchpatch.DiffEqual:
				if r.verbose {
					r.printf(" %s\n", line)
				}
			}
		}
	}
}

func splitDiffLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
