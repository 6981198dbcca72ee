package core

import (
	"context"
	"fmt"

	"github.com/oneconcern/git-veil/pkg/content"
	"github.com/oneconcern/git-veil/pkg/core/status"
	"github.com/oneconcern/git-veil/pkg/model"
	"github.com/oneconcern/git-veil/pkg/pattern"
	"go.uber.org/zap"
)

// Violation is one pattern still matching staged content
type Violation struct {
	Path    string
	Pattern model.IgnorePattern
	Count   int
	Ranges  string
}

// Verify re-evaluates every configured pattern against the staged
// content. This is the pre-push safety net for commits made with hooks
// bypassed: a clean strip leaves nothing for the patterns to find.
func (e *Engine) Verify(ctx context.Context) ([]Violation, error) {
	staged, err := e.git.StagedPaths()
	if err != nil {
		return nil, status.ErrVerify.Wrap(err)
	}

	var violations []Violation
	for _, path := range staged {
		patterns := e.doc.PatternsFor(path)
		if len(patterns) == 0 {
			continue
		}

		b, rerr := e.git.StagedContent(path)
		if rerr != nil {
			e.rep.Warning("cannot verify %s: %v", path, rerr)
			e.l.Warn("cannot read staged content", zap.String("path", path), zap.Error(rerr))
			continue
		}

		ev, eerr := pattern.Evaluate(content.Texts(content.Split(b)), patterns)
		if eerr != nil {
			return nil, status.ErrVerify.Wrap(eerr)
		}

		for _, res := range ev.Results {
			if res.Count == 0 {
				continue
			}
			v := Violation{
				Path:    path,
				Pattern: res.Pattern,
				Count:   res.Count,
				Ranges:  pattern.FormatRanges(res.Ranges),
			}
			violations = append(violations, v)
			e.rep.VerifyViolation(v.Path, v.Count, v.Ranges,
				fmt.Sprintf("%s (%q)", v.Pattern.ID, v.Pattern.Spec))
		}
	}

	if len(violations) > 0 {
		return violations, status.ErrVerify.Wrap(fmt.Errorf("%d violation(s)", len(violations)))
	}
	e.rep.VerifyPassed()
	return nil, nil
}
