package core

import (
	"github.com/oneconcern/git-veil/pkg/model"
	"github.com/oneconcern/git-veil/pkg/report"
	"github.com/oneconcern/git-veil/pkg/storage"
	"github.com/oneconcern/git-veil/pkg/vcs"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Option alters the construction of an engine
type Option func(*Engine)

// WithClient sets the repository client. Required.
func WithClient(c vcs.Client) Option {
	return func(e *Engine) {
		if c != nil {
			e.git = c
		}
	}
}

// WithConfig sets the loaded configuration document. Required.
func WithConfig(doc *model.Document) Option {
	return func(e *Engine) {
		if doc != nil {
			e.doc = doc
		}
	}
}

// WithFilesystem overrides the working tree file system, e.g. an in
// memory one in tests.
func WithFilesystem(fs afero.Fs) Option {
	return func(e *Engine) {
		if fs != nil {
			e.fs = fs
		}
	}
}

// WithStore overrides the backend shared by the manifest and the
// machine, bypassing the configured backup strategy.
func WithStore(store storage.Store) Option {
	return func(e *Engine) {
		if store != nil {
			e.store = store
		}
	}
}

// WithReporter sets the user facing output
func WithReporter(r *report.Reporter) Option {
	return func(e *Engine) {
		if r != nil {
			e.rep = r
		}
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.l = l
		}
	}
}

// WithStrict makes per file processing errors fail the whole run
// instead of skipping the file.
func WithStrict(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}
