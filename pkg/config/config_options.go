package config

import (
	"github.com/oneconcern/git-veil/pkg/model"
)

// Option alters the behavior of Load
type Option func(*options)

type options struct {
	baseline model.Settings
}

func defaultOptions() *options {
	return &options{
		baseline: model.DefaultSettings(),
	}
}

// WithBaseline sets the settings applied to documents that omit the
// settings table, typically derived from the user wide configuration.
func WithBaseline(s model.Settings) Option {
	return func(o *options) {
		if s.BackupStrategy.IsValid() {
			o.baseline = s
		}
	}
}
