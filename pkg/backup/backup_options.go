package backup

import "go.uber.org/zap"

// Option defines an option to build a Manifest
type Option func(*Manifest)

// WithLogger sets a logger on the manifest. The default logger is mute.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manifest) {
		if l != nil {
			m.l = l
		}
	}
}
