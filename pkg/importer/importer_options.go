package importer

// Option alters import parsing
type Option func(*options)

type options struct {
	target string
}

func defaultOptions() *options {
	return &options{}
}

// WithTarget scopes gitignore imports to one file.
// The rules format carries its own file sections and ignores this.
func WithTarget(path string) Option {
	return func(o *options) {
		o.target = path
	}
}
