package hooks

// Option alters hook installation
type Option func(*options)

type options struct {
	executable string
}

func defaultOptions() *options {
	return &options{
		executable: "git-veil",
	}
}

// WithExecutable sets the binary name the scripts invoke, when the tool
// is installed under a different name.
func WithExecutable(name string) Option {
	return func(o *options) {
		if name != "" {
			o.executable = name
		}
	}
}
