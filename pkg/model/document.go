package model

import "sort"

// ConfigVersion is the configuration document version written by this build
const ConfigVersion = "1"

// Document is the selective ignore configuration kept in the git directory
type Document struct {
	Version  string          `json:"version" yaml:"version" toml:"version"`
	Settings Settings        `json:"settings" yaml:"settings" toml:"settings"`
	Patterns []IgnorePattern `json:"pattern,omitempty" yaml:"pattern,omitempty" toml:"pattern,omitempty"`
	_        struct{}
}

// NewDocument returns an empty document at the current version, with default settings
func NewDocument() *Document {
	return &Document{
		Version:  ConfigVersion,
		Settings: DefaultSettings(),
	}
}

// PatternsFor returns the patterns applying to a path: patterns scoped to
// the path first, then the "all" entries, each group in configured order.
func (d *Document) PatternsFor(path string) []IgnorePattern {
	if path == AllFiles {
		return d.AllPatterns()
	}
	var out []IgnorePattern
	for _, p := range d.Patterns {
		if p.File == path {
			out = append(out, p)
		}
	}
	out = append(out, d.AllPatterns()...)
	return out
}

// AllPatterns returns the patterns applying to every file, in configured order
func (d *Document) AllPatterns() []IgnorePattern {
	var out []IgnorePattern
	for _, p := range d.Patterns {
		if p.File == AllFiles {
			out = append(out, p)
		}
	}
	return out
}

// Files lists the explicitly configured paths, sorted, without the "all" entry
func (d *Document) Files() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range d.Patterns {
		if p.File == AllFiles {
			continue
		}
		if _, ok := seen[p.File]; ok {
			continue
		}
		seen[p.File] = struct{}{}
		out = append(out, p.File)
	}
	sort.Strings(out)
	return out
}

// Add appends a pattern, last in its file's configured order
func (d *Document) Add(p IgnorePattern) {
	d.Patterns = append(d.Patterns, p)
}

// Remove deletes a pattern by ID, returning the removed pattern when found
func (d *Document) Remove(id string) (IgnorePattern, bool) {
	for i, p := range d.Patterns {
		if p.ID == id {
			d.Patterns = append(d.Patterns[:i], d.Patterns[i+1:]...)
			return p, true
		}
	}
	return IgnorePattern{}, false
}
