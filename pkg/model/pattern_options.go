package model

// IgnorePatternOption defines an option to build an IgnorePattern
type IgnorePatternOption func(*IgnorePattern)

// PatternID sets the ID of an IgnorePattern
func PatternID(id string) IgnorePatternOption {
	return func(p *IgnorePattern) {
		if id != "" {
			p.ID = id
		}
	}
}

// PatternFile scopes a pattern to a single repository relative path
func PatternFile(file string) IgnorePatternOption {
	return func(p *IgnorePattern) {
		if file != "" {
			p.File = file
		}
	}
}

// PatternClone clones from an IgnorePattern
func PatternClone(m IgnorePattern) IgnorePatternOption {
	return func(p *IgnorePattern) {
		*p = m
	}
}
