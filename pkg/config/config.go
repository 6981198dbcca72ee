// Package config loads and saves the selective ignore configuration.
//
// The configuration is a TOML document kept inside the repository's git
// directory, so it travels with the clone but never with the history.
// User wide defaults may be supplied through viper (config file or
// GITVEIL_* environment): they seed the settings of documents that do
// not carry an explicit settings table, and the local document always
// takes precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oneconcern/git-veil/pkg/config/status"
	"github.com/oneconcern/git-veil/pkg/model"
	toml "github.com/pelletier/go-toml"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// ConfigPath returns the location of the configuration document for a
// given git directory.
func ConfigPath(gitDir string) string {
	return filepath.Join(gitDir, model.ConfigFileName)
}

// Exists reports whether a configuration document is present.
func Exists(fs afero.Fs, gitDir string) bool {
	ok, err := afero.Exists(fs, ConfigPath(gitDir))
	return err == nil && ok
}

// Load reads and validates the configuration document.
//
// A missing document yields ErrNotInitialized. Documents that do not
// parse, carry an unknown pattern kind or an invalid backup strategy are
// rejected with ErrMalformed: stripping with a partial configuration is
// worse than not stripping at all.
func Load(fs afero.Fs, gitDir string, opts ...Option) (*model.Document, error) {
	o := defaultOptions()
	for _, apply := range opts {
		apply(o)
	}

	b, err := afero.ReadFile(fs, ConfigPath(gitDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, status.ErrNotInitialized.Wrap(err)
		}
		return nil, status.ErrRead.Wrap(err)
	}

	tree, err := toml.LoadBytes(b)
	if err != nil {
		return nil, status.ErrMalformed.Wrap(err)
	}

	doc := model.NewDocument()
	if err = tree.Unmarshal(doc); err != nil {
		return nil, status.ErrMalformed.Wrap(err)
	}

	if doc.Version != model.ConfigVersion {
		return nil, status.ErrVersion.Wrap(
			fmt.Errorf("document version %q, this build supports %q", doc.Version, model.ConfigVersion))
	}

	// hand written documents may omit the settings table entirely
	if !tree.Has("settings") {
		doc.Settings = o.baseline
	}
	if !doc.Settings.BackupStrategy.IsValid() {
		return nil, status.ErrMalformed.Wrap(
			fmt.Errorf("unknown backup strategy %q", doc.Settings.BackupStrategy))
	}

	for _, p := range doc.Patterns {
		if !p.Kind.IsValid() {
			return nil, status.ErrMalformed.Wrap(
				fmt.Errorf("unknown pattern kind %q for file %q", p.Kind, p.File))
		}
	}

	return doc, nil
}

// Save writes the document atomically: the new content is staged next to
// the target and moved in place with a rename, so a crash mid-write never
// leaves a truncated configuration behind.
func Save(fs afero.Fs, gitDir string, doc *model.Document) error {
	b, err := toml.Marshal(*doc)
	if err != nil {
		return status.ErrWrite.Wrap(err)
	}

	target := ConfigPath(gitDir)
	if err = fs.MkdirAll(filepath.Dir(target), 0700); err != nil {
		return status.ErrWrite.Wrap(err)
	}

	stage := target + ".stage"
	if err = afero.WriteFile(fs, stage, b, 0600); err != nil {
		return status.ErrWrite.Wrap(err)
	}
	if err = fs.Rename(stage, target); err != nil {
		return status.ErrWrite.Wrap(err)
	}
	return nil
}

// GlobalSettings derives the user wide baseline settings from viper.
//
// Only keys the user explicitly set override the built-in defaults, so a
// fresh install behaves exactly like DefaultSettings.
func GlobalSettings(v *viper.Viper) (model.Settings, error) {
	s := model.DefaultSettings()
	if v == nil {
		return s, nil
	}

	if v.IsSet("backup_strategy") {
		strategy, err := model.ParseBackupStrategy(v.GetString("backup_strategy"))
		if err != nil {
			return s, status.ErrMalformed.Wrap(err)
		}
		s.BackupStrategy = strategy
	}
	if v.IsSet("auto_cleanup") {
		s.AutoCleanup = v.GetBool("auto_cleanup")
	}
	if v.IsSet("verbose") {
		s.Verbose = v.GetBool("verbose")
	}
	if v.IsSet("funny_mode") {
		s.FunnyMode = v.GetBool("funny_mode")
	}
	return s, nil
}
