package core

import (
	"os"
	"path/filepath"

	"github.com/oneconcern/git-veil/pkg/backup"
	"github.com/oneconcern/git-veil/pkg/content"
	"github.com/oneconcern/git-veil/pkg/core/status"
	"github.com/oneconcern/git-veil/pkg/model"
	"github.com/oneconcern/git-veil/pkg/pattern"
	"github.com/oneconcern/git-veil/pkg/report"
	"github.com/oneconcern/git-veil/pkg/storage"
	"github.com/oneconcern/git-veil/pkg/vcs"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Engine runs the strip and restore operations over one repository
type Engine struct {
	fs       afero.Fs
	git      vcs.Client
	doc      *model.Document
	store    storage.Store
	manifest *backup.Manifest
	machine  *Machine
	rep      *report.Reporter
	l        *zap.Logger
	strict   bool
}

func defaultEngine() *Engine {
	return &Engine{
		fs:  afero.NewOsFs(),
		rep: report.New(),
		l:   zap.NewNop(),
	}
}

// New wires an engine over an opened repository and a loaded
// configuration document. The backup store and the state machine share
// one storage backend, placed according to the configured strategy.
func New(opts ...Option) (*Engine, error) {
	e := defaultEngine()
	for _, apply := range opts {
		apply(e)
	}

	if e.git == nil {
		return nil, status.ErrNoClient
	}
	if e.doc == nil {
		return nil, status.ErrNoConfig
	}

	if e.store == nil {
		store, err := backup.NewStore(e.doc.Settings.BackupStrategy, e.fs, e.git.GitDir())
		if err != nil {
			return nil, status.ErrStore.Wrap(err)
		}
		e.store = store
	}
	e.manifest = backup.New(e.store, backup.WithLogger(e.l))
	e.machine = NewMachine(e.store, e.l)
	return e, nil
}

// Evaluate runs the patterns configured for path over content, as if it
// were the staged copy. No file is touched.
func (e *Engine) Evaluate(path string, b []byte) (*pattern.Evaluation, error) {
	return pattern.Evaluate(content.Texts(content.Split(b)), e.doc.PatternsFor(path))
}

// Manifest exposes the backup manifest, e.g. for status display
func (e *Engine) Manifest() *backup.Manifest {
	return e.manifest
}

// Machine exposes the durable state machine
func (e *Engine) Machine() *Machine {
	return e.machine
}

func (e *Engine) workPath(rel string) string {
	return filepath.Join(e.git.Root(), filepath.FromSlash(rel))
}

func (e *Engine) readWorking(rel string) ([]byte, error) {
	return afero.ReadFile(e.fs, e.workPath(rel))
}

// writeWorking atomically replaces a working tree file, keeping its mode
func (e *Engine) writeWorking(rel string, b []byte) error {
	target := e.workPath(rel)

	mode := os.FileMode(0644)
	if info, err := e.fs.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	stage := target + ".veil-stage"
	if err := afero.WriteFile(e.fs, stage, b, mode); err != nil {
		return err
	}
	if err := e.fs.Rename(stage, target); err != nil {
		_ = e.fs.Remove(stage)
		return err
	}
	return nil
}
