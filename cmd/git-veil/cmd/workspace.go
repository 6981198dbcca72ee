package cmd

import (
	"os"

	"github.com/oneconcern/git-veil/pkg/config"
	"github.com/oneconcern/git-veil/pkg/core"
	"github.com/oneconcern/git-veil/pkg/model"
	"github.com/oneconcern/git-veil/pkg/report"
	"github.com/oneconcern/git-veil/pkg/vcs"
	"github.com/oneconcern/git-veil/pkg/vlogger"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// workspace ties one command invocation to its enclosing repository
type workspace struct {
	fs  afero.Fs
	git vcs.Client
	doc *model.Document
	rep *report.Reporter
	l   *zap.Logger
}

func openRepo() (vcs.Client, error) {
	where := veilFlags.root.repoPath
	if where == "" {
		var err error
		where, err = os.Getwd()
		if err != nil {
			return nil, err
		}
	}
	return vcs.Open(where)
}

// newWorkspace opens the repository and loads its configuration, seeding
// documents without a settings table from the user wide defaults.
func newWorkspace() (*workspace, error) {
	git, err := openRepo()
	if err != nil {
		return nil, err
	}

	fs := afero.NewOsFs()
	baseline, err := config.GlobalSettings(viper.GetViper())
	if err != nil {
		return nil, err
	}
	doc, err := config.Load(fs, git.GitDir(), config.WithBaseline(baseline))
	if err != nil {
		return nil, err
	}

	l, err := vlogger.GetLogger(veilFlags.root.logLevel)
	if err != nil {
		return nil, err
	}

	return &workspace{
		fs:  fs,
		git: git,
		doc: doc,
		rep: report.New(
			report.WithVerbose(doc.Settings.Verbose || veilFlags.status.verbose),
			report.WithFunny(doc.Settings.FunnyMode),
		),
		l: l,
	}, nil
}

func (w *workspace) engine(opts ...core.Option) (*core.Engine, error) {
	base := []core.Option{
		core.WithClient(w.git),
		core.WithConfig(w.doc),
		core.WithFilesystem(w.fs),
		core.WithReporter(w.rep),
		core.WithLogger(w.l),
		core.WithStrict(veilFlags.run.strict),
	}
	return core.New(append(base, opts...)...)
}

func (w *workspace) save() error {
	return config.Save(w.fs, w.git.GitDir(), w.doc)
}
