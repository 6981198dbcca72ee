package cmd

import (
	"github.com/oneconcern/git-veil/pkg/config"
	"github.com/oneconcern/git-veil/pkg/hooks"
	"github.com/oneconcern/git-veil/pkg/model"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize selective ignore for this repository",
	Long: `Creates the configuration file in the git directory and installs the
managed hook scripts. Safe to run again: an existing configuration is kept
and hooks already in place stay untouched.`,
	Run: func(cmd *cobra.Command, args []string) {
		git, err := openRepo()
		if err != nil {
			wrapFatalln("open repository", err)
			return
		}
		fs := afero.NewOsFs()

		if config.Exists(fs, git.GitDir()) {
			infoLogger.Printf("configuration already present at %s", config.ConfigPath(git.GitDir()))
		} else {
			baseline, berr := config.GlobalSettings(viper.GetViper())
			if berr != nil {
				wrapFatalln("read global settings", berr)
				return
			}
			doc := model.NewDocument()
			doc.Settings = baseline
			if err = config.Save(fs, git.GitDir(), doc); err != nil {
				wrapFatalln("write configuration", err)
				return
			}
			infoLogger.Printf("created %s", config.ConfigPath(git.GitDir()))
		}

		results, err := hooks.Install(fs, git.HooksDir(), hooks.WithExecutable(veilFlags.hooks.executable))
		if err != nil {
			wrapFatalln("install hooks", err)
			return
		}
		for _, res := range results {
			infoLogger.Printf("hook %s: %s", res.Hook, res.Action)
		}
	},
}

func init() {
	addExecutableFlag(initCmd)
	rootCmd.AddCommand(initCmd)
}
