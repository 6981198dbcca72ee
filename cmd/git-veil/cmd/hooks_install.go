package cmd

import (
	"github.com/oneconcern/git-veil/pkg/hooks"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var hooksInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the managed hook scripts",
	Long: `Writes the pre-commit, post-commit, post-merge and pre-push scripts
into the repository's hooks directory. A pre-existing foreign hook is saved
with a .backup suffix before being replaced.`,
	Run: func(cmd *cobra.Command, args []string) {
		git, err := openRepo()
		if err != nil {
			wrapFatalln("open repository", err)
			return
		}

		results, err := hooks.Install(afero.NewOsFs(), git.HooksDir(),
			hooks.WithExecutable(veilFlags.hooks.executable))
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
	addExecutableFlag(hooksInstallCmd)
	hooksCmd.AddCommand(hooksInstallCmd)
}
