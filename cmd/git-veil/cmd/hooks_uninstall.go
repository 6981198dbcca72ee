package cmd

import (
	"github.com/oneconcern/git-veil/pkg/hooks"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var hooksUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the managed hook scripts",
	Long: `Removes hook scripts written by this tool, putting back any .backup
saved at install time. Foreign hook scripts are left untouched.`,
	Run: func(cmd *cobra.Command, args []string) {
		git, err := openRepo()
		if err != nil {
			wrapFatalln("open repository", err)
			return
		}

		results, err := hooks.Uninstall(afero.NewOsFs(), git.HooksDir())
		if err != nil {
			wrapFatalln("uninstall hooks", err)
			return
		}
		for _, res := range results {
			infoLogger.Printf("hook %s: %s", res.Hook, res.Action)
		}
	},
}

func init() {
	hooksCmd.AddCommand(hooksUninstallCmd)
}
