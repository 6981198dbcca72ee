package cmd

import (
	"github.com/oneconcern/git-veil/pkg/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration for problems",
	Long: `Lints the configuration: patterns that do not compile, patterns
matching every line, duplicate line number targets, missing ids, and
configured files absent from the working tree. Exits non zero when anything
is found.`,
	Run: func(cmd *cobra.Command, args []string) {
		w, err := newWorkspace()
		if err != nil {
			wrapFatalln("load configuration", err)
			return
		}

		issues := config.Lint(w.doc)
		issues = append(issues, config.CheckFiles(w.fs, w.git.Root(), w.doc)...)
		if len(issues) == 0 {
			infoLogger.Println("configuration is valid")
			return
		}

		w.rep.Issues(issues)
		osExit(1)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
