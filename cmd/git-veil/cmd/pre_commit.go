package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var preCommitCmd = &cobra.Command{
	Use:   "pre-commit",
	Short: "Strip ignored lines from staged files",
	Long: `The pre-commit hook entry point. Backs up every staged file with
matching lines, writes the filtered content and re-stages it. A non zero
exit aborts the commit and rolls the working tree back.

Interrupted runs left behind by an earlier invocation are restored before
any new stripping. With --dry-run nothing is modified and a diff preview of
what would be stripped is printed instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		w, err := newWorkspace()
		if err != nil {
			wrapFatalln("setup", err)
			return
		}
		engine, err := w.engine()
		if err != nil {
			wrapFatalln("initialize engine", err)
			return
		}

		if _, err = engine.PreCommit(context.Background(), veilFlags.run.dryRun); err != nil {
			wrapFatalln("pre-commit", err)
			return
		}
	},
}

func init() {
	addDryRunFlag(preCommitCmd)
	addStrictFlag(preCommitCmd)
	rootCmd.AddCommand(preCommitCmd)
}
