package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var postCommitCmd = &cobra.Command{
	Use:   "post-commit",
	Short: "Restore original content after a commit",
	Long: `The post-commit and post-merge hook entry point. Writes the backed
up original bytes over every file stripped by the preceding pre-commit run.

A file edited between strip and restore fails its restore loudly and keeps
its backup; resolve with "git-veil restore --force". With --dry-run the
pending restores are listed without touching anything.`,
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

		if _, err = engine.PostCommit(context.Background(), veilFlags.run.dryRun); err != nil {
			wrapFatalln("post-commit", err)
			return
		}
	},
}

func init() {
	addDryRunFlag(postCommitCmd)
	rootCmd.AddCommand(postCommitCmd)
}
