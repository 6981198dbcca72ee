package cmd

import (
	"github.com/spf13/cobra"
)

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Commands to manage the git hook scripts",
	Long: `Commands to manage the hook scripts backing the strip and restore
cycle: pre-commit, post-commit, post-merge and pre-push.`,
}

func init() {
	rootCmd.AddCommand(hooksCmd)
}
