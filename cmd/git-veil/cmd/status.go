package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what would be ignored and what is pending",
	Long: `Shows the configuration in effect, the orchestrator state, per file
match counts over the working tree and any backup still awaiting restore.
With --verbose, files with nothing to strip and per pattern detail are
listed too.`,
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

		data, err := engine.Survey(context.Background())
		if err != nil {
			wrapFatalln("status", err)
			return
		}
		w.rep.Status(*data)
	},
}

func init() {
	addVerboseFlag(statusCmd)
	rootCmd.AddCommand(statusCmd)
}
