package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore [PATH ...]",
	Short: "Manually restore backed up files",
	Long: `Restores pending backups outside the hook cycle, e.g. after a crash
or a refused post-commit restore. Without arguments every pending backup is
restored; with paths only those.

A working tree file edited after stripping refuses its restore unless
--force is given, in which case the backup wins.`,
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

		outcome, err := engine.Restore(context.Background(), args, veilFlags.restore.force)
		if err != nil {
			wrapFatalln("restore", err)
			return
		}
		infoLogger.Printf("restored %d file(s)", outcome.Restored)
	},
}

func init() {
	addForceFlag(restoreCmd)
	rootCmd.AddCommand(restoreCmd)
}
