package cmd

import (
	"github.com/spf13/cobra"
)

var patternRemoveCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove an ignore pattern by id",
	Long: `Removes the pattern with the given id from the configuration. Ids are
listed by "git-veil pattern list".`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		w, err := newWorkspace()
		if err != nil {
			wrapFatalln("load configuration", err)
			return
		}

		removed, ok := w.doc.Remove(args[0])
		if !ok {
			wrapFatalWithCodef(1, "no pattern with id %s", args[0])
			return
		}
		if err = w.save(); err != nil {
			wrapFatalln("write configuration", err)
			return
		}
		infoLogger.Printf("removed %s", removed)
	},
}

func init() {
	patternCmd.AddCommand(patternRemoveCmd)
}
