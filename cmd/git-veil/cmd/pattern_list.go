package cmd

import (
	"github.com/spf13/cobra"
)

var patternListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured ignore patterns",
	Long: `Lists every configured pattern with its file scope, id, kind and
spec, in application order.`,
	Run: func(cmd *cobra.Command, args []string) {
		w, err := newWorkspace()
		if err != nil {
			wrapFatalln("load configuration", err)
			return
		}

		if len(w.doc.Patterns) == 0 {
			infoLogger.Println("no patterns configured")
			return
		}
		for _, p := range w.doc.Patterns {
			infoLogger.Printf("%s", p)
		}
	},
}

func init() {
	patternCmd.AddCommand(patternListCmd)
}
