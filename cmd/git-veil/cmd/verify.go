package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that no staged content matches a configured pattern",
	Long: `Re-evaluates every configured pattern against the staged content and
fails if anything still matches. Wired as the pre-push hook, this catches
commits made with hooks bypassed (git commit --no-verify) before they leave
the machine.`,
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

		if _, err = engine.Verify(context.Background()); err != nil {
			wrapFatalWithCodef(1, "%v", err)
			return
		}
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
