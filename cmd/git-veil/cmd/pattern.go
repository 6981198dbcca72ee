package cmd

import (
	"github.com/spf13/cobra"
)

var patternCmd = &cobra.Command{
	Use:   "pattern",
	Short: "Commands to manage ignore patterns",
	Long: `Commands to manage the ignore patterns of this repository. Patterns
select lines by regular expression, line number, line range or start/end
block markers, scoped to one file or to every staged file.`,
}

func init() {
	rootCmd.AddCommand(patternCmd)
}
