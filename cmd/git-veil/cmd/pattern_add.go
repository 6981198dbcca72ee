package cmd

import (
	"github.com/oneconcern/git-veil/pkg/model"
	"github.com/oneconcern/git-veil/pkg/pattern"
	"github.com/spf13/cobra"
)

var patternAddCmd = &cobra.Command{
	Use:   "add KIND SPEC",
	Short: "Add an ignore pattern",
	Long: `Adds a pattern to the repository configuration. KIND is one of
line-regex, line-number, line-range or block-start-end. SPEC is the kind's
specification: a regular expression searched in each line, a 1-indexed line
number, an inclusive "start-end" range, or two regular expressions joined
with "|||" marking the first and last line of a block.

The spec is compiled before anything is written, so a malformed pattern
never reaches the configuration. Example:

  git-veil pattern add line-regex 'API_KEY\s*=' --file src/config.py`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := model.ParsePatternKind(args[0])
		if err != nil {
			wrapFatalln("unknown pattern kind", err)
			return
		}

		p := model.NewIgnorePattern(kind, args[1], model.PatternFile(veilFlags.pattern.file))
		if _, err = pattern.Compile(p); err != nil {
			wrapFatalln("pattern does not compile", err)
			return
		}

		w, err := newWorkspace()
		if err != nil {
			wrapFatalln("load configuration", err)
			return
		}
		w.doc.Add(p)
		if err = w.save(); err != nil {
			wrapFatalln("write configuration", err)
			return
		}
		infoLogger.Printf("added %s", p)
	},
}

func init() {
	addPatternFileFlag(patternAddCmd)
	patternCmd.AddCommand(patternAddCmd)
}
