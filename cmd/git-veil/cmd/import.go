package cmd

import (
	"github.com/oneconcern/git-veil/pkg/importer"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import patterns from an external file",
	Long: `Imports patterns into the configuration. Two formats are supported:

  gitignore   glob lines converted to line-regex patterns, all applying to
              the file given with --target
  rules       "[file]" sections holding "kind: spec" lines, one pattern each

Lines that cannot be converted are reported and skipped; nothing is written
when the source yields no pattern at all.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, err := importer.ParseFormat(veilFlags.imp.format)
		if err != nil {
			wrapFatalln("unknown import format", err)
			return
		}

		w, err := newWorkspace()
		if err != nil {
			wrapFatalln("load configuration", err)
			return
		}

		imp, err := importer.ParseFile(w.fs, args[0], format,
			importer.WithTarget(veilFlags.imp.target))
		if err != nil {
			wrapFatalln("read import source", err)
			return
		}
		for _, warning := range imp.Warnings {
			w.rep.Warning("%s", warning)
		}
		if len(imp.Patterns) == 0 {
			wrapFatalWithCodef(1, "nothing to import from %s", args[0])
			return
		}

		for _, p := range imp.Patterns {
			w.doc.Add(p)
		}
		if err = w.save(); err != nil {
			wrapFatalln("write configuration", err)
			return
		}
		infoLogger.Printf("imported %d pattern(s) from %s", len(imp.Patterns), args[0])
	},
}

func init() {
	addFormatFlag(importCmd)
	addTargetFlag(importCmd)
	rootCmd.AddCommand(importCmd)
}
