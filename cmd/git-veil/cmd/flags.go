// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/git-veil/pkg/model"
	"github.com/spf13/cobra"
)

type flagsT struct {
	root struct {
		logLevel string
		repoPath string
	}
	run struct {
		dryRun bool
		strict bool
	}
	pattern struct {
		file string
	}
	status struct {
		verbose bool
	}
	restore struct {
		force bool
	}
	imp struct {
		format string
		target string
	}
	hooks struct {
		executable string
	}
}

var veilFlags = flagsT{}

func addLogLevelFlag(cmd *cobra.Command) string {
	logLevel := "log-level"
	cmd.PersistentFlags().StringVar(&veilFlags.root.logLevel, logLevel, "warn",
		"The log level for diagnostics: debug, info, warn or error")
	return logLevel
}

func addRepoFlag(cmd *cobra.Command) string {
	repo := "repo"
	cmd.PersistentFlags().StringVar(&veilFlags.root.repoPath, repo, "",
		"A path inside the repository to operate on. Defaults to the current directory")
	return repo
}

func addDryRunFlag(cmd *cobra.Command) string {
	dryRun := "dry-run"
	cmd.Flags().BoolVar(&veilFlags.run.dryRun, dryRun, false,
		"Report what would change without touching any file")
	return dryRun
}

func addStrictFlag(cmd *cobra.Command) string {
	strict := "strict"
	cmd.Flags().BoolVar(&veilFlags.run.strict, strict, false,
		"Fail the whole run when any staged file cannot be processed")
	return strict
}

func addPatternFileFlag(cmd *cobra.Command) string {
	file := "file"
	cmd.Flags().StringVar(&veilFlags.pattern.file, file, model.AllFiles,
		"The file the pattern applies to, relative to the repository root. Defaults to every staged file")
	return file
}

func addForceFlag(cmd *cobra.Command) string {
	force := "force"
	cmd.Flags().BoolVar(&veilFlags.restore.force, force, false,
		"Restore over working tree content that diverged after stripping")
	return force
}

func addVerboseFlag(cmd *cobra.Command) string {
	verbose := "verbose"
	cmd.Flags().BoolVarP(&veilFlags.status.verbose, verbose, "v", false,
		"Also list files with nothing to strip, with per pattern detail")
	return verbose
}

func addFormatFlag(cmd *cobra.Command) string {
	format := "format"
	cmd.Flags().StringVar(&veilFlags.imp.format, format, "rules",
		"The source format: gitignore or rules")
	return format
}

func addTargetFlag(cmd *cobra.Command) string {
	target := "target"
	cmd.Flags().StringVar(&veilFlags.imp.target, target, "",
		"The file imported gitignore patterns apply to. Required for --format gitignore")
	return target
}

func addExecutableFlag(cmd *cobra.Command) string {
	executable := "executable"
	cmd.Flags().StringVar(&veilFlags.hooks.executable, executable, "git-veil",
		"The binary name installed hook scripts invoke")
	return executable
}
