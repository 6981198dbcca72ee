// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "git-veil",
	Short: "git-veil keeps configured lines out of your commits",
	Long: `git-veil strips configured lines (secrets, debug toggles, temporary
edits) from staged files right before a commit and puts them back, byte for
byte, right after. The working tree keeps the full content at all times; only
the committed history is filtered.

Patterns and settings live in the repository's git directory and never get
committed. Run "git-veil init" once, then commit as usual.
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)
	addLogLevelFlag(rootCmd)
	addRepoFlag(rootCmd)
}

// initConfig reads user wide defaults and GITVEIL_* environment variables.
// Repository local settings take precedence when the document is loaded.
func initConfig() {
	if cfg := os.Getenv("GITVEIL_CONFIG"); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/git-veil")
		viper.SetConfigName("git-veil")
	}

	viper.SetEnvPrefix("gitveil")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
