package cmd

import (
	"bytes"

	"github.com/spf13/cobra"
)

// set by the release build via ldflags
var (
	Version   string
	BuildDate string
	GitCommit string
	GitState  string
)

type VersionInfo struct {
	Version   string `json:"version,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
	GitCommit string `json:"gitCommit,omitempty"`
	GitState  string `json:"gitState,omitempty"`
}

func NewVersionInfo() VersionInfo {
	ver := VersionInfo{
		Version:   "dev",
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GitState:  "",
	}
	if Version != "" {
		ver.Version = Version
		ver.GitState = "clean"
	}
	if GitState != "" {
		ver.GitState = GitState
	}
	return ver
}

func (v VersionInfo) String() string {
	var buf bytes.Buffer
	buf.WriteString("Version: ")
	buf.WriteString(v.Version)
	buf.WriteString("\n")
	buf.WriteString("Build date: ")
	buf.WriteString(v.BuildDate)
	buf.WriteString("\n")
	buf.WriteString("Commit: ")
	buf.WriteString(v.GitCommit)
	buf.WriteString("\n")
	buf.WriteString("Working tree: ")
	buf.WriteString(v.GitState)
	buf.WriteString("\n")
	return buf.String()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of git-veil",
	Long: `Prints the version of git-veil: semver, build date, the git commit
the binary was built from and whether the build tree was clean.`,
	Run: func(cmd *cobra.Command, args []string) {
		infoLogger.Print(NewVersionInfo().String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
