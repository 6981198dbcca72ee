package model

import (
	"fmt"
	"strings"
)

// BackupStrategy selects where strip time backups are kept
type BackupStrategy string

const (
	// BackupMemory keeps backups in process memory. Only safe when a single
	// process runs the whole strip and restore cycle, as in dry runs or tests.
	BackupMemory BackupStrategy = "memory"

	// BackupTempfile keeps backups under the git directory, where they survive
	// across hook processes and crashes. This is the default.
	BackupTempfile BackupStrategy = "tempfile"
)

// IsValid checks the value of a backup strategy
func (b BackupStrategy) IsValid() bool {
	switch b {
	case BackupMemory, BackupTempfile:
		return true
	default:
		return false
	}
}

func (b BackupStrategy) String() string {
	return string(b)
}

// ParseBackupStrategy resolves user input into a BackupStrategy
func ParseBackupStrategy(s string) (BackupStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return BackupMemory, nil
	case "tempfile", "temp-file":
		return BackupTempfile, nil
	default:
		return "", fmt.Errorf("unknown backup strategy: %q", s)
	}
}

// Settings are the repository wide toggles of the tool
type Settings struct {
	BackupStrategy BackupStrategy `json:"backup_strategy" yaml:"backup_strategy" toml:"backup_strategy"`
	AutoCleanup    bool           `json:"auto_cleanup" yaml:"auto_cleanup" toml:"auto_cleanup"`
	Verbose        bool           `json:"verbose" yaml:"verbose" toml:"verbose"`
	FunnyMode      bool           `json:"funny_mode" yaml:"funny_mode" toml:"funny_mode"`
	_              struct{}
}

// DefaultSettings returns the settings a fresh repository starts with
func DefaultSettings() Settings {
	return Settings{
		BackupStrategy: BackupTempfile,
		AutoCleanup:    true,
	}
}
