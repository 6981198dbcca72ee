package model

import (
	"fmt"
	"strings"
)

// Layout of the veil metadata area, kept under the repository's git directory
// so none of it can ever be committed:
//
//   .git/veil.toml          configuration document
//   .git/veil/              backup store root
//     state.yaml            durable state machine snapshot
//     pending/              one record per stripped file, removed on restore
//     archive/{scope}/      restored records kept for audit when auto cleanup is off

const (
	// ConfigFileName is the configuration document name inside the git directory
	ConfigFileName = "veil.toml"

	// MetaDirName is the backup store directory name inside the git directory
	MetaDirName = "veil"

	stateFile     = "state.yaml"
	pendingPrefix = "pending"
	archivePrefix = "archive"
	recordExt     = ".yaml"
)

// StateKey yields the store key of the state machine snapshot
func StateKey() string {
	return stateFile
}

// PendingKeyPrefix yields the store key prefix under which pending records live
func PendingKeyPrefix() string {
	return pendingPrefix + "/"
}

// PendingKey yields the store key of the pending record for a repository path
func PendingKey(path string) string {
	return pendingPrefix + "/" + EscapePathKey(path) + recordExt
}

// ArchiveKey yields the store key of an archived record for a path in a given scope
func ArchiveKey(scope, path string) string {
	return archivePrefix + "/" + scope + "/" + EscapePathKey(path) + recordExt
}

// PathFromPendingKey recovers the repository path encoded in a pending record key
func PathFromPendingKey(key string) (string, error) {
	trimmed := strings.TrimPrefix(key, pendingPrefix+"/")
	if trimmed == key || !strings.HasSuffix(trimmed, recordExt) {
		return "", fmt.Errorf("not a pending record key: %q", key)
	}
	return UnescapePathKey(strings.TrimSuffix(trimmed, recordExt))
}

var keyEscaper = strings.NewReplacer("%", "%25", "/", "%2F")

// EscapePathKey flattens a repository relative path into a single key component.
// Percent escaping keeps distinct paths distinct: substituting separators with
// underscores would conflate a/b.txt with a_b.txt.
func EscapePathKey(path string) string {
	return keyEscaper.Replace(path)
}

// UnescapePathKey reverses EscapePathKey
func UnescapePathKey(key string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+3 > len(key) {
			return "", fmt.Errorf("truncated escape in key %q", key)
		}
		switch strings.ToUpper(key[i+1 : i+3]) {
		case "25":
			b.WriteByte('%')
		case "2F":
			b.WriteByte('/')
		default:
			return "", fmt.Errorf("invalid escape %q in key %q", key[i:i+3], key)
		}
		i += 2
	}
	return b.String(), nil
}
