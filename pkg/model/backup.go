package model

import (
	"fmt"
	"hash/crc32"
	"time"

	"gopkg.in/yaml.v2"
)

// RecordState tracks a backup record through its lifecycle
type RecordState string

const (
	// RecordPending marks a record whose file is still stripped in the working tree
	RecordPending RecordState = "pending"

	// RecordRestored marks a record whose original bytes are back in the working tree. This is a terminal state.
	RecordRestored RecordState = "restored"
)

// IsValid checks the value of a record state
func (s RecordState) IsValid() bool {
	switch s {
	case RecordPending, RecordRestored:
		return true
	default:
		return false
	}
}

func (s RecordState) String() string {
	return string(s)
}

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// ContentCRC is the checksum used to detect content divergence between strip and restore
func ContentCRC(b []byte) uint32 {
	return crc32.Checksum(b, castagnoli)
}

// BackupRecord captures the exact bytes of one file before its ignored lines are stripped
type BackupRecord struct {
	Path         string         `json:"path" yaml:"path"`
	Original     []byte         `json:"original" yaml:"original"`
	OriginalCRC  uint32         `json:"originalCRC" yaml:"originalCRC"`
	StrippedCRC  uint32         `json:"strippedCRC,omitempty" yaml:"strippedCRC,omitempty"` // checksum of the stripped bytes written in place of the original
	IgnoredLines []int          `json:"ignoredLines,omitempty" yaml:"ignoredLines,omitempty"`
	Strategy     BackupStrategy `json:"strategy" yaml:"strategy"`
	Scope        string         `json:"scope" yaml:"scope"` // ties all records of one pre-commit run together
	State        RecordState    `json:"state" yaml:"state"`
	Timestamp    time.Time      `json:"timestamp" yaml:"timestamp"`
	_            struct{}
}

// BackupRecords is a sortable slice of BackupRecord
type BackupRecords []BackupRecord

func (b BackupRecords) Swap(i, j int) {
	b[i], b[j] = b[j], b[i]
}
func (b BackupRecords) Len() int {
	return len(b)
}
func (b BackupRecords) Less(i, j int) bool {
	if !b[i].Timestamp.Equal(b[j].Timestamp) {
		return b[i].Timestamp.Before(b[j].Timestamp)
	}
	return b[i].Path < b[j].Path
}

func defaultBackupRecord() *BackupRecord {
	return &BackupRecord{
		Strategy:  BackupTempfile,
		Scope:     newID(),
		State:     RecordPending,
		Timestamp: time.Now().UTC(),
	}
}

// NewBackupRecord captures the original bytes of path ahead of any modification
func NewBackupRecord(path string, original []byte, opts ...BackupRecordOption) *BackupRecord {
	r := defaultBackupRecord()
	r.Path = path
	r.Original = original
	r.OriginalCRC = ContentCRC(original)
	for _, apply := range opts {
		apply(r)
	}
	return r
}

// NewScopeID mints the identifier shared by all records of one pre-commit run.
// Scope IDs are ksuids, hence sortable by creation time.
func NewScopeID() string {
	return newID()
}

// MarshalRecord serializes a backup record to YAML
func MarshalRecord(r *BackupRecord) ([]byte, error) {
	return yaml.Marshal(r)
}

// UnmarshalRecord deserializes a backup record from YAML
func UnmarshalRecord(b []byte) (*BackupRecord, error) {
	if b == nil {
		return nil, fmt.Errorf("received nil record to unmarshal")
	}
	var r BackupRecord
	err := yaml.Unmarshal(b, &r)
	return &r, err
}
