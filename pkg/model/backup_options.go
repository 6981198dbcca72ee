package model

// BackupRecordOption defines an option to build a BackupRecord
type BackupRecordOption func(*BackupRecord)

// RecordScope ties the record to a given pre-commit run
func RecordScope(scope string) BackupRecordOption {
	return func(r *BackupRecord) {
		if scope != "" {
			r.Scope = scope
		}
	}
}

// RecordStrategy sets the strategy owning the record
func RecordStrategy(s BackupStrategy) BackupRecordOption {
	return func(r *BackupRecord) {
		if s.IsValid() {
			r.Strategy = s
		}
	}
}

// RecordStrippedCRC registers the checksum of the stripped content replacing the original
func RecordStrippedCRC(crc uint32) BackupRecordOption {
	return func(r *BackupRecord) {
		r.StrippedCRC = crc
	}
}

// RecordIgnoredLines documents which 1-indexed lines were stripped
func RecordIgnoredLines(lines []int) BackupRecordOption {
	return func(r *BackupRecord) {
		r.IgnoredLines = lines
	}
}

// RecordClone clones from a BackupRecord
func RecordClone(m BackupRecord) BackupRecordOption {
	return func(r *BackupRecord) {
		*r = m
	}
}
