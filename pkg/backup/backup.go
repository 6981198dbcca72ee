// Package backup persists pre-strip snapshots of working files.
//
// Records are written through a storage.Store before the working copy is
// ever modified, and only removed once restoration is confirmed. Stores
// put atomically, so a crash at any point leaves either the previous
// record set or the new one, never a torn manifest.
package backup

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/oneconcern/git-veil/pkg/backup/status"
	"github.com/oneconcern/git-veil/pkg/model"
	"github.com/oneconcern/git-veil/pkg/storage"
	"github.com/oneconcern/git-veil/pkg/storage/localfs"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// NewStore builds the storage backend for a backup strategy.
//
// The tempfile strategy roots the store inside the git directory, where
// records survive across hook processes. The memory strategy lives and
// dies with the calling process.
func NewStore(strategy model.BackupStrategy, fs afero.Fs, gitDir string) (storage.Store, error) {
	switch strategy {
	case model.BackupMemory:
		return localfs.New(afero.NewMemMapFs(), "")
	case model.BackupTempfile:
		return localfs.New(fs, filepath.Join(gitDir, model.MetaDirName))
	default:
		return nil, fmt.Errorf("unknown backup strategy: %q", strategy)
	}
}

// Manifest tracks backup records through a storage.Store
type Manifest struct {
	store storage.Store
	l     *zap.Logger
}

// New builds a manifest over a store
func New(store storage.Store, opts ...Option) *Manifest {
	m := &Manifest{
		store: store,
		l:     zap.NewNop(),
	}
	for _, apply := range opts {
		apply(m)
	}
	return m
}

func (m *Manifest) String() string {
	return "manifest@" + m.store.String()
}

// Put persists a record durably. It refuses to clobber an existing
// pending record: the first snapshot of a file is the one that holds
// its true original bytes.
func (m *Manifest) Put(ctx context.Context, r *model.BackupRecord) error {
	key := model.PendingKey(r.Path)
	has, err := m.store.Has(ctx, key)
	if err != nil {
		return status.ErrPutRecord.Wrap(err)
	}
	if has {
		return status.ErrRecordExists.Wrap(fmt.Errorf("path %q", r.Path))
	}
	b, err := model.MarshalRecord(r)
	if err != nil {
		return status.ErrPutRecord.Wrap(err)
	}
	if err := m.store.Put(ctx, key, bytes.NewReader(b)); err != nil {
		return status.ErrPutRecord.Wrap(err)
	}
	m.l.Debug("backup record persisted",
		zap.String("path", r.Path),
		zap.String("scope", r.Scope),
		zap.Int("bytes", len(r.Original)),
	)
	return nil
}

// Has reports whether a pending record exists for a path
func (m *Manifest) Has(ctx context.Context, path string) (bool, error) {
	return m.store.Has(ctx, model.PendingKey(path))
}

// Get retrieves the pending record for a path
func (m *Manifest) Get(ctx context.Context, path string) (*model.BackupRecord, error) {
	b, err := storage.ReadAll(ctx, m.store, model.PendingKey(path))
	if err != nil {
		return nil, status.ErrNoBackup.Wrap(fmt.Errorf("path %q: %v", path, err))
	}
	r, err := model.UnmarshalRecord(b)
	if err != nil {
		return nil, status.ErrCorruptRecord.Wrap(fmt.Errorf("path %q: %v", path, err))
	}
	return r, nil
}

// Delete removes the pending record for a path
func (m *Manifest) Delete(ctx context.Context, path string) error {
	return m.store.Delete(ctx, model.PendingKey(path))
}

// Pending lists all pending records, oldest first
func (m *Manifest) Pending(ctx context.Context) (model.BackupRecords, error) {
	keys, err := m.store.KeysPrefix(ctx, model.PendingKeyPrefix())
	if err != nil {
		return nil, err
	}
	records := make(model.BackupRecords, 0, len(keys))
	for _, key := range keys {
		b, err := storage.ReadAll(ctx, m.store, key)
		if err != nil {
			return nil, status.ErrNoBackup.Wrap(fmt.Errorf("key %q: %v", key, err))
		}
		r, err := model.UnmarshalRecord(b)
		if err != nil {
			return nil, status.ErrCorruptRecord.Wrap(fmt.Errorf("key %q: %v", key, err))
		}
		records = append(records, *r)
	}
	sort.Sort(records)
	return records, nil
}

// Finalize settles a record after a confirmed restore. With keepArchive
// the record is preserved, marked restored, under the archive area of
// its scope; otherwise it is simply removed. Either way the pending
// entry goes away last, so a crash mid-finalize leaves the record
// recoverable rather than lost.
func (m *Manifest) Finalize(ctx context.Context, r *model.BackupRecord, keepArchive bool) error {
	if keepArchive {
		archived := *r
		archived.State = model.RecordRestored
		b, err := model.MarshalRecord(&archived)
		if err != nil {
			return status.ErrArchive.Wrap(err)
		}
		if err := m.store.Put(ctx, model.ArchiveKey(r.Scope, r.Path), bytes.NewReader(b)); err != nil {
			return status.ErrArchive.Wrap(err)
		}
	}
	if err := m.store.Delete(ctx, model.PendingKey(r.Path)); err != nil {
		return status.ErrArchive.Wrap(err)
	}
	m.l.Debug("backup record finalized",
		zap.String("path", r.Path),
		zap.Bool("archived", keepArchive),
	)
	return nil
}
