// Copyright © 2018 One Concern

package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/oneconcern/git-veil/pkg/storage"
	"github.com/oneconcern/git-veil/pkg/storage/status"
	"github.com/spf13/afero"
)

/* local file system backed store.
 *
 * Put()s are atomic via afero.Fs.Rename(): entries are first written to a
 * staging area, then Rename()d into place. A reader of a key therefore
 * observes either the previous content or the new one, never a torn write.
 */

/* staging area key prefix and helper functions */
const (
	nestedPutStageName = ".put-stage"
)

func maybeInvalidKey(key string) error {
	pathComponents := strings.Split(strings.TrimLeft(key, "/"), "/")
	if len(pathComponents) == 0 {
		return nil
	}
	if pathComponents[0] == nestedPutStageName {
		return status.ErrInvalidKey.Wrap(
			fmt.Errorf("key %q conflicts with put staging area name %q", key, nestedPutStageName))
	}
	return nil
}

// New creates a new local file system backed store rooted at dir.
// When dir is empty the store occupies the whole of fs.
func New(fs afero.Fs, dir string) (storage.Store, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if dir != "" {
		fs = afero.NewBasePathFs(fs, dir)
	}
	if err := fs.MkdirAll(nestedPutStageName, 0700); err != nil {
		return nil, status.ErrStorageAPI.Wrap(
			fmt.Errorf("ensuring put staging directory: %v", err))
	}
	return &localFS{fs: fs}, nil
}

type localFS struct {
	fs afero.Fs
}

func (l *localFS) Has(ctx context.Context, key string) (bool, error) {
	if err := maybeInvalidKey(key); err != nil {
		return false, err
	}
	fi, err := l.fs.Stat(fromSlash(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !fi.IsDir(), nil
}

func (l *localFS) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	has, err := l.Has(ctx, key)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, status.ErrNotFound.Wrap(fmt.Errorf("get %q", key))
	}
	return l.fs.Open(fromSlash(key))
}

func (l *localFS) Put(ctx context.Context, key string, source io.Reader) error {
	if err := maybeInvalidKey(key); err != nil {
		return err
	}
	target := fromSlash(key)
	putStageKey := filepath.Join(nestedPutStageName, target)
	if err := l.fs.MkdirAll(filepath.Dir(putStageKey), 0700); err != nil {
		return fmt.Errorf("ensuring staging directories for %q: %v", key, err)
	}
	staged, err := l.fs.OpenFile(putStageKey, os.O_CREATE|os.O_TRUNC|os.O_WRONLY|os.O_SYNC, 0600)
	if err != nil {
		return fmt.Errorf("create staged record for %q: %v", key, err)
	}
	if _, err = io.Copy(staged, source); err != nil {
		_ = staged.Close()
		return fmt.Errorf("write staged record for %q: %v", key, err)
	}
	if err = staged.Close(); err != nil {
		return fmt.Errorf("close staged record for %q: %v", key, err)
	}
	/* Rename() doesn't create directories automatically */
	if dir := filepath.Dir(target); dir != "." {
		if err := l.fs.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("ensuring directories for %q: %v", key, err)
		}
	}
	return l.fs.Rename(putStageKey, target)
}

func (l *localFS) Delete(ctx context.Context, key string) error {
	if err := maybeInvalidKey(key); err != nil {
		return err
	}
	if err := l.fs.Remove(fromSlash(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %q: %v", key, err)
	}
	return nil
}

func (l *localFS) Keys(ctx context.Context) ([]string, error) {
	return l.KeysPrefix(ctx, "")
}

func (l *localFS) KeysPrefix(ctx context.Context, prefix string) ([]string, error) {
	const root = "."
	var res []string
	e := afero.Walk(l.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if info.IsDir() {
			if filepath.Base(path) == nestedPutStageName {
				return filepath.SkipDir
			}
			return nil
		}
		key := filepath.ToSlash(path)
		if prefix == "" || strings.HasPrefix(key, prefix) {
			res = append(res, key)
		}
		return nil
	})
	if e != nil {
		return nil, e
	}
	return res, nil
}

func (l *localFS) Clear(ctx context.Context) error {
	if err := l.fs.RemoveAll("/"); err != nil {
		return err
	}
	// the store root and its staging area survive a clear
	return l.fs.MkdirAll(nestedPutStageName, 0700)
}

func (l *localFS) String() string {
	const localfs = "localfs"
	switch fs := l.fs.(type) {
	case *afero.BasePathFs:
		pp, err := fs.RealPath("")
		if err != nil {
			return localfs
		}
		return localfs + "@" + pp
	default:
		return localfs
	}
}

func fromSlash(key string) string {
	return filepath.FromSlash(strings.TrimLeft(key, "/"))
}
