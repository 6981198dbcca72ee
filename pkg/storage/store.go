// Copyright © 2018 One Concern

package storage

import (
	"context"
	"io"
)

// Store implementations know how to write entries to a K/V store.
//
// Typically this is something file system-like. Keys may contain forward
// slashes, which implementations are free to map to nested directories.
// Implementations of this interface are assumed to be fairly simple.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)
	Get(context.Context, string) (io.ReadCloser, error)
	Put(context.Context, string, io.Reader) error
	Delete(context.Context, string) error
	Keys(context.Context) ([]string, error)
	KeysPrefix(context.Context, string) ([]string, error)
	Clear(context.Context) error
}

// ReadAll fetches a key from a store and reads it fully
func ReadAll(ctx context.Context, store Store, key string) ([]byte, error) {
	reader, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = reader.Close()
	}()
	return io.ReadAll(reader)
}
