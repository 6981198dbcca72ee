// Copyright © 2018 One Concern

package localfs

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/oneconcern/git-veil/pkg/errors"
	"github.com/oneconcern/git-veil/pkg/storage"
	"github.com/oneconcern/git-veil/pkg/storage/status"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := New(afero.NewMemMapFs(), "veil")
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "pending/one.yaml", strings.NewReader("this is the text")))
	require.NoError(t, store.Put(ctx, "pending/two.yaml", strings.NewReader("this is the text for another thing")))
	require.NoError(t, store.Put(ctx, "state.yaml", strings.NewReader("state: idle")))
	return store
}

func TestHas(t *testing.T) {
	bs := setupStore(t)

	has, err := bs.Has(context.Background(), "pending/one.yaml")
	require.NoError(t, err)
	require.True(t, has)

	has, err = bs.Has(context.Background(), "pending/three.yaml")
	require.NoError(t, err)
	require.False(t, has)

	// a directory is not a key
	has, err = bs.Has(context.Background(), "pending")
	require.NoError(t, err)
	require.False(t, has)
}

func TestGet(t *testing.T) {
	bs := setupStore(t)

	rdr, err := bs.Get(context.Background(), "pending/one.yaml")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())
	assert.Equal(t, "this is the text", string(b))

	_, err = bs.Get(context.Background(), "pending/three.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNotFound))
}

func TestPutOverwrites(t *testing.T) {
	bs := setupStore(t)
	ctx := context.Background()

	require.NoError(t, bs.Put(ctx, "state.yaml", strings.NewReader("state: stripping")))

	b, err := storage.ReadAll(ctx, bs, "state.yaml")
	require.NoError(t, err)
	assert.Equal(t, "state: stripping", string(b))
}

func TestKeys(t *testing.T) {
	bs := setupStore(t)

	keys, err := bs.Keys(context.Background())
	require.NoError(t, err)
	require.Len(t, keys, 3)

	// the staging area never leaks into key listings
	for _, k := range keys {
		assert.NotContains(t, k, nestedPutStageName)
	}
}

func TestKeysPrefix(t *testing.T) {
	bs := setupStore(t)

	keys, err := bs.KeysPrefix(context.Background(), "pending/")
	require.NoError(t, err)
	require.Len(t, keys, 2)
	for _, k := range keys {
		assert.True(t, strings.HasPrefix(k, "pending/"))
	}
}

func TestDelete(t *testing.T) {
	bs := setupStore(t)
	ctx := context.Background()

	require.NoError(t, bs.Delete(ctx, "pending/two.yaml"))
	k, _ := bs.Keys(ctx)
	assert.Len(t, k, 2)

	// deleting an absent key is not an error
	require.NoError(t, bs.Delete(ctx, "pending/two.yaml"))
}

func TestClear(t *testing.T) {
	bs := setupStore(t)
	ctx := context.Background()

	require.NoError(t, bs.Clear(ctx))
	keys, err := bs.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	// the store remains usable after a clear
	require.NoError(t, bs.Put(ctx, "state.yaml", strings.NewReader("state: idle")))
	has, err := bs.Has(ctx, "state.yaml")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestInvalidKey(t *testing.T) {
	bs := setupStore(t)
	ctx := context.Background()

	err := bs.Put(ctx, nestedPutStageName+"/sneaky", strings.NewReader("nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrInvalidKey))

	_, err = bs.Get(ctx, nestedPutStageName+"/sneaky")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrInvalidKey))
}

func TestString(t *testing.T) {
	bs := setupStore(t)
	assert.Contains(t, bs.String(), "localfs")
}
