package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	size, err := store.Put(ctx, "users/u1/x.txt", strings.NewReader("hello"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	stream, err := store.Open(ctx, "users/u1/x.txt")
	require.NoError(t, err)
	defer stream.Close()
	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, store.Delete(ctx, "users/u1/x.txt"))
	_, err = store.Open(ctx, "users/u1/x.txt")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestMemoryStoreGetCapped(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_, err := store.Put(ctx, "k", strings.NewReader("0123456789"), "text/plain")
	require.NoError(t, err)

	// under the cap: full contents
	data, err := store.GetCapped(ctx, "k", 20)
	require.NoError(t, err)
	assert.Len(t, data, 10)

	// over the cap: cap+1 bytes so the caller can detect truncation
	data, err = store.GetCapped(ctx, "k", 5)
	require.NoError(t, err)
	assert.Len(t, data, 6)

	_, err = store.GetCapped(ctx, "missing", 5)
	assert.ErrorIs(t, err, ErrObjectNotFound)
}
