package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// ErrObjectNotFound is returned when the object backend has no blob under
// the requested key.
var ErrObjectNotFound = errors.New("object not found")

// ObjectStore is the contract for the durable object backend.
//
// GetCapped reads at most maxBytes+1 bytes; a result longer than maxBytes
// tells the caller the object was truncated.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	GetCapped(ctx context.Context, key string, maxBytes int64) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// ObjectKey builds the storage key for an upload: namespaced by owner and
// prefixed with a random suffix so keys never collide and cannot be guessed.
func ObjectKey(uid, filename string) string {
	safe := strings.ReplaceAll(filename, "/", "_")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("users/%s/%s_%s", uid, suffix, safe)
}

func readCapped(r io.Reader, maxBytes int64) ([]byte, error) {
	// one extra byte so callers can detect truncation
	return io.ReadAll(io.LimitReader(r, maxBytes+1))
}
