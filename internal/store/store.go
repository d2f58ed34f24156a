package store

import (
	"context"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// ListLimit caps every list query. Collections larger than this are silently
// truncated; there is no pagination.
const ListLimit = 1000

// Store is the uniform persistence contract shared by all entity types.
// Documents are keyed by an application-generated id field (veh_*, drv_*, ...),
// never by the backing store's internal identifier.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	ListWhere(ctx context.Context, field, value string) ([]T, error)
	ListSince(ctx context.Context, field string, since time.Time) ([]T, error)
	Insert(ctx context.Context, doc *T) error
	Get(ctx context.Context, id string) (*T, error)
	// Replace applies every field of the given payload onto the stored
	// document and returns the result. The id field and created_at are not
	// part of update payloads and therefore survive.
	Replace(ctx context.Context, id string, fields interface{}) (*T, error)
	// Patch sets individual fields by name.
	Patch(ctx context.Context, id string, set map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountWhere(ctx context.Context, field, value string) (int64, error)
}

// NewID returns "<prefix>_<12 hex chars>" backed by a random UUID.
func NewID(prefix string) string {
	u := uuid.New()
	return prefix + "_" + hex.EncodeToString(u[:6])
}
