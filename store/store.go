package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrItemNotFound is returned by GetItem when no document matches the key.
	ErrItemNotFound = errors.New("store: item not found")
	// ErrConditionFailed is returned by UpdateItem and DeleteItem when the
	// key, including any optimistic-concurrency fields, matches no document.
	ErrConditionFailed = errors.New("store: conditional write failed")
)

// Store abstracts the document store behind get/query/put/update/delete
// primitives. Keys and filters are flat field maps; the table name selects
// the underlying collection. It is constructed once at startup and passed
// to whoever needs it.
type Store interface {
	GetItem(ctx context.Context, table string, key bson.M, out any) error
	Query(ctx context.Context, table string, filter bson.M, limit int64, out any) error
	PutItem(ctx context.Context, table string, item any) error
	UpdateItem(ctx context.Context, table string, key bson.M, set bson.M, out any) error
	DeleteItem(ctx context.Context, table string, key bson.M) error
}
