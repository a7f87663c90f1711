package repository

import (
	"context"

	"starlinkwifi/internal/domain/entity"
)

// Collection names shared by both backends. The local backend namespaces
// them under its own key prefix.
const (
	CollectionMessages    = "messages"
	CollectionGallery     = "gallery"
	CollectionBundles     = "bundles"
	CollectionSiteUpdates = "site_updates"
	CollectionSubscribers = "subscribers"
	CollectionAdmins      = "admins"
)

// ListOptions narrows and orders a List call. Filter entries are equality
// matches; ordering is always explicit, never insertion order.
type ListOptions struct {
	Filter  map[string]interface{}
	OrderBy string
	Desc    bool
	Limit   int
}

// Store is the uniform record adapter both backends satisfy.
//
// Insert sets id and created_at and returns the stored record. Get and Patch
// return NOT_FOUND for an absent id; Patch silently drops attempts to rewrite
// id or created_at. Remove is idempotent: removing a missing id is not an
// error.
type Store interface {
	List(ctx context.Context, collection string, opts ListOptions) ([]*entity.Record, error)
	Get(ctx context.Context, collection string, id string) (*entity.Record, error)
	Insert(ctx context.Context, collection string, fields map[string]interface{}) (*entity.Record, error)
	Patch(ctx context.Context, collection string, id string, fields map[string]interface{}) (*entity.Record, error)
	Remove(ctx context.Context, collection string, id string) error
}
