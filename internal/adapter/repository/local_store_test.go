package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starlinkwifi/internal/domain/repository"
	"starlinkwifi/pkg/errors"
)

func newTestStore(t *testing.T) repository.Store {
	t.Helper()
	store, err := NewLocalStore("")
	require.NoError(t, err)
	return store
}

func TestLocalStoreInsertAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record, err := store.Insert(ctx, "messages", map[string]interface{}{
		"name": "Jane", "read": false,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.False(t, record.CreatedAt.IsZero())

	got, err := store.Get(ctx, "messages", record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.String("name"))
	assert.False(t, got.Bool("read"))
}

func TestLocalStoreGetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "messages", "nope")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestLocalStoreInsertEmptyPayload(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Insert(context.Background(), "messages", nil)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestLocalStoreInsertWithExplicitID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record, err := store.Insert(ctx, "bundles", map[string]interface{}{
		"id": "daily", "name": "Daily",
	})
	require.NoError(t, err)
	assert.Equal(t, "daily", record.ID)

	_, err = store.Insert(ctx, "bundles", map[string]interface{}{
		"id": "daily", "name": "Again",
	})
	assert.Error(t, err)
}

func TestLocalStorePatch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record, err := store.Insert(ctx, "messages", map[string]interface{}{
		"name": "Jane", "read": false,
	})
	require.NoError(t, err)

	patched, err := store.Patch(ctx, "messages", record.ID, map[string]interface{}{
		"read": true,
	})
	require.NoError(t, err)
	assert.True(t, patched.Bool("read"))
	assert.Equal(t, "Jane", patched.String("name"))
}

func TestLocalStorePatchIgnoresImmutableFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record, err := store.Insert(ctx, "messages", map[string]interface{}{"name": "Jane"})
	require.NoError(t, err)

	patched, err := store.Patch(ctx, "messages", record.ID, map[string]interface{}{
		"id": "hijacked", "created_at": "2001-01-01T00:00:00Z", "name": "Janet",
	})
	require.NoError(t, err)
	assert.Equal(t, record.ID, patched.ID)
	assert.Equal(t, record.CreatedAt, patched.CreatedAt)
	assert.Equal(t, "Janet", patched.String("name"))
}

func TestLocalStorePatchMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Patch(context.Background(), "messages", "nope", map[string]interface{}{"read": true})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestLocalStoreRemoveIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record, err := store.Insert(ctx, "messages", map[string]interface{}{"name": "Jane"})
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, "messages", record.ID))
	// A second remove of the same id is not an error.
	require.NoError(t, store.Remove(ctx, "messages", record.ID))
	require.NoError(t, store.Remove(ctx, "messages", "never-existed"))

	records, err := store.List(ctx, "messages", repository.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLocalStoreListFilterOrderLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, b := range []struct {
		id    string
		price float64
		show  bool
	}{
		{"weekly", 300, true},
		{"daily", 50, true},
		{"monthly", 1000, false},
	} {
		_, err := store.Insert(ctx, "bundles", map[string]interface{}{
			"id": b.id, "price": b.price, "visible": b.show,
		})
		require.NoError(t, err)
	}

	records, err := store.List(ctx, "bundles", repository.ListOptions{
		Filter:  map[string]interface{}{"visible": true},
		OrderBy: "price",
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "daily", records[0].ID)
	assert.Equal(t, "weekly", records[1].ID)

	records, err = store.List(ctx, "bundles", repository.ListOptions{
		OrderBy: "price",
		Desc:    true,
		Limit:   1,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "monthly", records[0].ID)
}

func TestLocalStoreFilePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()

	store, err := NewLocalStore(path)
	require.NoError(t, err)

	record, err := store.Insert(ctx, "messages", map[string]interface{}{"name": "Jane"})
	require.NoError(t, err)

	// A fresh store over the same file sees the record.
	reopened, err := NewLocalStore(path)
	require.NoError(t, err)

	got, err := reopened.Get(ctx, "messages", record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.String("name"))
	assert.WithinDuration(t, record.CreatedAt, got.CreatedAt, 0)
}
