package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"starlinkwifi/internal/domain/entity"
	"starlinkwifi/internal/domain/repository"
	"starlinkwifi/pkg/errors"
)

// firestoreStore is the remote backend: one document per record, ids minted
// by the store, ordering always requested through an explicit sort key.
type firestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) repository.Store {
	return &firestoreStore{
		client: client,
	}
}

func (s *firestoreStore) List(ctx context.Context, collection string, opts repository.ListOptions) ([]*entity.Record, error) {
	query := s.client.Collection(collection).Query

	for key, value := range opts.Filter {
		query = query.Where(key, "==", value)
	}
	if opts.OrderBy != "" {
		dir := firestore.Asc
		if opts.Desc {
			dir = firestore.Desc
		}
		query = query.OrderBy(opts.OrderBy, dir)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	iter := query.Documents(ctx)
	var records []*entity.Record

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Transport("failed to list "+collection, err)
		}
		records = append(records, docToRecord(doc))
	}

	return records, nil
}

func (s *firestoreStore) Get(ctx context.Context, collection string, id string) (*entity.Record, error) {
	doc, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("record", err)
		}
		return nil, errors.Transport("failed to get from "+collection, err)
	}

	return docToRecord(doc), nil
}

func (s *firestoreStore) Insert(ctx context.Context, collection string, fields map[string]interface{}) (*entity.Record, error) {
	if len(fields) == 0 {
		return nil, errors.Validation("payload")
	}

	data := copyFields(fields)

	doc := s.client.Collection(collection).NewDoc()
	if id, ok := data["id"].(string); ok && id != "" {
		doc = s.client.Collection(collection).Doc(id)
		snap, err := doc.Get(ctx)
		if err == nil && snap.Exists() {
			return nil, errors.BadRequest("record "+id+" already exists", nil)
		}
	}
	delete(data, "id")

	now := time.Now().UTC()
	data["created_at"] = now

	if _, err := doc.Set(ctx, data); err != nil {
		return nil, errors.Transport("failed to insert into "+collection, err)
	}

	delete(data, "created_at")
	return &entity.Record{
		ID:        doc.ID,
		Fields:    data,
		CreatedAt: now,
	}, nil
}

func (s *firestoreStore) Patch(ctx context.Context, collection string, id string, fields map[string]interface{}) (*entity.Record, error) {
	var updates []firestore.Update
	for key, value := range fields {
		if key == "id" || key == "created_at" {
			continue
		}
		if value == nil {
			updates = append(updates, firestore.Update{Path: key, Value: firestore.Delete})
			continue
		}
		updates = append(updates, firestore.Update{Path: key, Value: value})
	}
	if len(updates) == 0 {
		return nil, errors.Validation("fields")
	}

	doc := s.client.Collection(collection).Doc(id)
	if _, err := doc.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("record", err)
		}
		return nil, errors.Transport("failed to patch "+collection, err)
	}

	snap, err := doc.Get(ctx)
	if err != nil {
		return nil, errors.Transport("failed to read back "+collection, err)
	}

	return docToRecord(snap), nil
}

func (s *firestoreStore) Remove(ctx context.Context, collection string, id string) error {
	// Firestore deletes of missing documents succeed, which gives the
	// contract its idempotence for free.
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return errors.Transport("failed to delete from "+collection, err)
	}
	return nil
}

func docToRecord(doc *firestore.DocumentSnapshot) *entity.Record {
	data := doc.Data()

	rec := &entity.Record{
		ID:     doc.Ref.ID,
		Fields: data,
	}
	if created, ok := data["created_at"].(time.Time); ok {
		rec.CreatedAt = created
	}
	delete(data, "created_at")

	return rec
}
