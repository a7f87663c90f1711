package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"starlinkwifi/internal/domain/entity"
	"starlinkwifi/internal/domain/repository"
	"starlinkwifi/pkg/errors"
)

const localKeyPrefix = "starlink:"

// localStore is the ephemeral backend: every collection lives as one JSON
// blob under a namespaced key, and each operation reads the whole blob,
// mutates it in memory and writes the whole blob back. Last writer wins.
//
// With a file path configured the keyspace is flushed to disk after every
// write so records survive a restart, the way localStorage survives a page
// reload. Without one the store is memory only.
type localStore struct {
	mu   sync.Mutex
	path string
	keys map[string]string
	seq  uint64
}

func NewLocalStore(path string) (repository.Store, error) {
	s := &localStore{
		path: path,
		keys: make(map[string]string),
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			if err := json.Unmarshal(raw, &s.keys); err != nil {
				return nil, fmt.Errorf("corrupt local store file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return s, nil
}

type localRecord struct {
	ID        string                 `json:"id"`
	Fields    map[string]interface{} `json:"fields"`
	CreatedAt time.Time              `json:"created_at"`
}

func (s *localStore) List(ctx context.Context, collection string, opts repository.ListOptions) ([]*entity.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll(collection)
	if err != nil {
		return nil, err
	}

	var out []*entity.Record
	for _, rec := range records {
		if !matchesFilter(rec, opts.Filter) {
			continue
		}
		out = append(out, toRecord(rec))
	}

	if opts.OrderBy != "" {
		sortRecords(out, opts.OrderBy, opts.Desc)
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}

	return out, nil
}

func (s *localStore) Get(ctx context.Context, collection string, id string) (*entity.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll(collection)
	if err != nil {
		return nil, err
	}

	i := indexOf(records, id)
	if i < 0 {
		return nil, errors.NotFound("record", nil)
	}

	return toRecord(records[i]), nil
}

func (s *localStore) Insert(ctx context.Context, collection string, fields map[string]interface{}) (*entity.Record, error) {
	if len(fields) == 0 {
		return nil, errors.Validation("payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll(collection)
	if err != nil {
		return nil, err
	}

	id, _ := fields["id"].(string)
	if id == "" {
		id = s.nextID(records)
	} else if indexOf(records, id) >= 0 {
		return nil, errors.BadRequest(fmt.Sprintf("record %s already exists", id), nil)
	}

	rec := localRecord{
		ID:        id,
		Fields:    copyFields(fields),
		CreatedAt: time.Now().UTC(),
	}
	delete(rec.Fields, "id")

	records = append(records, rec)
	if err := s.writeAll(collection, records); err != nil {
		return nil, err
	}

	return toRecord(rec), nil
}

func (s *localStore) Patch(ctx context.Context, collection string, id string, fields map[string]interface{}) (*entity.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll(collection)
	if err != nil {
		return nil, err
	}

	i := indexOf(records, id)
	if i < 0 {
		return nil, errors.NotFound("record", nil)
	}

	for key, value := range fields {
		if key == "id" || key == "created_at" {
			continue
		}
		if value == nil {
			delete(records[i].Fields, key)
			continue
		}
		records[i].Fields[key] = value
	}

	if err := s.writeAll(collection, records); err != nil {
		return nil, err
	}

	return toRecord(records[i]), nil
}

func (s *localStore) Remove(ctx context.Context, collection string, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll(collection)
	if err != nil {
		return err
	}

	i := indexOf(records, id)
	if i < 0 {
		// Idempotent: a second delete of the same id is a no-op.
		return nil
	}

	records = append(records[:i], records[i+1:]...)
	return s.writeAll(collection, records)
}

func (s *localStore) readAll(collection string) ([]localRecord, error) {
	blob, ok := s.keys[localKeyPrefix+collection]
	if !ok || blob == "" {
		return nil, nil
	}

	var records []localRecord
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		return nil, errors.Transport("failed to decode collection "+collection, err)
	}
	return records, nil
}

func (s *localStore) writeAll(collection string, records []localRecord) error {
	blob, err := json.Marshal(records)
	if err != nil {
		return errors.Transport("failed to encode collection "+collection, err)
	}
	s.keys[localKeyPrefix+collection] = string(blob)

	if s.path == "" {
		return nil
	}

	raw, err := json.Marshal(s.keys)
	if err != nil {
		return errors.Transport("failed to encode local store", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return errors.Transport("failed to persist local store", err)
	}
	return nil
}

// nextID follows the original timestamp scheme with a counter suffix so two
// inserts in the same millisecond still come out unique.
func (s *localStore) nextID(records []localRecord) string {
	s.seq++
	id := fmt.Sprintf("%d-%d", time.Now().UnixMilli(), s.seq)
	if indexOf(records, id) >= 0 {
		return uuid.New().String()
	}
	return id
}

func indexOf(records []localRecord, id string) int {
	for i, rec := range records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

func copyFields(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		out[key] = value
	}
	return out
}

func toRecord(rec localRecord) *entity.Record {
	return &entity.Record{
		ID:        rec.ID,
		Fields:    copyFields(rec.Fields),
		CreatedAt: rec.CreatedAt,
	}
}

func matchesFilter(rec localRecord, filter map[string]interface{}) bool {
	for key, want := range filter {
		if !looselyEqual(rec.Fields[key], want) {
			return false
		}
	}
	return true
}

// looselyEqual compares across the numeric widening a JSON round trip causes.
func looselyEqual(got, want interface{}) bool {
	if gf, ok := asFloat(got); ok {
		if wf, ok := asFloat(want); ok {
			return gf == wf
		}
	}
	return got == want
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func sortRecords(records []*entity.Record, orderBy string, desc bool) {
	sort.SliceStable(records, func(i, j int) bool {
		less := recordLess(records[i], records[j], orderBy)
		if desc {
			return !less && !recordsEqual(records[i], records[j], orderBy)
		}
		return less
	})
}

func recordLess(a, b *entity.Record, orderBy string) bool {
	if orderBy == "created_at" {
		return a.CreatedAt.Before(b.CreatedAt)
	}

	av, bv := a.Fields[orderBy], b.Fields[orderBy]
	if af, ok := asFloat(av); ok {
		if bf, ok := asFloat(bv); ok {
			return af < bf
		}
	}
	as, _ := av.(string)
	bs, _ := bv.(string)
	return strings.Compare(as, bs) < 0
}

func recordsEqual(a, b *entity.Record, orderBy string) bool {
	if orderBy == "created_at" {
		return a.CreatedAt.Equal(b.CreatedAt)
	}
	return looselyEqual(a.Fields[orderBy], b.Fields[orderBy])
}
