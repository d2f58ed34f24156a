package store

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-memory Store used by unit tests. Documents keep their
// insertion order, mirroring the store-native order of a fresh collection.
type Memory[T any] struct {
	mu      sync.RWMutex
	idField string
	docs    []T
}

func NewMemory[T any](idField string) *Memory[T] {
	return &Memory[T]{idField: idField}
}

func asMap(doc interface{}) (bson.M, error) {
	b, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func asTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time(), true
	case time.Time:
		return t, true
	case string:
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func (m *Memory[T]) docID(doc T) string {
	fields, err := asMap(doc)
	if err != nil {
		return ""
	}
	id, _ := fields[m.idField].(string)
	return id
}

func (m *Memory[T]) indexOf(id string) int {
	for i, d := range m.docs {
		if m.docID(d) == id {
			return i
		}
	}
	return -1
}

func (m *Memory[T]) List(ctx context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, 0, len(m.docs))
	for _, d := range m.docs {
		if len(out) == ListLimit {
			break
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *Memory[T]) ListWhere(ctx context.Context, field, value string) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []T{}
	for _, d := range m.docs {
		fields, err := asMap(d)
		if err != nil {
			return nil, err
		}
		if v, _ := fields[field].(string); v == value {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *Memory[T]) ListSince(ctx context.Context, field string, since time.Time) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []T{}
	for _, d := range m.docs {
		fields, err := asMap(d)
		if err != nil {
			return nil, err
		}
		if ts, ok := asTime(fields[field]); ok && !ts.Before(since) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *Memory[T]) Insert(ctx context.Context, doc *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, *doc)
	return nil
}

func (m *Memory[T]) Get(ctx context.Context, id string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := m.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	d := m.docs[i]
	return &d, nil
}

func (m *Memory[T]) Replace(ctx context.Context, id string, fields interface{}) (*T, error) {
	patch, err := asMap(fields)
	if err != nil {
		return nil, err
	}
	return m.merge(id, patch)
}

func (m *Memory[T]) Patch(ctx context.Context, id string, set map[string]interface{}) error {
	patch := bson.M{}
	for k, v := range set {
		patch[k] = v
	}
	_, err := m.merge(id, patch)
	return err
}

func (m *Memory[T]) merge(id string, patch bson.M) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	base, err := asMap(m.docs[i])
	if err != nil {
		return nil, err
	}
	for k, v := range patch {
		base[k] = v
	}
	b, err := bson.Marshal(base)
	if err != nil {
		return nil, err
	}
	var merged T
	if err := bson.Unmarshal(b, &merged); err != nil {
		return nil, err
	}
	m.docs[i] = merged
	d := merged
	return &d, nil
}

func (m *Memory[T]) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	m.docs = append(m.docs[:i], m.docs[i+1:]...)
	return nil
}

func (m *Memory[T]) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.docs)), nil
}

func (m *Memory[T]) CountWhere(ctx context.Context, field, value string) (int64, error) {
	docs, err := m.ListWhere(ctx, field, value)
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}
