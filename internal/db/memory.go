package db

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ukydev/prestige-car-hire/internal/filter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is a Store kept in process memory. Records round-trip
// through BSON so stored values have the types MongoDB would return.
// It is safe for concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	name        string
	collections map[string][]bson.M
}

// NewMemoryStore returns an empty store reporting the given database name.
func NewMemoryStore(name string) *MemoryStore {
	return &MemoryStore{
		name:        name,
		collections: make(map[string][]bson.M),
	}
}

// Insert appends record to collection under a fresh ObjectID.
func (s *MemoryStore) Insert(_ context.Context, collection string, record any) (string, error) {
	doc, err := newDocument(record, time.Now().UTC())
	if err != nil {
		return "", err
	}
	id := primitive.NewObjectID()
	stored := bson.M{IDField: id}
	for _, e := range doc {
		stored[e.Key] = e.Value
	}

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], stored)
	s.mu.Unlock()
	return id.Hex(), nil
}

// Query returns copies of the matching documents in insertion order.
func (s *MemoryStore) Query(_ context.Context, collection string, f filter.Filter, limit int64) ([]bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := []bson.M{}
	for _, doc := range s.collections[collection] {
		if limit > 0 && int64(len(docs)) >= limit {
			break
		}
		if !f.Matches(doc) {
			continue
		}
		cp := make(bson.M, len(doc))
		for k, v := range doc {
			cp[k] = v
		}
		docs = append(docs, cp)
	}
	return docs, nil
}

// HealthCheck always reports a reachable store.
func (s *MemoryStore) HealthCheck(context.Context) Health {
	s.mu.RLock()
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	s.mu.RUnlock()
	sort.Strings(names)

	return Health{
		Connected:    true,
		Reachable:    true,
		DatabaseName: s.name,
		Collections:  names,
	}
}
