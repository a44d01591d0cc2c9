package store

import (
	"context"
	"sync"
)

type memoryKey struct {
	principalID string
	kind        Kind
}

// MemoryStore is an in-memory Store used by tests and offline runs.
// It mirrors PostgresStore semantics: insertion-order fetch, upsert
// save, silent no-principal skips.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[memoryKey][]memoryDoc

	// FetchErr, when set, is returned by FetchAll to simulate a
	// remote failure.
	FetchErr error
	// SaveErr, when set, is returned by Save.
	SaveErr error
}

type memoryDoc struct {
	id  string
	doc Document
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[memoryKey][]memoryDoc)}
}

// FetchAll returns copies of the stored documents in insertion order.
func (s *MemoryStore) FetchAll(_ context.Context, principalID string, kind Kind) ([]Document, error) {
	if principalID == "" {
		return []Document{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FetchErr != nil {
		return nil, s.FetchErr
	}

	entries := s.docs[memoryKey{principalID, kind}]
	out := make([]Document, 0, len(entries))
	for _, e := range entries {
		copied := make(Document, len(e.doc))
		for k, v := range e.doc {
			copied[k] = v
		}
		out = append(out, copied)
	}
	return out, nil
}

// Save upserts a document, keeping the original insertion position on
// update.
func (s *MemoryStore) Save(_ context.Context, principalID string, kind Kind, docID string, doc Document) error {
	if principalID == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}

	key := memoryKey{principalID, kind}
	for i, e := range s.docs[key] {
		if e.id == docID {
			s.docs[key][i].doc = doc
			return nil
		}
	}
	s.docs[key] = append(s.docs[key], memoryDoc{id: docID, doc: doc})
	return nil
}

// Delete removes a document by id; absent ids are a no-op.
func (s *MemoryStore) Delete(_ context.Context, principalID string, kind Kind, docID string) error {
	if principalID == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := memoryKey{principalID, kind}
	entries := s.docs[key]
	for i, e := range entries {
		if e.id == docID {
			s.docs[key] = append(entries[:i:i], entries[i+1:]...)
			return nil
		}
	}
	return nil
}

// Count reports how many documents a principal has of a kind.
func (s *MemoryStore) Count(principalID string, kind Kind) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs[memoryKey{principalID, kind}])
}

// Get returns the stored document by id, if present.
func (s *MemoryStore) Get(principalID string, kind Kind, docID string) (Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.docs[memoryKey{principalID, kind}] {
		if e.id == docID {
			return e.doc, true
		}
	}
	return nil, false
}
