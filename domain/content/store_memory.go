package content

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"
)

// MemoryStore keeps records in process memory. It is the fallback
// backend when no MongoDB is configured; all data is lost on restart.
// Safe for concurrent use within a single process, not designed for
// multi-process sharing.
type MemoryStore struct {
	mu     sync.RWMutex
	items  []Content
	nextID int64
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// Mode reports the backend kind.
func (s *MemoryStore) Mode() string { return ModeMemory }

// Create assigns a sequential ID and timestamps, then appends the record.
func (s *MemoryStore) Create(_ context.Context, c *Content) (*Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	rec := *c
	rec.ID = strconv.FormatInt(s.nextID, 10)
	s.nextID++
	rec.CreatedAt = now
	rec.UpdatedAt = now
	if rec.Metadata == nil {
		rec.Metadata = map[string]interface{}{}
	}

	s.items = append(s.items, rec)

	out := cloneContent(rec)
	return &out, nil
}

// Find filters and orders records by (order, createdAt) ascending.
func (s *MemoryStore) Find(_ context.Context, f Filter) ([]Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]Content, 0)
	for _, item := range s.items {
		if f.Section != "" && item.Section != f.Section {
			continue
		}
		if f.Language != "" && item.Language != f.Language {
			continue
		}
		if f.IsActive != nil && item.IsActive != *f.IsActive {
			continue
		}
		results = append(results, cloneContent(item))
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Order != results[j].Order {
			return results[i].Order < results[j].Order
		}
		return results[i].CreatedAt.Before(results[j].CreatedAt)
	})

	return results, nil
}

// FindByID returns the record with the given ID or ErrNotFound.
func (s *MemoryStore) FindByID(_ context.Context, id string) (*Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			out := cloneContent(item)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// Update merges the non-nil fields onto the stored record. Unknown IDs
// return ErrNotFound; a record is never created here.
func (s *MemoryStore) Update(_ context.Context, id string, upd UpdateRequest) (*Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}

		item := &s.items[i]
		if upd.Title != nil {
			item.Title = *upd.Title
		}
		if upd.Body != nil {
			item.Body = *upd.Body
		}
		if upd.ImageURL != nil {
			item.ImageURL = *upd.ImageURL
		}
		if upd.Section != nil {
			item.Section = *upd.Section
		}
		if upd.Order != nil {
			item.Order = *upd.Order
		}
		if upd.Language != nil {
			item.Language = *upd.Language
		}
		if upd.IsActive != nil {
			item.IsActive = *upd.IsActive
		}
		if upd.Metadata != nil {
			item.Metadata = upd.Metadata
		}
		item.UpdatedAt = time.Now().UTC()

		out := cloneContent(*item)
		return &out, nil
	}

	return nil, ErrNotFound
}

// Delete removes the record and returns its prior value.
func (s *MemoryStore) Delete(_ context.Context, id string) (*Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			out := cloneContent(s.items[i])
			s.items = append(s.items[:i], s.items[i+1:]...)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// cloneContent copies a record so callers never alias the store's
// internal slice, including the metadata map.
func cloneContent(c Content) Content {
	out := c
	if c.Metadata != nil {
		md := make(map[string]interface{}, len(c.Metadata))
		for k, v := range c.Metadata {
			md[k] = v
		}
		out.Metadata = md
	}
	return out
}
