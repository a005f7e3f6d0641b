package content

import (
	"context"
	"errors"

	"school-platform/config"
	"school-platform/pkg/logger"
)

// ErrNotFound is returned by store operations when no record matches
// the given identifier.
var ErrNotFound = errors.New("content not found")

// Store modes
const (
	ModeMongo  = "mongodb"
	ModeMemory = "memory"
)

// Store is the persistence contract shared by both backends. Both
// implementations fill the same defaults, apply the same filters and
// produce the same ordering (order ascending, createdAt breaking
// ties), so callers cannot tell them apart except through persistence
// and identifier format.
type Store interface {
	// Create assigns an ID and timestamps, persists the record and
	// returns it.
	Create(ctx context.Context, c *Content) (*Content, error)
	// Find returns all records matching the filter, ordered by
	// (order, createdAt) ascending.
	Find(ctx context.Context, f Filter) ([]Content, error)
	// FindByID returns the record with the given ID or ErrNotFound.
	FindByID(ctx context.Context, id string) (*Content, error)
	// Update merges the non-nil fields of upd onto the stored record,
	// refreshes updatedAt and returns the new value. Returns
	// ErrNotFound for unknown IDs; it never creates a record.
	Update(ctx context.Context, id string, upd UpdateRequest) (*Content, error)
	// Delete removes the record and returns its prior value, or
	// ErrNotFound.
	Delete(ctx context.Context, id string) (*Content, error)
	// Mode reports which backend is active, for health reporting.
	Mode() string
}

// NewStore selects the storage backend once for the lifetime of the
// process: MongoDB when MONGODB_URI is configured and reachable, the
// in-memory store otherwise. There is no per-request switching.
func NewStore(log logger.Logger) Store {
	db, err := config.MongoDatabase()
	if err != nil {
		if errors.Is(err, config.ErrNoMongoURI) {
			log.Info("MongoDB not configured, using in-memory content store",
				logger.StoreMode(ModeMemory))
		} else {
			log.Warn("MongoDB unreachable, falling back to in-memory content store",
				logger.Err(err), logger.StoreMode(ModeMemory))
		}
		return NewMemoryStore()
	}

	log.Info("Connected to MongoDB content store", logger.StoreMode(ModeMongo))
	return NewMongoStore(db)
}
