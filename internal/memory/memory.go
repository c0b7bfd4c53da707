// Package memory implements the persistent memory subsystem exposed to AI
// assistants: remember a piece of text for a user, list a user's memories,
// forget one, or forget all of them.
//
// The package owns validation, user defaulting, identifier assignment and
// error classification. Persistence is delegated to a Store; concrete stores
// live in the mongostore and sqlite subpackages.
package memory

import "context"

// DefaultUserID is used when a caller does not name a user.
const DefaultUserID = "default"

// CollectionName is the collection (or table) holding memory records.
const CollectionName = "memories"

// Record is a single remembered piece of text.
type Record struct {
	MemoryID string `json:"memory_id" bson:"memory_id"`
	UserID   string `json:"user_id" bson:"user_id"`
	Memory   string `json:"memory" bson:"memory"`
}

// Store persists records. Each method is a single store operation; the
// service never issues more than one call per request.
type Store interface {
	// Insert adds a new record.
	Insert(ctx context.Context, rec Record) error
	// ListByUser returns every record whose user_id equals userID.
	ListByUser(ctx context.Context, userID string) ([]Record, error)
	// DeleteOne removes at most one record matching both ids and reports
	// how many were removed.
	DeleteOne(ctx context.Context, userID, memoryID string) (int64, error)
	// DeleteByUser removes every record for userID and reports the count.
	DeleteByUser(ctx context.Context, userID string) (int64, error)
	// Close releases the underlying connection.
	Close() error
}

// RememberParams is the input for Service.Remember.
type RememberParams struct {
	UserID string `json:"user_id,omitempty" jsonschema:"description=The ID of the user to remember information for."`
	Memory string `json:"memory" jsonschema:"description=The information to remember."`
}

// resolveUser applies the default user for operations that allow omission.
func resolveUser(userID string) string {
	if userID == "" {
		return DefaultUserID
	}
	return userID
}
