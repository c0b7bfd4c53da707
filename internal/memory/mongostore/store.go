// Package mongostore implements memory.Store on a MongoDB collection.
//
// A Store wraps one long-lived client shared by every request. Connection
// pooling, server selection and per-operation timeouts are left to the
// driver defaults.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/HendryAvila/assistant-tools/internal/memory"
)

// DefaultDatabase is used when neither config nor the URI names a database.
const DefaultDatabase = "assistant_tools"

const (
	defaultConnectTimeout    = 10 * time.Second
	defaultDisconnectTimeout = 5 * time.Second
)

// ErrEmptyURI is returned by Connect when no connection string is given.
var ErrEmptyURI = errors.New("mongostore: empty connection URI")

// Config holds MongoDB connection parameters.
type Config struct {
	URI            string
	Database       string // falls back to the URI's database, then DefaultDatabase
	Collection     string // defaults to memory.CollectionName
	ConnectTimeout time.Duration
}

// Store is a memory.Store backed by a MongoDB collection.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

var _ memory.Store = (*Store)(nil)

// Connect establishes the client session and verifies it with a ping so a
// misconfigured URI fails at startup rather than on the first request.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URI == "" {
		return nil, ErrEmptyURI
	}

	dbName, err := resolveDatabase(cfg)
	if err != nil {
		return nil, err
	}
	collName := cfg.Collection
	if collName == "" {
		collName = memory.CollectionName
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongostore: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongostore: ping: %w", err)
	}

	return New(client, dbName, collName), nil
}

// New wraps an already connected client.
func New(client *mongo.Client, database, collection string) *Store {
	return &Store{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}
}

// DatabaseFromURI returns the database named in the connection string path,
// or "" when the URI names none.
func DatabaseFromURI(uri string) (string, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("mongostore: parse uri: %w", err)
	}
	return cs.Database, nil
}

func resolveDatabase(cfg Config) (string, error) {
	if cfg.Database != "" {
		return cfg.Database, nil
	}
	name, err := DatabaseFromURI(cfg.URI)
	if err != nil {
		return "", err
	}
	if name == "" {
		return DefaultDatabase, nil
	}
	return name, nil
}

// Collection exposes the underlying collection handle.
func (s *Store) Collection() *mongo.Collection {
	return s.coll
}

// Insert adds a new document.
func (s *Store) Insert(ctx context.Context, rec memory.Record) error {
	if _, err := s.coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("mongostore: insert: %w", err)
	}
	return nil
}

// ListByUser returns the user's documents in the server's natural order.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]memory.Record, error) {
	cur, err := s.coll.Find(ctx, userFilter(userID))
	if err != nil {
		return nil, fmt.Errorf("mongostore: find: %w", err)
	}

	results := []memory.Record{}
	if err := cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("mongostore: decode: %w", err)
	}
	return results, nil
}

// DeleteOne removes at most one document matching both ids.
func (s *Store) DeleteOne(ctx context.Context, userID, memoryID string) (int64, error) {
	res, err := s.coll.DeleteOne(ctx, recordFilter(userID, memoryID))
	if err != nil {
		return 0, fmt.Errorf("mongostore: delete one: %w", err)
	}
	return res.DeletedCount, nil
}

// DeleteByUser removes every document for userID.
func (s *Store) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, userFilter(userID))
	if err != nil {
		return 0, fmt.Errorf("mongostore: delete many: %w", err)
	}
	return res.DeletedCount, nil
}

// Close disconnects the client.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultDisconnectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func userFilter(userID string) bson.D {
	return bson.D{{Key: "user_id", Value: userID}}
}

func recordFilter(userID, memoryID string) bson.D {
	return bson.D{
		{Key: "user_id", Value: userID},
		{Key: "memory_id", Value: memoryID},
	}
}
