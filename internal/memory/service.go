package memory

import (
	"context"
	"log/slog"

	"github.com/HendryAvila/assistant-tools/internal/idgen"
)

// Service implements the four memory operations on top of a Store.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	store  Store
	ids    idgen.Generator
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithIDGenerator overrides the identifier generator.
func WithIDGenerator(g idgen.Generator) Option {
	return func(s *Service) { s.ids = g }
}

// WithLogger sets the logger used to record store failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService creates a Service backed by store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		ids:    idgen.New(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Remember stores a new memory. An empty UserID falls back to DefaultUserID.
func (s *Service) Remember(ctx context.Context, p RememberParams) (Record, error) {
	if p.Memory == "" {
		return Record{}, missingField("missing_memory", "memory", usageRemember)
	}

	id, err := s.ids.NewID()
	if err != nil {
		return Record{}, s.fail(ctx, "remember", titleSaveFailed, err)
	}

	rec := Record{
		MemoryID: id,
		UserID:   resolveUser(p.UserID),
		Memory:   p.Memory,
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		return Record{}, s.fail(ctx, "remember", titleSaveFailed, err, "user_id", rec.UserID)
	}

	s.logger.DebugContext(ctx, "memory saved", "user_id", rec.UserID, "memory_id", rec.MemoryID)
	return rec, nil
}

// List returns the memories stored for userID, or for DefaultUserID when
// userID is empty. An empty result is not an error.
func (s *Service) List(ctx context.Context, userID string) ([]Record, error) {
	userID = resolveUser(userID)

	recs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, "get-memories", titleRetrieveFailed, err, "user_id", userID)
	}
	if recs == nil {
		recs = []Record{}
	}
	return recs, nil
}

// Forget deletes the memory identified by (userID, memoryID). userID
// defaults like Remember; memoryID is required.
func (s *Service) Forget(ctx context.Context, userID, memoryID string) error {
	if memoryID == "" {
		return missingField("missing_memory_id", "memory_id", usageForget)
	}
	userID = resolveUser(userID)

	n, err := s.store.DeleteOne(ctx, userID, memoryID)
	if err != nil {
		return s.fail(ctx, "forget", titleDeleteFailed, err, "user_id", userID, "memory_id", memoryID)
	}
	if n == 0 {
		return notFound("Memory not found.", "No memory found with the provided user_id and memory_id.")
	}
	return nil
}

// ForgetAll deletes every memory for userID. Unlike the other operations
// userID is required here and is never defaulted.
func (s *Service) ForgetAll(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, missingField("missing_user_id", "user_id", usageForgetAll)
	}

	n, err := s.store.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, s.fail(ctx, "forget-all", titleDeleteAllFail, err, "user_id", userID)
	}
	if n == 0 {
		return 0, notFound("No memories found.", "No memories found for the provided user_id.")
	}
	return n, nil
}

// fail logs the cause and returns the generic internal error.
func (s *Service) fail(ctx context.Context, op, title string, cause error, attrs ...any) error {
	args := append([]any{"op", op, "error", cause}, attrs...)
	s.logger.ErrorContext(ctx, "memory store operation failed", args...)
	return internal(title, cause)
}
