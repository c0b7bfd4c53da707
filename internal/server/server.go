// Package server wires all components and creates the server instances.
//
// This is the composition root: it opens the configured store and injects
// it into the memory service, which the HTTP routes and MCP tools share.
// No business logic lives here, only wiring.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/HendryAvila/assistant-tools/internal/config"
	"github.com/HendryAvila/assistant-tools/internal/httpapi"
	"github.com/HendryAvila/assistant-tools/internal/mcptools"
	"github.com/HendryAvila/assistant-tools/internal/memory"
	"github.com/HendryAvila/assistant-tools/internal/memory/mongostore"
	"github.com/HendryAvila/assistant-tools/internal/memory/sqlite"
	"github.com/HendryAvila/assistant-tools/internal/prompts"
	"github.com/HendryAvila/assistant-tools/internal/utility"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Name identifies the server to MCP clients.
const Name = "assistant-tools"

// MCPPath is where the streamable HTTP MCP endpoint is mounted.
const MCPPath = "/mcp"

// ErrUnknownDriver is returned by OpenStore for an unrecognised driver.
var ErrUnknownDriver = errors.New("server: unknown store driver")

// App holds the wired components. Close releases the store.
type App struct {
	Store   memory.Store
	Service *memory.Service
	MCP     *server.MCPServer

	handler http.Handler
}

type options struct {
	logger *slog.Logger
	store  memory.Store
	clock  utility.Clock
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger shared by every component.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithStore injects an already opened store instead of opening the one
// named by the configuration.
func WithStore(s memory.Store) Option {
	return func(o *options) { o.store = s }
}

// WithClock overrides the clock used by the datetime tool.
func WithClock(c utility.Clock) Option {
	return func(o *options) { o.clock = c }
}

// New opens the store and builds the memory service, the MCP server and
// the HTTP handler. The caller must Close the returned App.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	o := options{logger: slog.Default(), clock: utility.SystemClock}
	for _, opt := range opts {
		opt(&o)
	}

	store := o.store
	if store == nil {
		var err error
		store, err = OpenStore(ctx, cfg.Store)
		if err != nil {
			return nil, err
		}
		o.logger.Info("memory store opened", "driver", cfg.Store.Driver)
	}

	svc := memory.NewService(store, memory.WithLogger(o.logger))
	mcpServer := NewMCPServer(svc, o.clock)

	info := httpapi.DefaultInfo
	if Version != "dev" {
		info.Version = Version
	}
	api, err := httpapi.New(svc,
		httpapi.WithLogger(o.logger),
		httpapi.WithAPIKey(cfg.APIKey),
		httpapi.WithClock(o.clock),
		httpapi.WithInfo(info),
		httpapi.WithMount(MCPPath, server.NewStreamableHTTPServer(mcpServer,
			server.WithEndpointPath(MCPPath),
		)),
	)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("building HTTP API: %w", err)
	}

	return &App{
		Store:   store,
		Service: svc,
		MCP:     mcpServer,
		handler: api.Handler(),
	}, nil
}

// Handler returns the HTTP handler serving the REST routes and /mcp.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Close releases the store connection.
func (a *App) Close() error {
	if err := a.Store.Close(); err != nil {
		return fmt.Errorf("closing memory store: %w", err)
	}
	return nil
}

// OpenStore opens the backend named by cfg.Driver.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (memory.Store, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		s, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.MongoURI,
			Database: cfg.MongoDatabase,
		})
		if err != nil {
			return nil, fmt.Errorf("opening mongo store: %w", err)
		}
		return s, nil
	case config.DriverSQLite:
		s, err := sqlite.New(sqlite.Config{DataDir: cfg.SQLiteDataDir})
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// NewMCPServer creates the MCP server with every tool and prompt
// registered against svc.
func NewMCPServer(svc *memory.Service, clock utility.Clock) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Memory tools ---

	remember := mcptools.NewRememberTool(svc)
	s.AddTool(remember.Definition(), remember.Handle)

	getMemories := mcptools.NewGetMemoriesTool(svc)
	s.AddTool(getMemories.Definition(), getMemories.Handle)

	forget := mcptools.NewForgetTool(svc)
	s.AddTool(forget.Definition(), forget.Handle)

	forgetAll := mcptools.NewForgetAllTool(svc)
	s.AddTool(forgetAll.Definition(), forgetAll.Handle)

	// --- Utility tools ---

	add := mcptools.NewAddTool()
	s.AddTool(add.Definition(), add.Handle)

	datetime := mcptools.NewDatetimeTool(clock)
	s.AddTool(datetime.Definition(), datetime.Handle)

	// --- Prompts ---

	memoryContext := prompts.NewMemoryContextPrompt()
	s.AddPrompt(memoryContext.Definition(), memoryContext.Handle)

	return s
}

// serverInstructions tells the AI how to use the tools.
func serverInstructions() string {
	return `You have access to assistant-tools: a persistent memory plus a few utilities.

## MEMORY

- remember: save one short third-person statement about the user
  (a preference, a fact, something they asked you to keep).
- get-memories: load what is known about a user. Call it at the start of a
  conversation when personal context would help.
- forget: delete one memory by memory_id when it is wrong or outdated.
- forget-all: erase every memory for a user_id. Only on explicit request.

user_id defaults to "default" for remember, get-memories and forget.
forget-all always requires an explicit user_id.

## UTILITIES

- add: add two numbers exactly, instead of doing arithmetic in your head.
- datetime: the current UTC date and time in ISO-8601.`
}
