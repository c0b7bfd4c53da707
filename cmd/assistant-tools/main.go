// assistant-tools: tools for AI assistants over HTTP and MCP.
//
// Exposes addition, the current time and a per-user persistent memory,
// both as a plain HTTP API (with an OpenAPI description) and as MCP tools.
//
// Usage:
//
//	assistant-tools serve   # HTTP API, with MCP at /mcp
//	assistant-tools mcp     # MCP over stdio
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/HendryAvila/assistant-tools/internal/config"
	toolserver "github.com/HendryAvila/assistant-tools/internal/server"
	"github.com/mark3labs/mcp-go/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(os.Args[2:])
	case "mcp":
		err = runMCP(os.Args[2:])
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("assistant-tools v%s\n", toolserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig parses the subcommand flags and resolves the configuration.
func loadConfig(name string, args []string) (*config.Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fs.String("config", "", "path to a YAML config file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return config.Load(*path)
}

// newLogger writes to stderr so stdout stays free for the stdio transport.
func newLogger(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(h)
}

func runServe(args []string) error {
	cfg, err := loadConfig("serve", args)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := toolserver.New(ctx, cfg, toolserver.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("shutdown", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(cfg.Port)),
		Handler:           app.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "port", cfg.Port, "auth", cfg.AuthEnabled(), "driver", cfg.Store.Driver)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

func runMCP(args []string) error {
	cfg, err := loadConfig("mcp", args)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := toolserver.New(ctx, cfg, toolserver.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("shutdown", "error", err)
		}
	}()

	stdio := server.NewStdioServer(app.MCP)
	stdio.SetErrorLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))
	err = stdio.Listen(ctx, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `assistant-tools v%s: tools for AI assistants

Usage:
  assistant-tools serve [-config file.yaml]   Start the HTTP API (MCP at /mcp)
  assistant-tools mcp   [-config file.yaml]   Start the MCP server (stdio transport)
  assistant-tools version

Environment:
  PORT              HTTP port (default 8080)
  API_KEY           require this key in the Authorization header
  MONGODB_URI       use MongoDB as the memory store
  MONGODB_DATABASE  database name (default: from the URI, else assistant_tools)
  STORE_DRIVER      mongo or sqlite (default: mongo when MONGODB_URI is set)
  SQLITE_DATA_DIR   SQLite data directory (default ~/.assistant-tools)
  LOG_LEVEL         debug, info, warn or error
  LOG_FORMAT        text or json

MCP client config (stdio):

  {
    "mcpServers": {
      "assistant-tools": {
        "command": "assistant-tools",
        "args": ["mcp"]
      }
    }
  }
`, toolserver.Version)
}
