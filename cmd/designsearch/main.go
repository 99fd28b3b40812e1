package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/designkit/designsearch-mcp/internal/config"
	"github.com/designkit/designsearch-mcp/internal/corpus"
	"github.com/designkit/designsearch-mcp/internal/logger"
	"github.com/designkit/designsearch-mcp/internal/mcp"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("DesignSearch MCP Server\n")
		fmt.Printf("Version: %s\n", version)
		fmt.Printf("Build Time: %s\n", buildTime)
		fmt.Printf("Build Mode: %s\n", corpus.BuildMode)
		fmt.Printf("SQLite Driver: %s\n", corpus.DriverName)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		// No logger yet; plain stderr (stdout is reserved for MCP protocol).
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Logging.Level)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	zlog.Info("designsearch MCP server starting",
		zap.String("version", version),
		zap.String("build_mode", corpus.BuildMode),
		zap.String("sqlite_driver", corpus.DriverName),
		zap.String("data_driver", cfg.Data.Driver))

	server, err := mcp.NewServer(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to create MCP server", zap.Error(err))
	}

	// Set up graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Serve(ctx)
	}()

	select {
	case sig := <-sigChan:
		zlog.Info("received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	case err := <-errChan:
		if err != nil {
			zlog.Fatal("server error", zap.Error(err))
		}
	}

	zlog.Info("server stopped")
}
