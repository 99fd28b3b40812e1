package mcp

import (
	"context"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/designkit/designsearch-mcp/internal/composer"
	"github.com/designkit/designsearch-mcp/internal/config"
	"github.com/designkit/designsearch-mcp/internal/corpus"
	"github.com/designkit/designsearch-mcp/internal/index"
	"github.com/designkit/designsearch-mcp/internal/registry"
	"github.com/designkit/designsearch-mcp/internal/searcher"
)

const (
	// ServerName is the MCP server name
	ServerName = "designsearch-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp      *server.MCPServer
	registry *registry.Registry
	searcher *searcher.Searcher
	composer *composer.Composer
	log      *zap.Logger

	// closer is non-nil when the data source holds an open handle
	closer io.Closer
}

// NewServer creates a new MCP server instance over the configured data source
func NewServer(cfg config.Config, log *zap.Logger) (*Server, error) {
	var (
		loader corpus.Loader
		closer io.Closer
	)
	switch cfg.Data.Driver {
	case "sqlite":
		l, err := corpus.NewSQLiteLoader(cfg.Data.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open design catalog: %w", err)
		}
		loader, closer = l, l
	default:
		loader = corpus.NewCSVLoader(cfg.Data.Dir)
	}

	reg := registry.New(loader, index.Params{
		K1: cfg.Search.BM25K1,
		B:  cfg.Search.BM25B,
	})
	srch := searcher.NewSearcher(reg, cfg.Search.CacheSize)

	s := &Server{
		mcp:      server.NewMCPServer(ServerName, ServerVersion),
		registry: reg,
		searcher: srch,
		composer: composer.New(srch),
		log:      log,
		closer:   closer,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	if s.closer != nil {
		defer func() { _ = s.closer.Close() }()
	}

	s.log.Info("designsearch MCP server listening on stdio",
		zap.String("version", ServerVersion),
		zap.String("build_mode", corpus.BuildMode),
		zap.String("sqlite_driver", corpus.DriverName))

	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(searchDesignTool(), s.handleSearchDesign)
	s.mcp.AddTool(generateDesignSystemTool(), s.handleGenerateDesignSystem)
	s.mcp.AddTool(getStatusTool(), s.handleGetStatus)
}
