// Command particledocs serves Particle Network documentation over MCP.
// It exposes each documentation page as a resource and provides search,
// refresh, and listing tools over stdio or streamable HTTP.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fwojciec/particledocs"
	"github.com/fwojciec/particledocs/docs"
	"github.com/fwojciec/particledocs/fetch"
	"github.com/fwojciec/particledocs/fs"
	docsquery "github.com/fwojciec/particledocs/goquery"
	docshttp "github.com/fwojciec/particledocs/http"
	docslog "github.com/fwojciec/particledocs/slog"
)

const version = "1.0.0"

// CLI defines the command-line flags.
type CLI struct {
	CacheDir string `help:"Directory for the on-disk page cache." env:"PARTICLEDOCS_CACHE_DIR"`
	TTL      int    `help:"Cache TTL in hours." env:"PARTICLEDOCS_TTL_HOURS" default:"24"`
	HTTP     string `help:"HTTP listen address (serves stdio when empty)." env:"PARTICLEDOCS_HTTP"`
	LogLevel string `help:"Log level." enum:"debug,info,warn,error" default:"info"`
}

func main() {
	cli := &CLI{}
	kong.Parse(cli,
		kong.Name("particledocs"),
		kong.Description("MCP server for Particle Network documentation."),
	)

	if err := run(cli); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cli *CLI) error {
	// stdout belongs to the stdio transport; log to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cli.LogLevel),
	}))

	cacheDir := cli.CacheDir
	if cacheDir == "" {
		cacheDir = defaultCacheDir()
	}

	diskCache, err := fs.NewDiskCache(cacheDir)
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}

	registry := particledocs.NewRegistry(particledocs.DefaultPages())
	manager := docs.NewManager(registry, &fetch.Service{
		Fetcher:   docslog.NewLoggingFetcher(docshttp.NewFetcher(), logger),
		Extractor: docsquery.NewExtractor(),
		Cache:     docslog.NewLoggingCacheStore(diskCache, logger),
		TTL:       time.Duration(cli.TTL) * time.Hour,
		Logger:    logger,
	}, logger)

	mcpServer := server.NewMCPServer(
		"particledocs",
		version,
		server.WithResourceCapabilities(true, true),
		server.WithToolCapabilities(true),
	)

	registerResources(mcpServer, manager)
	registerTools(mcpServer, manager, logger)

	if cli.HTTP != "" {
		logger.Info("serving MCP over HTTP", "addr", cli.HTTP)
		return server.NewStreamableHTTPServer(mcpServer).Start(cli.HTTP)
	}

	logger.Info("serving MCP over stdio", "cache_dir", cacheDir, "ttl_hours", cli.TTL)
	return server.ServeStdio(mcpServer)
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".particledocs-cache"
	}
	return filepath.Join(home, ".cache", "particledocs")
}
