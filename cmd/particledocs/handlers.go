package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fwojciec/particledocs/docs"
)

// registerResources exposes every registered page as an MCP resource.
func registerResources(s *server.MCPServer, manager *docs.Manager) {
	for _, page := range manager.List() {
		s.AddResource(
			mcp.NewResource(
				page.ResourceURI,
				page.Title,
				mcp.WithResourceDescription(page.Description),
				mcp.WithMIMEType("text/plain"),
			),
			handleReadResource(manager),
		)
	}
}

// registerTools wires the search, refresh, and listing tools.
func registerTools(s *server.MCPServer, manager *docs.Manager, logger *slog.Logger) {
	s.AddTool(createSearchDocsTool(), handleSearchDocs(manager, logger))
	s.AddTool(createRefreshResourceTool(), handleRefreshResource(manager, logger))
	s.AddTool(createListPagesTool(), handleListPages(manager))
}

// handleReadResource serves a page's formatted content.
func handleReadResource(manager *docs.Manager) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		uri := request.Params.URI

		text, err := manager.Get(ctx, uri)
		if err != nil {
			return nil, err
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: "text/plain",
				Text:     text,
			},
		}, nil
	}
}

// handleSearchDocs implements the search_docs tool.
func handleSearchDocs(manager *docs.Manager, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil || query == "" {
			return mcp.NewToolResultError("Error: query parameter is required"), nil
		}

		results := manager.Search(ctx, query)
		if len(results) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No results found for query: %q", query)), nil
		}

		logger.Info("search", "query", query, "pages", len(results))
		return mcp.NewToolResultText(formatSearchResults(query, results)), nil
	}
}

// handleRefreshResource implements the refresh_resource tool.
func handleRefreshResource(manager *docs.Manager, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		uri, err := request.RequireString("uri")
		if err != nil || uri == "" {
			return mcp.NewToolResultError("Error: uri parameter is required"), nil
		}

		if err := manager.Refresh(ctx, uri); err != nil {
			logger.Warn("refresh failed", "uri", uri, "err", err)
			return mcp.NewToolResultText(fmt.Sprintf("Failed to refresh resource: %s", uri)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Successfully refreshed resource: %s", uri)), nil
	}
}

// handleListPages implements the list_pages tool.
func handleListPages(manager *docs.Manager) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(formatPageList(manager.List())), nil
	}
}
