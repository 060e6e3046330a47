package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createSearchDocsTool returns the search_docs tool definition.
func createSearchDocsTool() mcp.Tool {
	return mcp.NewTool("search_docs",
		mcp.WithDescription("Search across Particle documentation for specific content"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query to find relevant documentation"),
		),
	)
}

// createRefreshResourceTool returns the refresh_resource tool definition.
func createRefreshResourceTool() mcp.Tool {
	return mcp.NewTool("refresh_resource",
		mcp.WithDescription("Refresh cached content for a specific documentation page"),
		mcp.WithString("uri",
			mcp.Required(),
			mcp.Description("Resource URI to refresh (e.g., particle://universal-accounts/overview)"),
		),
	)
}

// createListPagesTool returns the list_pages tool definition.
func createListPagesTool() mcp.Tool {
	return mcp.NewTool("list_pages",
		mcp.WithDescription("List all available Particle documentation pages with their categories"),
	)
}
