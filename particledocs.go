// Package particledocs serves Particle Network documentation over MCP.
// It fetches a fixed set of documentation pages, extracts their content
// as markdown-like text, caches results on disk with a TTL, parses the
// text into sections, code blocks and links, and exposes search and
// retrieval over the parsed documents.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// fs/) or their function (fetch/, docs/).
package particledocs
