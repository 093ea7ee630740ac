// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Wikitrend MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Wikitrend Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_summary ---
	s.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Summarize the pageview dataset: record and article counts, total and mean daily views, date bounds."),
		mcp.WithString("dataset", mcp.Description("Path to the pageview CSV (defaults to the configured dataset).")),
		mcp.WithString("start", mcp.Description("Inclusive range start as YYYY-MM-DD.")),
		mcp.WithString("end", mcp.Description("Inclusive range end as YYYY-MM-DD.")),
		mcp.WithNumber("year", mcp.Description("Restrict to a single calendar year.")),
	), h.handleGetSummary)

	// --- 2. Tool: get_peak_report ---
	s.AddTool(mcp.NewTool("get_peak_report",
		mcp.WithDescription("Detect pageview peaks and attribute each peak day to its top contributing articles."),
		mcp.WithString("dataset", mcp.Description("Path to the pageview CSV.")),
		mcp.WithString("detect", mcp.Description("Peak detection strategy."), mcp.Enum("known", "prominence")),
		mcp.WithString("peaks_file", mcp.Description("Path to a known-peaks CSV (required for 'known' detection).")),
		mcp.WithNumber("top", mcp.Description("Number of contributors to report per peak.")),
		mcp.WithNumber("year", mcp.Description("Restrict to a single calendar year.")),
		mcp.WithString("exclude", mcp.Description("Comma-separated article titles to drop before analysis.")),
	), h.handleGetPeakReport)

	// --- 3. Tool: get_top_articles ---
	s.AddTool(mcp.NewTool("get_top_articles",
		mcp.WithDescription("Rank articles by total pageviews over the selected range."),
		mcp.WithString("dataset", mcp.Description("Path to the pageview CSV.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
		mcp.WithNumber("year", mcp.Description("Restrict to a single calendar year.")),
		mcp.WithString("exclude", mcp.Description("Comma-separated article titles to drop before ranking.")),
	), h.handleGetTopArticles)

	// --- 4. Tool: get_category_report ---
	s.AddTool(mcp.NewTool("get_category_report",
		mcp.WithDescription("Compare predicted article categories against ground-truth labels."),
		mcp.WithString("categories", mcp.Description("Path to the category predictions CSV.")),
	), h.handleGetCategoryReport)

	return s
}

// StartMCPServer starts the Wikitrend MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
