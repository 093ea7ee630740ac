package mcp_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/wikitrend/internal/contract"
	mcp_internal "github.com/huangsam/wikitrend/internal/mcp"
	"github.com/huangsam/wikitrend/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pageviews.csv")
	content := "article,date,pageviews\n" +
		"Coronavirus,2023-02-06,400\n" +
		"Coronavirus,2023-02-07,900\n" +
		"Coronavirus,2023-02-08,300\n" +
		"Lockdown,2023-02-07,100\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeCategories(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "predicted_categories.csv")
	content := "article,predicted_label,ground_truth\n" +
		"Coronavirus,pandemic,pandemic\n" +
		"Lockdown,public health,pandemic\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		DatasetPath:     "data/pageviews.csv",
		Detection:       schema.ProminenceDetection,
		TopContributors: 3,
		ResultLimit:     10,
	}

	// Create a dummy manager, though we shouldn't hit it because we test validation errors
	var mgr contract.StoreManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("get_summary invalid start date", func(t *testing.T) {
		tool := s.GetTool("get_summary")
		require.NotNil(t, tool, "Tool get_summary should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_summary",
				Arguments: map[string]any{
					"start": "03/01/2023", // Invalid format
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid start date")
	})

	t.Run("get_summary inverted range", func(t *testing.T) {
		tool := s.GetTool("get_summary")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_summary",
				Arguments: map[string]any{
					"start": "2023-06-01",
					"end":   "2023-01-01", // Before start
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "before start date")
	})

	t.Run("get_peak_report invalid detection mode", func(t *testing.T) {
		tool := s.GetTool("get_peak_report")
		require.NotNil(t, tool, "Tool get_peak_report should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_peak_report",
				Arguments: map[string]any{
					"detect": "wavelet", // Unsupported
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid detection mode")
	})

	t.Run("get_peak_report known detection without peaks file", func(t *testing.T) {
		tool := s.GetTool("get_peak_report")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_peak_report",
				Arguments: map[string]any{
					"detect": "known", // No peaks_file supplied
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "peaks_file is required")
	})

	t.Run("get_top_articles missing dataset", func(t *testing.T) {
		tool := s.GetTool("get_top_articles")
		require.NotNil(t, tool, "Tool get_top_articles should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_top_articles",
				Arguments: map[string]any{
					"dataset": "does/not/exist.csv",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError, "The response should surface the load failure")
	})

	t.Run("get_category_report missing file", func(t *testing.T) {
		tool := s.GetTool("get_category_report")
		require.NotNil(t, tool, "Tool get_category_report should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_category_report",
				Arguments: map[string]any{
					"categories": "does/not/exist.csv",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}

func TestMCPServerHandlers_SuccessPaths(t *testing.T) {
	dataset := writeDataset(t)
	categories := writeCategories(t)

	baseCfg := &contract.Config{
		DatasetPath:     dataset,
		CategoriesPath:  categories,
		Detection:       schema.ProminenceDetection,
		PeakWindow:      1,
		TopContributors: 3,
		ResultLimit:     10,
	}

	var mgr contract.StoreManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)
	ctx := context.Background()

	t.Run("get_summary returns JSON", func(t *testing.T) {
		tool := s.GetTool("get_summary")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "get_summary", Arguments: map[string]any{}},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)
		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"total_views"`)
	})

	t.Run("get_top_articles honors exclude", func(t *testing.T) {
		tool := s.GetTool("get_top_articles")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_top_articles",
				Arguments: map[string]any{"exclude": "Coronavirus"},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)
		text := res.Content[0].(mcp.TextContent).Text
		assert.NotContains(t, text, "Coronavirus")
		assert.Contains(t, text, "Lockdown")
	})

	t.Run("get_category_report returns counts", func(t *testing.T) {
		tool := s.GetTool("get_category_report")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "get_category_report", Arguments: map[string]any{}},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)
		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"agreement"`)
	})
}
