package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/wikitrend/core"
	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/huangsam/wikitrend/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// applyRange reads the shared dataset/range arguments into a cloned config.
func (h *toolHandler) applyRange(cfg *contract.Config, request mcp.CallToolRequest) error {
	if p := request.GetString("dataset", ""); p != "" {
		cfg.DatasetPath = p
	}
	if s := request.GetString("start", ""); s != "" {
		start, err := contract.ParseDay(s)
		if err != nil {
			return fmt.Errorf("invalid start date: %w", err)
		}
		cfg.StartTime = start
	}
	if e := request.GetString("end", ""); e != "" {
		end, err := contract.ParseDay(e)
		if err != nil {
			return fmt.Errorf("invalid end date: %w", err)
		}
		cfg.EndTime = end
	}
	if !cfg.StartTime.IsZero() && !cfg.EndTime.IsZero() && cfg.EndTime.Before(cfg.StartTime) {
		return fmt.Errorf("end date %s is before start date %s",
			cfg.EndTime.Format(contract.DateFormat), cfg.StartTime.Format(contract.DateFormat))
	}
	if y := request.GetInt("year", 0); y > 0 {
		cfg.Year = y
	}
	if ex := request.GetString("exclude", ""); ex != "" {
		var excludes []string
		for _, title := range strings.Split(ex, ",") {
			if trimmed := strings.TrimSpace(title); trimmed != "" {
				excludes = append(excludes, trimmed)
			}
		}
		cfg.Excludes = excludes
	}
	return nil
}

func (h *toolHandler) handleGetSummary(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := h.applyRange(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid summary parameters: %v", err)), nil
	}

	result, err := core.GetSummaryResult(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summary failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPeakReport(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := h.applyRange(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid peak parameters: %v", err)), nil
	}
	if d := request.GetString("detect", ""); d != "" {
		mode := schema.DetectionMode(d)
		if _, ok := schema.ValidDetectionModes[mode]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid detection mode: %s", d)), nil
		}
		cfg.Detection = mode
	}
	if p := request.GetString("peaks_file", ""); p != "" {
		cfg.PeaksPath = p
	}
	if cfg.Detection == schema.KnownDetection && cfg.PeaksPath == "" {
		return mcp.NewToolResultError("peaks_file is required for known detection"), nil
	}
	if n := request.GetInt("top", 0); n > 0 {
		cfg.TopContributors = n
	}

	report, err := core.GetPeakReport(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("peak analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetTopArticles(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := h.applyRange(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid ranking parameters: %v", err)), nil
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	result, err := core.GetTopArticles(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCategoryReport(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("categories", ""); p != "" {
		cfg.CategoriesPath = p
	}

	report, err := core.GetCategoryReport(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("category report failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
