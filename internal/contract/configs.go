package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/wikitrend/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit     = 10  // Top articles shown per query
	MaxResultLimit         = 100 // Hard cap for ranked listings
	DefaultTopContributors = 3   // Contributors attributed per peak
	DefaultPrecision       = 2
	DefaultPeakWindow      = 7 // Days on each side a peak must dominate
	DefaultDatasetPath     = "data/covid_articles_matched_qids.csv"
	DefaultCategoriesPath  = "data/predicted_categories.csv"
)

// DateFormat is the day-granularity date representation used by the
// datasets, flags and all rendered output.
const DateFormat = "2006-01-02"

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	DatasetPath    string
	PeaksPath      string
	CategoriesPath string

	StartTime time.Time // Zero = unbounded
	EndTime   time.Time // Zero = unbounded
	Year      int       // 0 = all years
	Excludes  []string  // Articles removed before ranking

	ResultLimit     int
	TopContributors int

	Detection     schema.DetectionMode
	PeakWindow    int
	MinProminence int64

	Precision  int
	Output     schema.OutputMode
	OutputFile string
	ChartDir   string // Empty disables chart rendering
	Width      int    // Terminal width override (0 = auto-detect)

	CacheBackend   schema.CacheBackend
	CacheDBConnect string // Please use env var as this is plaintext

	HistoryBackend   schema.CacheBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DatasetPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Start            string `mapstructure:"start"`
	End              string `mapstructure:"end"`
	Year             int    `mapstructure:"year"`
	Exclude          string `mapstructure:"exclude"`
	Limit            int    `mapstructure:"limit"`
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	ChartDir         string `mapstructure:"chart-dir"`
	Width            int    `mapstructure:"width"`
	Categories       string `mapstructure:"categories"`
	CacheBackend     string `mapstructure:"cache-backend"`
	CacheDBConnect   string `mapstructure:"cache-db-connect"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Color            string `mapstructure:"color"`

	// --- Fields from peaksCmd.Flags() ---
	Detect        string `mapstructure:"detect"`
	PeaksFile     string `mapstructure:"peaks-file"`
	Top           int    `mapstructure:"top"`
	PeakWindow    int    `mapstructure:"peak-window"`
	MinProminence int64  `mapstructure:"min-prominence"`
}

// Clone returns a copy of the config safe for per-request mutation
// (e.g. MCP handlers overriding limits).
func (c *Config) Clone() *Config {
	clone := *c
	clone.Excludes = make([]string, len(c.Excludes))
	copy(clone.Excludes, c.Excludes)
	return &clone
}

// CloneWithRange returns a copy of the config bounded to [start, end].
func (c *Config) CloneWithRange(start, end time.Time) *Config {
	clone := c.Clone()
	clone.StartTime = start
	clone.EndTime = end
	return clone
}

// ProcessAndValidate converts the raw input into the final validated Config.
// It is the single place where flag/env/file values become typed settings.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Dataset Paths ---
	cfg.DatasetPath = strings.TrimSpace(input.DatasetPathStr)
	if cfg.DatasetPath == "" {
		cfg.DatasetPath = DefaultDatasetPath
	}
	cfg.CategoriesPath = strings.TrimSpace(input.Categories)
	if cfg.CategoriesPath == "" {
		cfg.CategoriesPath = DefaultCategoriesPath
	}
	cfg.PeaksPath = strings.TrimSpace(input.PeaksFile)

	// --- 2. Time Range ---
	if err := processTimeRange(cfg, input); err != nil {
		return err
	}
	cfg.Year = input.Year
	if cfg.Year != 0 && (cfg.Year < 2000 || cfg.Year > 2100) {
		return fmt.Errorf("invalid year %d", cfg.Year)
	}

	// --- 3. Limits ---
	cfg.ResultLimit = input.Limit
	if cfg.ResultLimit < 1 || cfg.ResultLimit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d (received %d)", MaxResultLimit, cfg.ResultLimit)
	}
	cfg.TopContributors = input.Top
	if cfg.TopContributors < 1 || cfg.TopContributors > MaxResultLimit {
		return fmt.Errorf("top must be between 1 and %d (received %d)", MaxResultLimit, cfg.TopContributors)
	}

	// --- 4. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 0 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	cfg.ChartDir = strings.TrimSpace(input.ChartDir)
	cfg.Width = input.Width

	// --- 5. Peak Detection ---
	cfg.Detection = schema.DetectionMode(strings.ToLower(input.Detect))
	if _, ok := schema.ValidDetectionModes[cfg.Detection]; !ok {
		return fmt.Errorf("invalid detection strategy '%s'. must be known or prominence", input.Detect)
	}
	if cfg.Detection == schema.KnownDetection && cfg.PeaksPath == "" {
		return fmt.Errorf("--peaks-file is required when --detect=known")
	}
	cfg.PeakWindow = input.PeakWindow
	if cfg.PeakWindow < 1 {
		return fmt.Errorf("peak-window must be at least 1 (received %d)", cfg.PeakWindow)
	}
	cfg.MinProminence = input.MinProminence
	if cfg.MinProminence < 0 {
		return fmt.Errorf("min-prominence cannot be negative (received %d)", cfg.MinProminence)
	}

	// --- 6. Backend Validation ---
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}

	// --- 7. Excludes Processing ---
	cfg.Excludes = nil
	if input.Exclude != "" {
		for p := range strings.SplitSeq(input.Exclude, ",") {
			trimmed := strings.TrimSpace(p)
			if trimmed != "" {
				cfg.Excludes = append(cfg.Excludes, trimmed)
			}
		}
	}

	// --- 8. Color Handling ---
	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color value: %w", err)
	}
	cfg.UseColors = useColors

	return nil
}

// processTimeRange parses the optional start/end day bounds.
func processTimeRange(cfg *Config, input *ConfigRawInput) error {
	cfg.StartTime = time.Time{}
	cfg.EndTime = time.Time{}

	if input.Start != "" {
		t, err := ParseDay(input.Start)
		if err != nil {
			return fmt.Errorf("invalid start date '%s'. Expected %s: %w", input.Start, DateFormat, err)
		}
		cfg.StartTime = t
	}
	if input.End != "" {
		t, err := ParseDay(input.End)
		if err != nil {
			return fmt.Errorf("invalid end date '%s'. Expected %s: %w", input.End, DateFormat, err)
		}
		cfg.EndTime = t
	}

	if !cfg.StartTime.IsZero() && !cfg.EndTime.IsZero() && cfg.StartTime.After(cfg.EndTime) {
		return fmt.Errorf("start date (%s) cannot be after end date (%s)",
			cfg.StartTime.Format(DateFormat), cfg.EndTime.Format(DateFormat))
	}

	return nil
}

// validateBackendConfigs validates the cache and history store settings.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.CacheBackend = schema.CacheBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidCacheBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, or none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	// History tracking is opt-in; empty backend disables it.
	if input.HistoryBackend != "" {
		cfg.HistoryBackend = schema.CacheBackend(strings.ToLower(input.HistoryBackend))
		if _, ok := schema.ValidCacheBackends[cfg.HistoryBackend]; !ok {
			return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, or none", input.HistoryBackend)
		}
		cfg.HistoryDBConnect = input.HistoryDBConnect
		if err := ValidateConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
			return err
		}
	}

	return nil
}

// ValidateConnectionString checks that remote backends carry a connection string.
// SQLite and none work without one (SQLite falls back to the home-directory file).
func ValidateConnectionString(backend schema.CacheBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if strings.TrimSpace(connStr) == "" {
			return fmt.Errorf("%s backend requires a connection string", backend)
		}
	}
	return nil
}

// ParseDay parses a YYYY-MM-DD string into a UTC midnight timestamp.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
