package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DetectionMode represents the peak detection strategy.
	DetectionMode string

	// CacheBackend represents the database backend for result caching.
	CacheBackend string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All peak detection strategies supported.
const (
	// KnownDetection reads peaks from an externally supplied lookup table.
	KnownDetection DetectionMode = "known"
	// ProminenceDetection scans the daily series for local maxima whose
	// topographic prominence clears a configured threshold.
	ProminenceDetection DetectionMode = "prominence" // default
)

// All cache backends supported.
const (
	SQLiteBackend     CacheBackend = "sqlite" // default
	MySQLBackend      CacheBackend = "mysql"
	PostgreSQLBackend CacheBackend = "postgresql"
	NoneBackend       CacheBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDetectionModes lists all valid detection strategies.
var ValidDetectionModes = map[DetectionMode]struct{}{
	KnownDetection:      {},
	ProminenceDetection: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[CacheBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// CandidateCategories are the zero-shot classification labels used when the
// upstream pipeline categorized the COVID-19 articles. Displayed alongside
// the prediction table; wikitrend does not produce these labels itself.
var CandidateCategories = []string{
	"misinformation",
	"vaccine",
	"treatment",
	"lockdown",
	"human",
	"government",
	"facility",
	"response",
	"variant",
	"societal impact",
	"timeline",
	"disease",
}
