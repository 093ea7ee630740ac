// Package contract holds configuration, shared interfaces and CLI-boundary
// helpers that the rest of wikitrend depends on.
package contract

import "time"

// CacheStore abstracts durable storage of serialized query results.
type CacheStore interface {
	// Get retrieves a value, its version and its storage timestamp by key.
	Get(key string) (value []byte, version int, timestamp int64, err error)
	// Set stores a value with a version under the key.
	Set(key string, value []byte, version int) error
	// Clear removes all entries.
	Clear() error
	// GetStatus reports entry counts and backend details.
	GetStatus() (*StoreStatus, error)
	// Close releases the underlying connection.
	Close() error
}

// HistoryStore records report runs for later inspection and export.
type HistoryStore interface {
	// BeginRun records the start of a command run and returns its ID.
	BeginRun(startTime time.Time, command string, params map[string]any) (int64, error)
	// EndRun finalizes a run with its completion time and result row count.
	EndRun(runID int64, endTime time.Time, resultRows int) error
	// GetAllRuns returns every recorded run, oldest first.
	GetAllRuns() ([]RunRecord, error)
	// GetStatus reports run counts and backend details.
	GetStatus() (*StoreStatus, error)
	// Clear removes all recorded runs.
	Clear() error
	// Close releases the underlying connection.
	Close() error
}

// StoreManager hands out the configured stores. Either may be nil when the
// corresponding backend is disabled.
type StoreManager interface {
	GetCacheStore() CacheStore
	GetHistoryStore() HistoryStore
}

// StoreStatus describes a store's backend and contents.
type StoreStatus struct {
	Backend     string    `json:"backend"`
	Entries     int64     `json:"entries"`
	OldestEntry time.Time `json:"oldest_entry,omitzero"`
	NewestEntry time.Time `json:"newest_entry,omitzero"`
}

// RunRecord is one recorded command run.
type RunRecord struct {
	RunID      int64      `json:"run_id"`
	Command    string     `json:"command"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	ResultRows int        `json:"result_rows"`
	Params     string     `json:"params"` // JSON-encoded invocation parameters
}
