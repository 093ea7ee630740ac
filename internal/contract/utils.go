package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Contribution label constants.
const (
	DominantValue = "Dominant" // Single article carries most of the peak
	MajorValue    = "Major"    // Major share
	ModerateValue = "Moderate" // Moderate share
	MinorValue    = "Minor"    // Long-tail contributor
)

// Color variables for console output.
var (
	DominantColor = color.New(color.FgRed, color.Bold)     // dominantColor flags a single-article spike.
	MajorColor    = color.New(color.FgMagenta, color.Bold) // majorColor flags a heavy contributor.
	ModerateColor = color.New(color.FgYellow)              // moderateColor represents a middling share, not bold.
	MinorColor    = color.New(color.FgCyan)                // minorColor represents long-tail signal.
)

// GetPlainLabel returns a plain text label for an article's percent share of
// a peak. This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(percent float64) string {
	switch {
	case percent >= 50:
		return DominantValue
	case percent >= 25:
		return MajorValue
	case percent >= 10:
		return ModerateValue
	default:
		return MinorValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(percent float64) string {
	text := GetPlainLabel(percent)

	switch text {
	case DominantValue:
		return DominantColor.Sprint(text)
	case MajorValue:
		return MajorColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Minor"
		return MinorColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It writes to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for result caching.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".wikitrend_cache.db"
	}
	return filepath.Join(homeDir, ".wikitrend_cache.db")
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".wikitrend_history.db"
	}
	return filepath.Join(homeDir, ".wikitrend_history.db")
}

// TruncateArticle truncates an article title to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis and at least one rune.
func TruncateArticle(article string, maxWidth int) string {
	runes := []rune(article)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return article
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
