package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

// TestDetectionFlagsRegistered tests that every command running peak
// detection exposes the detection flags.
func TestDetectionFlagsRegistered(t *testing.T) {
	commands := map[string]*cobra.Command{
		"peaks":  peaksCmd,
		"series": seriesCmd,
		"report": reportCmd,
	}
	flags := []string{"detect", "peaks-file", "top", "peak-window", "min-prominence"}
	for name, c := range commands {
		for _, flag := range flags {
			assert.NotNil(t, c.Flags().Lookup(flag), "%s should have --%s", name, flag)
		}
	}
}
