// main is the entry point for the wikitrend CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/wikitrend/cmd"
	"github.com/huangsam/wikitrend/internal/iocache"
)

func main() {
	defer iocache.CloseStores()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
