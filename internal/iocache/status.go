package iocache

import (
	"fmt"

	"github.com/huangsam/wikitrend/internal/contract"
)

// PrintStoreStatus prints status information for a cache or history store.
func PrintStoreStatus(label string, status *contract.StoreStatus) {
	fmt.Printf("%s Backend: %s\n", label, status.Backend)
	fmt.Printf("Total Entries: %d\n", status.Entries)
	if status.Entries > 0 {
		fmt.Printf("Oldest Entry: %s\n", status.OldestEntry.Format("2006-01-02 15:04:05"))
		fmt.Printf("Newest Entry: %s\n", status.NewestEntry.Format("2006-01-02 15:04:05"))
	}
}

// PrintRunHistory prints recorded runs, oldest first.
func PrintRunHistory(runs []contract.RunRecord) {
	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return
	}
	for _, run := range runs {
		end := "-"
		if run.EndTime != nil {
			end = run.EndTime.Format("2006-01-02 15:04:05")
		}
		fmt.Printf("#%d %s started=%s ended=%s rows=%d params=%s\n",
			run.RunID, run.Command, run.StartTime.Format("2006-01-02 15:04:05"), end, run.ResultRows, run.Params)
	}
}
