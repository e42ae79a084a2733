package swiftmt

import (
	"sync"

	"github.com/deltran/swiftmt/internal/config"
	"github.com/deltran/swiftmt/pkg/verrors"
)

// BatchResult pairs one input's parse outcome with its index, preserving
// input order even though work runs concurrently.
type BatchResult struct {
	Index   int
	Message *ParsedMessage
	Report  *verrors.Report
	Err     error
}

// Batch parses every message in raws concurrently across a bounded worker
// pool of workers goroutines (at least one), mirroring gateway-go's
// sync.WaitGroup-based fan-out (internal/server.Server). Results are
// returned in input order regardless of completion order.
func Batch(raws [][]byte, cfg *config.Config, workers int) []BatchResult {
	if workers <= 0 {
		workers = 1
	}
	results := make([]BatchResult, len(raws))
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				pm, rep, err := ParseAuto(raws[i], cfg)
				results[i] = BatchResult{Index: i, Message: pm, Report: rep, Err: err}
			}
		}()
	}

	for i := range raws {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
