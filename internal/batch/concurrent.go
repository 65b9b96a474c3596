package batch

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/johnparkerg/deepgram-batch-transcription/internal/deepgram"
	"github.com/johnparkerg/deepgram-batch-transcription/internal/media"
)

// runConcurrent processes files with bounded parallelism. Per-file isolation
// is unchanged: workers never return an error, so one failed file cannot
// cancel the group. Results keep discovery order.
func runConcurrent(ctx context.Context, client *deepgram.Client, files []media.File, opts Options, limiter *rate.Limiter, bar *progress) *Report {
	report := &Report{Results: make([]FileResult, len(files))}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			select {
			case <-gctx.Done():
				mu.Lock()
				report.Results[i] = FileResult{File: file, Err: gctx.Err()}
				mu.Unlock()
				return nil
			default:
			}

			res := processFile(gctx, client, file, i, len(files), opts, limiter)
			mu.Lock()
			report.Results[i] = res
			mu.Unlock()
			bar.increment()
			return nil
		})
	}

	g.Wait()
	return report
}
