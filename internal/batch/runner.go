// Package batch orchestrates transcription of a set of discovered files.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/time/rate"

	"github.com/johnparkerg/deepgram-batch-transcription/internal/deepgram"
	"github.com/johnparkerg/deepgram-batch-transcription/internal/media"
	"github.com/johnparkerg/deepgram-batch-transcription/internal/transcript"
)

// Options configures a batch run.
type Options struct {
	Language        string
	Diarize         bool
	OutputExt       string
	Concurrency     int // <= 1 means fully sequential
	RateLimitPerMin int // 0 disables rate limiting
	ShowProgress    bool
}

// FileResult is the outcome for a single file. Err is nil when the
// transcript was written to Output.
type FileResult struct {
	File   media.File
	Output string
	Err    error
}

// Report collects all per-file outcomes of a run. A failed file never fails
// the batch; it is visible here and in the logs.
type Report struct {
	Results []FileResult
}

func (r *Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

func (r *Report) Failed() int {
	return len(r.Results) - r.Succeeded()
}

// OutputPath derives the transcript path for src: same directory and stem,
// extension replaced by ext (leading dot optional, original case of the
// source extension irrelevant).
func OutputPath(src, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	return strings.TrimSuffix(src, filepath.Ext(src)) + "." + ext
}

// Run transcribes every file and returns the collected report. Each file is
// isolated: a transcription or write failure is logged and recorded, and
// processing continues with the next file. Cancellation is checked between
// files, not mid-request.
func Run(ctx context.Context, client *deepgram.Client, files []media.File, opts Options) *Report {
	var limiter *rate.Limiter
	if opts.RateLimitPerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RateLimitPerMin)/60.0), 1)
	}

	bar := newProgress(len(files), opts.ShowProgress)
	defer bar.wait()

	var report *Report
	if opts.Concurrency > 1 {
		report = runConcurrent(ctx, client, files, opts, limiter, bar)
	} else {
		report = runSequential(ctx, client, files, opts, limiter, bar)
	}
	return report
}

func runSequential(ctx context.Context, client *deepgram.Client, files []media.File, opts Options, limiter *rate.Limiter, bar *progress) *Report {
	report := &Report{}
	for i, file := range files {
		select {
		case <-ctx.Done():
			return report
		default:
		}

		report.Results = append(report.Results, processFile(ctx, client, file, i, len(files), opts, limiter))
		bar.increment()
	}
	return report
}

// processFile runs the full pipeline for one file: transcribe, format,
// write. All failure modes are returned in the FileResult, already logged.
func processFile(ctx context.Context, client *deepgram.Client, file media.File, index, total int, opts Options, limiter *rate.Limiter) FileResult {
	outputPath := OutputPath(file.Path, opts.OutputExt)
	result := FileResult{File: file, Output: outputPath}

	slog.Info("transcribing",
		"progress", fmt.Sprintf("%d/%d", index+1, total),
		"file", filepath.Base(file.Path),
		"output", filepath.Base(outputPath))

	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			result.Err = fmt.Errorf("rate limiter: %w", err)
			return result
		}
	}

	resp, err := client.Transcribe(ctx, file.Path, deepgram.Options{
		Language: opts.Language,
		Diarize:  opts.Diarize,
	})
	if err != nil {
		result.Err = err
		slog.Error("transcription failed",
			"file", filepath.Base(file.Path), "err", err)
		return result
	}

	content := transcript.Format(resp, opts.Diarize)
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		result.Err = fmt.Errorf("write transcript: %w", err)
		slog.Error("write failed",
			"file", filepath.Base(file.Path), "err", err)
		return result
	}

	slog.Info("saved", "output", filepath.Base(outputPath))
	return result
}
