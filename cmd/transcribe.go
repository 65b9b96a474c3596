package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnparkerg/deepgram-batch-transcription/internal/batch"
	"github.com/johnparkerg/deepgram-batch-transcription/internal/config"
	"github.com/johnparkerg/deepgram-batch-transcription/internal/deepgram"
	"github.com/johnparkerg/deepgram-batch-transcription/internal/media"
)

var (
	language    string
	diarization bool
	outputExt   string
	apiKey      string
	concurrency int
	rateLimit   int
	timeoutMin  int
)

func runTranscribe(cmd *cobra.Command, args []string) error {
	folder := args[0]

	key, err := config.ResolveAPIKey(apiKey)
	if err != nil {
		return err
	}

	info, err := os.Stat(folder)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("folder %q does not exist", folder)
		}
		return fmt.Errorf("stat folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", folder)
	}

	files, err := media.Discover(folder)
	if err != nil {
		return fmt.Errorf("scan folder: %w", err)
	}
	if len(files) == 0 {
		slog.Info("no supported audio/video files found", "folder", folder)
		return nil
	}

	slog.Info("found files to transcribe", "count", len(files))

	// Graceful cancellation between files on Ctrl-C.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := deepgram.New(key)
	client.HTTPClient.Timeout = time.Duration(timeoutMin) * time.Minute

	report := batch.Run(ctx, client, files, batch.Options{
		Language:        language,
		Diarize:         diarization,
		OutputExt:       outputExt,
		Concurrency:     concurrency,
		RateLimitPerMin: rateLimit,
		ShowProgress:    !quiet,
	})

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}

	// Per-file failures were already logged; they do not fail the run.
	slog.Info("transcription complete",
		"succeeded", report.Succeeded(),
		"failed", report.Failed())
	return nil
}
