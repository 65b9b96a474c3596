package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/johnparkerg/deepgram-batch-transcription/internal/config"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "deepscribe <folder>",
	Short: "Batch-transcribe audio/video files in a folder using Deepgram",
	Long: `Deepscribe transcribes every supported audio/video file in a folder using
the Deepgram Speech-to-Text API and writes a transcript next to each source
file. Speaker diarization, language hints, and the output extension are
configurable; a failing file is logged and skipped, never aborting the batch.

Supported formats: mp4, mp3, wav, m4a, flac, ogg, webm`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runTranscribe,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
		// Credentials may live in a .env file; absence is not an error.
		if err := godotenv.Load(); err == nil {
			slog.Debug("loaded environment from .env")
		}
	},
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	defaults := config.Default()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.Flags().StringVarP(&language, "lang", "l", "", "language code (e.g. en, es, fr); auto-detected if not set")
	rootCmd.Flags().BoolVarP(&diarization, "diarization", "d", false, "enable speaker diarization")
	rootCmd.Flags().StringVarP(&outputExt, "ext", "e", defaults.OutputExt, "output file extension")
	rootCmd.Flags().StringVarP(&apiKey, "api-key", "k", "", "Deepgram API key (defaults to DEEPGRAM_API_KEY env var)")
	rootCmd.Flags().IntVarP(&concurrency, "concurrency", "j", defaults.Concurrency, "max concurrent uploads")
	rootCmd.Flags().IntVar(&rateLimit, "rate-limit", defaults.RateLimitPerMin, "API requests per minute (0 = unlimited)")
	rootCmd.Flags().IntVar(&timeoutMin, "timeout", defaults.TimeoutMin, "per-file request timeout in minutes")
}
