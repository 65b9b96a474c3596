package main

import (
	"os"

	"github.com/johnparkerg/deepgram-batch-transcription/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
