// Package transcript renders a Deepgram response as plain text.
package transcript

import (
	"fmt"
	"strings"

	"github.com/johnparkerg/deepgram-batch-transcription/internal/deepgram"
)

// Format converts a transcription response into the output text. With
// diarize set and an utterances field present (even empty), each utterance
// becomes a "[Speaker <n>]: <text>" line, joined by blank lines. Otherwise
// the first channel's first alternative is used. Format is total over partial
// responses: any missing level simply yields an empty string, which callers
// must treat as valid output.
func Format(resp *deepgram.Response, diarize bool) string {
	if resp == nil || resp.Results == nil {
		return ""
	}
	results := resp.Results

	var lines []string

	// The branch keys on the utterances field being present, not non-empty:
	// a response carrying "utterances": [] stays on the diarized path and
	// yields empty output.
	if diarize && results.Utterances != nil {
		for _, u := range results.Utterances {
			text := strings.TrimSpace(u.Transcript)
			lines = append(lines, fmt.Sprintf("[Speaker %d]: %s", u.Speaker, text))
		}
	} else if len(results.Channels) > 0 {
		// Diarization may have been requested but the API omits the field
		// entirely for short or silent audio; fall back to the channel
		// transcript.
		alternatives := results.Channels[0].Alternatives
		if len(alternatives) > 0 {
			lines = append(lines, alternatives[0].Transcript)
		}
	}

	return strings.Join(lines, "\n\n")
}
