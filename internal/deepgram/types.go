package deepgram

// Response is the top-level JSON structure returned by /v1/listen. Every
// level is optional: the API omits utterances for short or silent audio and
// may return no channels at all, so consumers must tolerate any subset of
// these fields being absent.
type Response struct {
	Results *Results `json:"results,omitempty"`
}

// Results holds the transcription payload.
type Results struct {
	Channels   []Channel   `json:"channels,omitempty"`
	Utterances []Utterance `json:"utterances,omitempty"`
}

// Channel is one audio channel's transcription candidates.
type Channel struct {
	Alternatives []Alternative `json:"alternatives,omitempty"`
}

// Alternative is one candidate transcription; only the first is used.
type Alternative struct {
	Transcript string `json:"transcript"`
}

// Utterance is one contiguous speech segment attributed to a single speaker,
// present only when diarization was requested.
type Utterance struct {
	Speaker    int    `json:"speaker"`
	Transcript string `json:"transcript"`
}
