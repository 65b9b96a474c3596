package deepgram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the Deepgram pre-recorded transcription endpoint.
	DefaultBaseURL = "https://api.deepgram.com/v1/listen"

	// DefaultModel is the model requested on every transcription.
	DefaultModel = "nova-3"

	// utteranceSplit is the silence threshold (seconds) at which Deepgram
	// starts a new utterance when diarizing.
	utteranceSplit = "2.0"

	defaultTimeout = 10 * time.Minute
)

// contentTypeForExt maps a file extension to the Content-Type header sent
// with the upload. Unknown extensions fall back to audio/mpeg; the
// discoverer's allow-list should make that unreachable, but the default is
// kept for direct callers.
func contentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".mp4", ".m4a":
		return "audio/mp4"
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".flac":
		return "audio/flac"
	case ".ogg":
		return "audio/ogg"
	case ".webm":
		return "audio/webm"
	default:
		return "audio/mpeg"
	}
}

// Options are the per-request transcription features.
type Options struct {
	Language string // BCP-47 code; empty means auto-detect
	Diarize  bool
}

// Client talks to the Deepgram pre-recorded transcription API.
type Client struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// New returns a Client with production defaults. BaseURL and HTTPClient are
// exported so tests can point the client at a local server.
func New(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		Model:      DefaultModel,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Transcribe uploads the file at path and returns the parsed response.
// The file is streamed as the raw request body; the handle is closed before
// returning regardless of outcome. A non-2xx status yields an *APIError,
// an undecodable body a *ParseError.
func (c *Client) Transcribe(ctx context.Context, path string, opts Options) (*Response, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.requestURL(opts), f)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.ContentLength = stat.Size()
	req.Header.Set("Authorization", "Token "+c.APIKey)
	req.Header.Set("Content-Type", contentTypeForExt(filepath.Ext(path)))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &result, nil
}

// requestURL builds the endpoint URL with the query parameters encoding the
// requested features.
func (c *Client) requestURL(opts Options) string {
	params := url.Values{}
	params.Set("punctuate", "true")
	params.Set("model", c.Model)
	params.Set("smart_format", "true")
	params.Set("paragraphs", "true")

	if opts.Language != "" {
		params.Set("language", opts.Language)
	}
	if opts.Diarize {
		params.Set("diarize", "true")
		params.Set("utterances", "true")
		params.Set("utt_split", utteranceSplit)
	}

	return c.BaseURL + "?" + params.Encode()
}
