package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvAPIKey is the environment variable consulted when --api-key is not given.
const EnvAPIKey = "DEEPGRAM_API_KEY"

// Config holds the full application configuration.
type Config struct {
	OutputExt       string
	Concurrency     int
	RateLimitPerMin int
	TimeoutMin      int
}

// Default returns a Config with the tool's hardcoded defaults. Concurrency 1
// keeps the batch fully sequential; rate limiting is off unless requested.
func Default() *Config {
	return &Config{
		OutputExt:       "txt",
		Concurrency:     1,
		RateLimitPerMin: 0,
		TimeoutMin:      10,
	}
}

// ResolveAPIKey returns the effective Deepgram credential: the flag value if
// set, otherwise the DEEPGRAM_API_KEY environment variable.
func ResolveAPIKey(flagValue string) (string, error) {
	if key := strings.TrimSpace(flagValue); key != "" {
		return key, nil
	}
	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("deepgram API key required: set %s or use --api-key", EnvAPIKey)
}
