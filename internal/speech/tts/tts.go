// internal/speech/tts/tts.go
package tts

import (
	"context"
	"fmt"

	"voicerelay/internal/speech/cache"
)

// FingerprintPrefix is how many runes of the text take part in a fingerprint.
const FingerprintPrefix = 50

// SampleRate is the output rate requested from engines that let us choose one.
const SampleRate = 24000

// Request describes one synthesis call.
type Request struct {
	Text         string
	LanguageCode string
	Speaker      string
	Pace         float64
	Temperature  float64
}

// Synthesizer turns a Request into a base64 encoded, playable audio payload.
type Synthesizer interface {
	Synthesize(ctx context.Context, req Request) (string, error)
}

// Fingerprint is the cache key for req. Temperature is not part of it and only the
// first FingerprintPrefix runes of the text are.
func Fingerprint(req Request) string {
	return fmt.Sprintf("%s:%s:%g:%s", req.LanguageCode, req.Speaker, req.Pace,
		cache.Prefix(req.Text, FingerprintPrefix))
}
