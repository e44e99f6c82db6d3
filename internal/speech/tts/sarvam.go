package tts

import (
	"context"
	"fmt"

	"voicerelay/internal/speech/sarvam"
)

// SarvamSynthesizer synthesizes speech through the Sarvam text-to-speech endpoint.
type SarvamSynthesizer struct {
	client *sarvam.Client
}

func NewSarvamSynthesizer(client *sarvam.Client) *SarvamSynthesizer {
	return &SarvamSynthesizer{client: client}
}

func (s *SarvamSynthesizer) Synthesize(ctx context.Context, req Request) (string, error) {
	resp, err := s.client.TextToSpeech(ctx, sarvam.NewTTSRequest(
		req.Text, req.LanguageCode, req.Speaker, req.Pace, req.Temperature))
	if err != nil {
		return "", fmt.Errorf("failed to synthesize %s: %w", req.LanguageCode, err)
	}
	return resp.Audios[0], nil
}
