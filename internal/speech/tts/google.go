package tts

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2/apierror"

	"voicerelay/internal/speech"
)

// GoogleSynthesizer synthesizes speech with Google Cloud Text-to-Speech. Speakers
// that are not full Google voice names (e.g. "anushka") fall back to the default
// voice for the language.
type GoogleSynthesizer struct {
	client *texttospeech.Client
}

func newGoogleSynthesizer(ctx context.Context) (*GoogleSynthesizer, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create TTS client: %w", err)
	}
	return &GoogleSynthesizer{client: client}, nil
}

func (g *GoogleSynthesizer) Synthesize(ctx context.Context, req Request) (string, error) {
	voice := &texttospeechpb.VoiceSelectionParams{LanguageCode: req.LanguageCode}
	if strings.Count(req.Speaker, "-") >= 2 {
		voice.Name = req.Speaker
	}

	audioCfg := &texttospeechpb.AudioConfig{
		AudioEncoding:   texttospeechpb.AudioEncoding_MP3,
		SampleRateHertz: SampleRate,
	}
	// Chirp voices reject speakingRate.
	if !strings.Contains(strings.ToLower(voice.Name), "chirp") && req.Pace > 0 {
		audioCfg.SpeakingRate = req.Pace
	}

	resp, err := g.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: req.Text},
		},
		Voice:       voice,
		AudioConfig: audioCfg,
	})
	if err != nil {
		return "", fmt.Errorf("failed to synthesize %s: %w", req.LanguageCode, googleError(err))
	}

	return base64.StdEncoding.EncodeToString(resp.AudioContent), nil
}

// Close releases the underlying gRPC connection.
func (g *GoogleSynthesizer) Close() error {
	return g.client.Close()
}

func googleError(err error) error {
	ae, ok := apierror.FromError(err)
	if !ok {
		return err
	}
	if st := ae.GRPCStatus(); st != nil {
		return &speech.UpstreamError{Service: "Google TTS", Status: int(st.Code()), Body: st.Message()}
	}
	return &speech.UpstreamError{Service: "Google TTS", Status: ae.HTTPCode(), Body: ae.Error()}
}
