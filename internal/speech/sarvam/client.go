// Package sarvam is a thin client for the Sarvam text-to-speech and translation
// endpoints.
package sarvam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"voicerelay/internal/speech"
)

const (
	DefaultTTSURL       = "https://api.sarvam.ai/text-to-speech"
	DefaultTranslateURL = "https://api.sarvam.ai/translate"

	TTSModel        = "bulbul:v2"
	SampleRate      = 24000
	AudioCodec      = "mp3"
	TranslateModel  = "mayura:v1"
	TranslateMode   = "modern-colloquial"
	AutoDetect      = "auto"
	subscriptionKey = "api-subscription-key"
)

// TTSRequest is the text-to-speech request body.
type TTSRequest struct {
	Text                string  `json:"text"`
	TargetLanguageCode  string  `json:"target_language_code"`
	Model               string  `json:"model"`
	Speaker             string  `json:"speaker"`
	Pace                float64 `json:"pace"`
	Temperature         float64 `json:"temperature"`
	SpeechSampleRate    int     `json:"speech_sample_rate"`
	OutputAudioCodec    string  `json:"output_audio_codec"`
	EnablePreprocessing bool    `json:"enable_preprocessing"`
}

// TTSResponse carries one or more base64 encoded audio payloads.
type TTSResponse struct {
	RequestID string   `json:"request_id"`
	Audios    []string `json:"audios"`
}

// TranslateRequest is the translation request body.
type TranslateRequest struct {
	Input              string `json:"input"`
	SourceLanguageCode string `json:"source_language_code"`
	TargetLanguageCode string `json:"target_language_code"`
	Model              string `json:"model"`
	Mode               string `json:"mode"`
}

// TranslateResponse is the translation response body.
type TranslateResponse struct {
	RequestID          string `json:"request_id"`
	TranslatedText     string `json:"translated_text"`
	SourceLanguageCode string `json:"source_language_code"`
}

// Config configures a Client.
type Config struct {
	APIKey       string
	TTSURL       string
	TranslateURL string
	Timeout      time.Duration
}

// Client talks to both Sarvam endpoints with one subscription key.
type Client struct {
	apiKey       string
	ttsURL       string
	translateURL string
	httpClient   *http.Client
}

// NewClient builds a Client, filling unset URLs and timeout with defaults.
func NewClient(cfg Config) *Client {
	if cfg.TTSURL == "" {
		cfg.TTSURL = DefaultTTSURL
	}
	if cfg.TranslateURL == "" {
		cfg.TranslateURL = DefaultTranslateURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		apiKey:       cfg.APIKey,
		ttsURL:       cfg.TTSURL,
		translateURL: cfg.TranslateURL,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
	}
}

// HasAPIKey reports whether a subscription key is configured.
func (c *Client) HasAPIKey() bool {
	return strings.TrimSpace(c.apiKey) != ""
}

// NewTTSRequest fills the fixed model, sample rate and codec fields.
func NewTTSRequest(text, languageCode, speaker string, pace, temperature float64) TTSRequest {
	return TTSRequest{
		Text:                text,
		TargetLanguageCode:  languageCode,
		Model:               TTSModel,
		Speaker:             speaker,
		Pace:                pace,
		Temperature:         temperature,
		SpeechSampleRate:    SampleRate,
		OutputAudioCodec:    AudioCodec,
		EnablePreprocessing: true,
	}
}

// NewTranslateRequest fills the fixed model, mode and auto-detected source fields.
func NewTranslateRequest(text, targetLanguageCode string) TranslateRequest {
	return TranslateRequest{
		Input:              text,
		SourceLanguageCode: AutoDetect,
		TargetLanguageCode: targetLanguageCode,
		Model:              TranslateModel,
		Mode:               TranslateMode,
	}
}

// TextToSpeech synthesizes req and returns the decoded response.
func (c *Client) TextToSpeech(ctx context.Context, req TTSRequest) (*TTSResponse, error) {
	var resp TTSResponse
	if err := c.post(ctx, "TTS", c.ttsURL, req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Audios) == 0 {
		return nil, fmt.Errorf("TTS response contained no audio")
	}
	return &resp, nil
}

// Translate translates req and returns the decoded response.
func (c *Client) Translate(ctx context.Context, req TranslateRequest) (*TranslateResponse, error) {
	var resp TranslateResponse
	if err := c.post(ctx, "Translate", c.translateURL, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, service, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", service, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", service, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(subscriptionKey, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", service, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", service, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &speech.UpstreamError{
			Service: service,
			Status:  resp.StatusCode,
			Body:    string(respBody),
		}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", service, err)
	}
	return nil
}
