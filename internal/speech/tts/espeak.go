package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// eSpeak voice per language code. eSpeak voices are per language, so the
// requested speaker is not used.
var espeakVoices = map[string]string{
	"hi-IN": "hi",
	"bn-IN": "bn",
	"ta-IN": "ta",
	"te-IN": "te",
	"gu-IN": "gu",
	"kn-IN": "kn",
	"ml-IN": "ml",
	"mr-IN": "mr",
	"pa-IN": "pa",
	"od-IN": "or",
	"en-IN": "en",
}

// ESpeakSynthesizer renders speech offline with eSpeak/eSpeak-NG and returns
// base64 encoded WAV audio.
type ESpeakSynthesizer struct {
	path string
}

func newESpeakSynthesizer() (*ESpeakSynthesizer, error) {
	path, err := findESpeakExecutable()
	if err != nil {
		return nil, fmt.Errorf("eSpeak not found: %w", err)
	}

	if err := exec.Command(path, "--version").Run(); err != nil {
		return nil, fmt.Errorf("eSpeak test failed: %w", err)
	}

	return &ESpeakSynthesizer{path: path}, nil
}

func findESpeakExecutable() (string, error) {
	candidates := []string{"espeak-ng", "espeak"}

	for _, candidate := range candidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("eSpeak executable not found in PATH")
}

func (e *ESpeakSynthesizer) Synthesize(ctx context.Context, req Request) (string, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.path, espeakArgs(req)...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("eSpeak failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	if len(out) == 0 {
		return "", fmt.Errorf("eSpeak produced no audio")
	}

	return base64.StdEncoding.EncodeToString(out), nil
}

func espeakArgs(req Request) []string {
	args := []string{"--stdout"}

	voice, ok := espeakVoices[req.LanguageCode]
	if !ok {
		voice = strings.ToLower(strings.SplitN(req.LanguageCode, "-", 2)[0])
	}
	if voice != "" {
		args = append(args, "-v", voice)
	}

	// words per minute, eSpeak default is 175
	pace := req.Pace
	if pace <= 0 {
		pace = 1.0
	}
	args = append(args, "-s", strconv.Itoa(int(175*pace)))

	return append(args, req.Text)
}
