package tts

import (
	"context"
	"fmt"
	"os"

	"voicerelay/internal/speech/sarvam"
)

type EngineType string

const (
	EngineTypeMock   EngineType = "mock"
	EngineTypeSarvam EngineType = "sarvam"
	EngineTypeGoogle EngineType = "google"
	EngineTypeESpeak EngineType = "espeak" // offline, eSpeak/eSpeak-NG on PATH
	EngineTypeAuto   EngineType = "auto" // Google when credentials exist and no Sarvam key is set, Sarvam otherwise
)

func (e EngineType) String() string {
	return string(e)
}

// NewSynthesizer creates a synthesis engine. The Sarvam client is used by the
// sarvam engine and to resolve auto.
func NewSynthesizer(ctx context.Context, engine string, client *sarvam.Client) (Synthesizer, error) {
	if engine == "" || engine == EngineTypeAuto.String() {
		engine = bestEngine(client).String()
	}

	switch engine {
	case EngineTypeMock.String():
		return NewSilentSynthesizer(), nil

	case EngineTypeSarvam.String():
		if client == nil {
			return nil, fmt.Errorf("sarvam engine requires a client")
		}
		return NewSarvamSynthesizer(client), nil

	case EngineTypeGoogle.String():
		return newGoogleSynthesizer(ctx)

	case EngineTypeESpeak.String():
		return newESpeakSynthesizer()

	default:
		return nil, fmt.Errorf("unsupported TTS engine type: %s", engine)
	}
}

// AvailableEngines returns the engines usable in the current environment.
func AvailableEngines() []EngineType {
	engines := []EngineType{EngineTypeMock, EngineTypeSarvam}
	if hasGoogleCredentials() {
		engines = append(engines, EngineTypeGoogle)
	}
	if _, err := findESpeakExecutable(); err == nil {
		engines = append(engines, EngineTypeESpeak)
	}
	return engines
}

// bestEngine prefers Sarvam whenever a key is configured, from any config source.
func bestEngine(client *sarvam.Client) EngineType {
	hasKey := client != nil && client.HasAPIKey()
	if !hasKey && hasGoogleCredentials() {
		return EngineTypeGoogle
	}
	return EngineTypeSarvam
}

func hasGoogleCredentials() bool {
	return os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != ""
}
