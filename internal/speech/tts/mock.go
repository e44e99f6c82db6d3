package tts

import (
	"context"
	"encoding/base64"
	"sync"
)

// MockSynthesizer records every call and returns the request fingerprint as "audio".
// With WAV set the fingerprint is wrapped in a playable silent WAV instead, which is
// what the mock engine uses.
type MockSynthesizer struct {
	// WAV makes the payload a silent WAV whose length follows the word count.
	WAV bool

	mu    sync.Mutex
	calls []Request
	// Fail, when set, decides per request whether to return an error instead.
	Fail func(Request) error
	// OnCall runs after a request is recorded and before the result is returned.
	OnCall func(Request)
}

func NewMockSynthesizer() *MockSynthesizer {
	return &MockSynthesizer{}
}

// NewSilentSynthesizer returns a mock whose payloads decode and play as silence.
func NewSilentSynthesizer() *MockSynthesizer {
	return &MockSynthesizer{WAV: true}
}

func (m *MockSynthesizer) Synthesize(_ context.Context, req Request) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if m.OnCall != nil {
		m.OnCall(req)
	}
	if m.Fail != nil {
		if err := m.Fail(req); err != nil {
			return "", err
		}
	}
	if m.WAV {
		return base64.StdEncoding.EncodeToString(silentWAV(Fingerprint(req), readingTime(req.Text))), nil
	}
	return base64.StdEncoding.EncodeToString([]byte(Fingerprint(req))), nil
}

// Calls returns a copy of the recorded requests in call order.
func (m *MockSynthesizer) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.calls...)
}

// Languages returns the language codes of recorded requests in call order.
func (m *MockSynthesizer) Languages() []string {
	calls := m.Calls()
	codes := make([]string, 0, len(calls))
	for _, c := range calls {
		codes = append(codes, c.LanguageCode)
	}
	return codes
}
