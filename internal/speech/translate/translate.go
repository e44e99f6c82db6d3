// Package translate converts free text into a target language.
package translate

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"voicerelay/internal/speech/cache"
	"voicerelay/internal/speech/sarvam"
)

// FingerprintPrefix is how many runes of the text take part in a fingerprint.
const FingerprintPrefix = 50

// Translator translates text; the source language is detected by the vendor.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguageCode string) (string, error)
}

// Fingerprint is the cache key for a translation request.
func Fingerprint(text, targetLanguageCode string) string {
	return targetLanguageCode + ":" + cache.Prefix(text, FingerprintPrefix)
}

// SarvamTranslator translates through the Sarvam translate endpoint.
type SarvamTranslator struct {
	client *sarvam.Client
}

func NewSarvamTranslator(client *sarvam.Client) *SarvamTranslator {
	return &SarvamTranslator{client: client}
}

func (s *SarvamTranslator) Translate(ctx context.Context, text, targetLanguageCode string) (string, error) {
	resp, err := s.client.Translate(ctx, sarvam.NewTranslateRequest(text, targetLanguageCode))
	if err != nil {
		return "", fmt.Errorf("failed to translate to %s: %w", targetLanguageCode, err)
	}
	return resp.TranslatedText, nil
}

// Cached memoizes a Translator by Fingerprint.
type Cached struct {
	next  Translator
	store *cache.Cache[string]
	log   logrus.FieldLogger
}

func NewCached(next Translator, store *cache.Cache[string], log logrus.FieldLogger) *Cached {
	if store == nil {
		store = cache.New[string]()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Cached{next: next, store: store, log: log}
}

func (c *Cached) Translate(ctx context.Context, text, targetLanguageCode string) (string, error) {
	key := Fingerprint(text, targetLanguageCode)
	if translated, ok := c.store.Get(key); ok {
		c.log.WithField("language", targetLanguageCode).Debug("Using cached translation")
		return translated, nil
	}

	translated, err := c.next.Translate(ctx, text, targetLanguageCode)
	if err != nil {
		return "", err
	}

	c.store.Put(key, translated)
	return translated, nil
}

// Stats reports usage of the underlying cache.
func (c *Cached) Stats() cache.Stats {
	return c.store.Stats()
}

// MockTranslator tags text with the target language, e.g. "[ta-IN] hello".
type MockTranslator struct {
	mu    sync.Mutex
	calls []string
	// Err, when set, is returned by every call.
	Err error
}

func NewMockTranslator() *MockTranslator {
	return &MockTranslator{}
}

func (m *MockTranslator) Translate(_ context.Context, text, targetLanguageCode string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, targetLanguageCode)
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	return fmt.Sprintf("[%s] %s", targetLanguageCode, text), nil
}

// Calls returns the target languages requested so far, in order.
func (m *MockTranslator) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
