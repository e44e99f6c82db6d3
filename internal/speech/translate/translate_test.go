package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicerelay/internal/speech"
	"voicerelay/internal/speech/sarvam"
)

func TestFingerprint(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", FingerprintPrefix)
	assert.Equal(t, "hi-IN:hello", Fingerprint("hello", "hi-IN"))
	assert.Equal(t, Fingerprint(long+"a", "hi-IN"), Fingerprint(long+"b", "hi-IN"))
	assert.NotEqual(t, Fingerprint("hello", "hi-IN"), Fingerprint("hello", "bn-IN"))
}

func TestCached_TranslatesOncePerFingerprint(t *testing.T) {
	t.Parallel()

	log, _ := test.NewNullLogger()
	mock := NewMockTranslator()
	cached := NewCached(mock, nil, log)

	first, err := cached.Translate(context.Background(), "Good night", "mr-IN")
	require.NoError(t, err)
	second, err := cached.Translate(context.Background(), "Good night", "mr-IN")
	require.NoError(t, err)

	assert.Equal(t, "[mr-IN] Good night", first)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"mr-IN"}, mock.Calls())
	assert.Equal(t, 1, cached.Stats().Entries)
}

func TestCached_PropagatesErrors(t *testing.T) {
	t.Parallel()

	log, _ := test.NewNullLogger()
	mock := NewMockTranslator()
	mock.Err = &speech.UpstreamError{Service: "Translate", Status: 503, Body: "unavailable"}
	cached := NewCached(mock, nil, log)

	_, err := cached.Translate(context.Background(), "hello", "gu-IN")
	require.Error(t, err)
	assert.True(t, speech.IsUpstream(err))
	assert.Equal(t, 0, cached.Stats().Entries)
}

func TestSarvamTranslator(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"translated_text":"ಶುಭ ರಾತ್ರಿ"}`))
	}))
	defer server.Close()

	translator := NewSarvamTranslator(sarvam.NewClient(sarvam.Config{TranslateURL: server.URL}))

	got, err := translator.Translate(context.Background(), "Good night", "kn-IN")
	require.NoError(t, err)
	assert.Equal(t, "ಶುಭ ರಾತ್ರಿ", got)
}

func TestSarvamTranslator_UpstreamError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	translator := NewSarvamTranslator(sarvam.NewClient(sarvam.Config{TranslateURL: server.URL}))

	_, err := translator.Translate(context.Background(), "Good night", "kn-IN")
	require.Error(t, err)
	assert.True(t, speech.IsUpstream(err))
}
