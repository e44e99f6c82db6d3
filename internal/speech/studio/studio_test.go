package studio

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicerelay/internal/config"
	"voicerelay/internal/domain/phrase"
	"voicerelay/internal/speech"
	"voicerelay/internal/speech/player"
	"voicerelay/internal/speech/translate"
	"voicerelay/internal/speech/tts"
)

type fixture struct {
	studio     *Studio
	engine     *tts.MockSynthesizer
	translator *translate.MockTranslator
	player     *player.MockPlayer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := &config.Config{
		TTS:   config.TTSConfig{Engine: "mock", Speaker: "anushka", Pace: 1.0, Temperature: 0.6},
		Relay: config.RelayConfig{Pause: -1},
	}
	f := &fixture{
		engine:     tts.NewMockSynthesizer(),
		translator: translate.NewMockTranslator(),
		player:     player.NewMockPlayer(time.Millisecond),
	}
	f.studio = newStudio(cfg, phrase.DefaultCatalog(), f.engine, f.translator, f.player)
	f.studio.log, _ = test.NewNullLogger()
	f.studio.in = strings.NewReader("")
	return f
}

func (f *fixture) execute(args ...string) error {
	root := &cobra.Command{Use: "voicerelay", SilenceUsage: true, SilenceErrors: true}
	f.studio.AddCommands(root)
	root.SetArgs(args)
	return root.Execute()
}

func TestRelay_PresetPhrase(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.execute("relay", "greeting", "--languages", "hi-IN,ta-IN,en-IN"))

	assert.Equal(t, []string{"hi-IN", "ta-IN", "en-IN"}, f.engine.Languages())
	assert.Len(t, f.player.Played(), 3)
	assert.Empty(t, f.translator.Calls())
}

func TestRelay_CustomTextTranslatesOtherLanguages(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.execute("relay", "--text", "good morning", "--source", "en-IN", "--languages", "en-IN,hi-IN"))

	assert.Equal(t, []string{"hi-IN"}, f.translator.Calls())
	calls := f.engine.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "good morning", calls[0].Text)
	assert.Equal(t, "[hi-IN] good morning", calls[1].Text)
}

func TestRelay_RepeatUsesCache(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.execute("relay", "thanks", "--languages", "bn-IN,gu-IN", "--repeat", "2"))

	assert.Len(t, f.engine.Calls(), 2)
	assert.Len(t, f.player.Played(), 4)

	stats := f.studio.synth.Stats()
	assert.Equal(t, 2, stats.Entries)
	assert.Equal(t, int64(2), stats.Hits)
}

func TestRelay_StopKey(t *testing.T) {
	f := newFixture(t)
	f.player.Duration = time.Minute

	pr, pw := io.Pipe()
	defer pw.Close()
	f.studio.in = pr
	f.player.OnPlay = func(string) {
		go func() { _, _ = pw.Write([]byte("s\n")) }()
	}

	done := make(chan error, 1)
	go func() { done <- f.execute("relay", "greeting") }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("relay did not stop")
	}

	assert.Len(t, f.player.Played(), 1)
	assert.Equal(t, []string{"hi-IN"}, f.engine.Languages())
}

func TestRelay_Errors(t *testing.T) {
	f := newFixture(t)

	assert.Error(t, f.execute("relay", "no-such-phrase"))
	assert.Error(t, f.execute("relay", "--languages", "xx-IN"))
	assert.Error(t, f.execute("relay", "--text", "hi", "--source", "xx-IN"))
	assert.Empty(t, f.engine.Calls())
}

func TestSpeak_SceneDefaults(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.execute("speak", "bedtime"))

	calls := f.engine.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "hi-IN", calls[0].LanguageCode)
	assert.Equal(t, "anushka", calls[0].Speaker)
	assert.InDelta(t, 0.85, calls[0].Pace, 0.0001)
	assert.Len(t, f.player.Played(), 1)
}

func TestSpeak_LanguageAndVoice(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.execute("speak", "cricket", "--language", "bn-IN", "--voice", "kabir"))

	calls := f.engine.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "bn-IN", calls[0].LanguageCode)
	assert.Equal(t, "kabir", calls[0].Speaker)
}

func TestSpeak_CustomText(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.execute("speak", "chai", "--text", "one more cup", "--language", "mr-IN"))

	assert.Equal(t, []string{"mr-IN"}, f.translator.Calls())
	calls := f.engine.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "[mr-IN] one more cup", calls[0].Text)
}

func TestSpeak_FailureSurfaces(t *testing.T) {
	f := newFixture(t)
	f.engine.Fail = func(tts.Request) error { return errors.New("quota exceeded") }

	err := f.execute("speak", "bedtime")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Empty(t, f.player.Played())
}

func TestSpeak_UnknownSceneOrLanguage(t *testing.T) {
	f := newFixture(t)

	assert.Error(t, f.execute("speak", "opera"))
	assert.Error(t, f.execute("speak", "bedtime", "--language", "xx-IN"))
}

func TestListings(t *testing.T) {
	f := newFixture(t)

	for _, name := range []string{"languages", "voices", "scenes", "phrases"} {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, f.execute(name))
		})
	}
	assert.Empty(t, f.engine.Calls())
}

func TestStop_WithoutRelay(t *testing.T) {
	f := newFixture(t)

	f.studio.Stop()
	assert.Equal(t, 1, f.player.Stops())
	assert.NoError(t, f.studio.Close())
}

// recordingPlayer keeps the result of every Play call.
type recordingPlayer struct {
	player.Player

	mu      sync.Mutex
	results []error
}

func (r *recordingPlayer) Play(ctx context.Context, payload string) error {
	err := r.Player.Play(ctx, payload)
	r.mu.Lock()
	r.results = append(r.results, err)
	r.mu.Unlock()
	return err
}

func (r *recordingPlayer) Results() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.results...)
}

func TestRelay_MockEnginePlaysThroughMutePlayer(t *testing.T) {
	engine, err := tts.NewSynthesizer(context.Background(), "mock", nil)
	require.NoError(t, err)

	rec := &recordingPlayer{Player: player.NewMutePlayer()}
	cfg := &config.Config{
		TTS:   config.TTSConfig{Engine: "mock", Speaker: "anushka", Pace: 1.0, Temperature: 0.6},
		Relay: config.RelayConfig{Pause: -1},
	}
	s := newStudio(cfg, phrase.DefaultCatalog(), engine, translate.NewMockTranslator(), rec)
	s.log, _ = test.NewNullLogger()
	s.in = strings.NewReader("")

	f := &fixture{studio: s}
	require.NoError(t, f.execute("relay", "greeting", "--languages", "hi-IN,ta-IN,en-IN"))

	results := rec.Results()
	require.Len(t, results, 3)
	for _, err := range results {
		assert.NoError(t, err)
	}

	require.NoError(t, f.execute("speak", "bedtime", "--language", "en-IN"))
	assert.Len(t, rec.Results(), 4)
	assert.NoError(t, rec.Results()[3])
}

func TestRelay_UpstreamFailureContinues(t *testing.T) {
	f := newFixture(t)
	f.engine.Fail = func(req tts.Request) error {
		if req.LanguageCode == "ta-IN" {
			return &speech.UpstreamError{Service: "TTS", Status: 403, Body: "invalid key"}
		}
		return nil
	}

	require.NoError(t, f.execute("relay", "greeting", "--languages", "hi-IN,ta-IN,en-IN"))

	assert.Equal(t, []string{"hi-IN", "ta-IN", "en-IN"}, f.engine.Languages())
	assert.Len(t, f.player.Played(), 2)
}
