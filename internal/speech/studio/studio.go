package studio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"voicerelay/internal/cli/scheme/colours"
	"voicerelay/internal/config"
	"voicerelay/internal/domain/phrase"
	"voicerelay/internal/speech/cache"
	"voicerelay/internal/speech/player"
	"voicerelay/internal/speech/relay"
	"voicerelay/internal/speech/sarvam"
	"voicerelay/internal/speech/translate"
	"voicerelay/internal/speech/tts"
)

// Studio is the command line front end: it owns the response caches, the
// player and whichever relay is currently running.
type Studio struct {
	cfg        *config.Config
	catalog    *phrase.Catalog
	synth      *tts.Cached
	translator *translate.Cached
	player     player.Player
	log        logrus.FieldLogger
	closer     io.Closer

	in       io.Reader
	keysOnce sync.Once
	keys     chan string

	mu    sync.Mutex
	relay *relay.Orchestrator
}

// New wires a Studio from configuration.
func New(ctx context.Context, cfg *config.Config) (*Studio, error) {
	catalog, err := phrase.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	client := sarvam.NewClient(sarvam.Config{
		APIKey:       cfg.Sarvam.APIKey,
		TTSURL:       cfg.Sarvam.TTSURL,
		TranslateURL: cfg.Sarvam.TranslateURL,
		Timeout:      cfg.Sarvam.Timeout,
	})

	engine, err := tts.NewSynthesizer(ctx, cfg.TTS.Engine, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create tts engine: %w", err)
	}

	s := newStudio(cfg, catalog, engine, translate.NewSarvamTranslator(client), player.New(cfg.Player.Mute))
	if closer, ok := engine.(io.Closer); ok {
		s.closer = closer
	}
	return s, nil
}

func newStudio(cfg *config.Config, catalog *phrase.Catalog, engine tts.Synthesizer,
	translator translate.Translator, p player.Player) *Studio {
	log := logrus.StandardLogger()
	return &Studio{
		cfg:        cfg,
		catalog:    catalog,
		synth:      tts.NewCached(engine, cache.New[string](), log),
		translator: translate.NewCached(translator, cache.New[string](), log),
		player:     p,
		log:        log,
		in:         os.Stdin,
	}
}

// Stop halts any relay or single playback in progress.
func (s *Studio) Stop() {
	s.mu.Lock()
	o, p := s.relay, s.player
	s.mu.Unlock()

	if o != nil {
		o.Stop()
	}
	_ = p.Stop()
}

// Close releases engine resources.
func (s *Studio) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

func (s *Studio) ShowWelcome() {
	fmt.Println()
	colours.Title.Println("🎙️  Welcome to Voice Relay! 🎙️")
	fmt.Println()
	colours.Info.Println("📚 Available commands:")
	fmt.Println("  • voicerelay relay      - Hear one phrase cascade across 11 languages")
	fmt.Println("  • voicerelay speak      - Play a scene in one language and voice")
	fmt.Println("  • voicerelay scenes     - List scripted scenes")
	fmt.Println("  • voicerelay phrases    - List relay phrases")
	fmt.Println("  • voicerelay languages  - List supported languages")
	fmt.Println("  • voicerelay voices     - List available voices")
	fmt.Println()
	colours.Prompt.Println("✨ Pick a scene and press play ✨")
}

// applyMute swaps in a silent player when the command asks for one.
func (s *Studio) applyMute(cmd *cobra.Command) {
	if mute, _ := cmd.Flags().GetBool("mute"); !mute {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.player.(*player.MutePlayer); !ok {
		s.player = player.NewMutePlayer()
	}
}

func (s *Studio) setRelay(o *relay.Orchestrator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.relay = o
}

// keyLines returns one shared channel of trimmed, lower-cased input lines. The
// reader goroutine lives for the rest of the process; it blocks on stdin between
// commands and ends only at EOF.
func (s *Studio) keyLines() <-chan string {
	s.keysOnce.Do(func() {
		s.keys = make(chan string)
		go func() {
			defer close(s.keys)
			scanner := bufio.NewScanner(s.in)
			for scanner.Scan() {
				s.keys <- strings.TrimSpace(strings.ToLower(scanner.Text()))
			}
		}()
	})
	return s.keys
}

// runInteractive runs play and lets the user stop it with "s".
func (s *Studio) runInteractive(play func(), stop func()) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		play()
	}()

	keys := s.keyLines()
	for {
		select {
		case <-done:
			return
		case line, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			switch line {
			case "s", "stop":
				stop()
				colours.Warning.Println("⏹️  Stopped")
			case "":
			default:
				colours.Info.Println("ℹ️  Use 's' then Enter to stop")
			}
		}
	}
}

func (s *Studio) logCacheStats() {
	synth := s.synth.Stats()
	translations := s.translator.Stats()
	s.log.WithFields(logrus.Fields{
		"audio_entries":       synth.Entries,
		"audio_hits":          synth.Hits,
		"audio_misses":        synth.Misses,
		"translation_entries": translations.Entries,
		"translation_hits":    translations.Hits,
	}).Debug("Cache stats")
}
