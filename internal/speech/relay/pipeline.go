// Package relay plays one phrase across a sequence of languages, one at a time,
// and plays single phrases for the voice stage.
package relay

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"voicerelay/internal/domain/language"
	"voicerelay/internal/domain/phrase"
	"voicerelay/internal/speech/player"
	"voicerelay/internal/speech/translate"
	"voicerelay/internal/speech/tts"
)

const (
	DefaultSpeaker     = "anushka"
	DefaultPace        = 1.0
	DefaultTemperature = 0.6
)

// pipeline is the translate → synthesize → play chain shared by relay and stage.
type pipeline struct {
	synth      tts.Synthesizer
	translator translate.Translator
	player     player.Player
	log        logrus.FieldLogger

	pace        float64
	temperature float64
}

func newPipeline(synth tts.Synthesizer, translator translate.Translator, p player.Player,
	log logrus.FieldLogger, pace, temperature float64) pipeline {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if pace <= 0 {
		pace = DefaultPace
	}
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	return pipeline{
		synth:       synth,
		translator:  translator,
		player:      p,
		log:         log,
		pace:        pace,
		temperature: temperature,
	}
}

// resolution is the text chosen for one language.
type resolution struct {
	text       string
	translated bool
	degraded   bool
}

// resolve picks the text to speak in lang. ok is false when a preset has no text
// for lang. A failed translation degrades to the untranslated text.
func (p *pipeline) resolve(ctx context.Context, ph phrase.Phrase, lang language.Language) (resolution, bool) {
	text, ok := ph.TextFor(lang.Code)
	if !ok {
		return resolution{}, false
	}
	if !ph.NeedsTranslation(lang.Code) {
		return resolution{text: text}, true
	}

	log := p.log.WithField("language", lang.Code)
	if p.translator == nil {
		log.Warn("No translator configured, using original text")
		return resolution{text: text, degraded: true}, true
	}

	translated, err := p.translator.Translate(ctx, text, lang.Code)
	if err != nil {
		log.WithError(err).Warn("Translation failed, using original text")
		return resolution{text: text, degraded: true}, true
	}
	return resolution{text: translated, translated: true}, true
}

func (p *pipeline) request(ph phrase.Phrase, lang language.Language, speaker, text string) tts.Request {
	pace := ph.Pace
	if pace <= 0 {
		pace = p.pace
	}
	temperature := ph.Temperature
	if temperature <= 0 {
		temperature = p.temperature
	}
	if speaker == "" {
		speaker = DefaultSpeaker
	}
	return tts.Request{
		Text:         text,
		LanguageCode: lang.Code,
		Speaker:      speaker,
		Pace:         pace,
		Temperature:  temperature,
	}
}

// Stage plays a single phrase in a single language. Unlike the relay it reports
// every synthesis or playback failure to the caller.
type Stage struct {
	pipeline
}

// NewStage builds a Stage. pace and temperature apply when the phrase sets none.
func NewStage(synth tts.Synthesizer, translator translate.Translator, p player.Player,
	log logrus.FieldLogger, pace, temperature float64) *Stage {
	return &Stage{pipeline: newPipeline(synth, translator, p, log, pace, temperature)}
}

// Play stops any current playback, then speaks ph in lang with speaker and waits
// for playback to finish.
func (s *Stage) Play(ctx context.Context, ph phrase.Phrase, lang language.Language, speaker string) error {
	if err := s.player.Stop(); err != nil {
		s.log.WithError(err).Debug("Failed to stop previous playback")
	}

	res, ok := s.resolve(ctx, ph, lang)
	if !ok {
		return fmt.Errorf("%q has no text for %s", ph.Label, lang.Name)
	}

	req := s.request(ph, lang, speaker, res.text)
	audio, err := s.synth.Synthesize(ctx, req)
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"language": lang.Code,
		"speaker":  req.Speaker,
	}).Debug("Playing")

	if err := s.player.Play(ctx, audio); err != nil {
		return fmt.Errorf("failed to play %s audio: %w", lang.Name, err)
	}
	return nil
}

// Stop halts the current playback.
func (s *Stage) Stop() error {
	return s.player.Stop()
}
