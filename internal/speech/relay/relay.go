package relay

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"voicerelay/internal/domain/language"
	"voicerelay/internal/domain/phrase"
	"voicerelay/internal/speech/player"
	"voicerelay/internal/speech/translate"
	"voicerelay/internal/speech/tts"
)

// DefaultPause separates consecutive languages in a relay.
const DefaultPause = 400 * time.Millisecond

type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

type Status string

const (
	StatusPlayed    Status = "played"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Visit is the outcome of one language in a relay.
type Visit struct {
	Index      int
	Language   language.Language
	Text       string
	Translated bool
	// Degraded is set when translation failed and the original text was spoken.
	Degraded bool
	Status   Status
	// Err is the synthesis error for failed visits, or the playback error for
	// played visits whose audio could not be played.
	Err error
}

// Report summarises a relay run.
type Report struct {
	SessionID uuid.UUID
	Visits    []Visit
	Cancelled bool
	// Toggled is set when Run found a relay in progress and stopped it instead.
	Toggled bool
}

// Languages returns the codes of the visits with the given status, in order.
func (r *Report) Languages(status Status) []string {
	var codes []string
	for _, v := range r.Visits {
		if v.Status == status {
			codes = append(codes, v.Language.Code)
		}
	}
	return codes
}

// Config configures an Orchestrator.
type Config struct {
	Speaker     string
	Pace        float64
	Temperature float64
	// Pause is waited between languages. Zero means DefaultPause; a negative value
	// disables the pause.
	Pause time.Duration

	// OnLanguage is called as each language is reached.
	OnLanguage func(index int, lang language.Language)
	// OnVisit is called when a language is done.
	OnVisit func(Visit)
}

type session struct {
	id     uuid.UUID
	cancel context.CancelFunc
	index  int
}

// Orchestrator drives relay runs. At most one run is active at a time.
type Orchestrator struct {
	pipeline
	cfg Config

	mu      sync.Mutex
	session *session
}

func NewOrchestrator(cfg Config, synth tts.Synthesizer, translator translate.Translator,
	p player.Player, log logrus.FieldLogger) *Orchestrator {
	if cfg.Pause == 0 {
		cfg.Pause = DefaultPause
	}
	if cfg.Speaker == "" {
		cfg.Speaker = DefaultSpeaker
	}
	return &Orchestrator{
		pipeline: newPipeline(synth, translator, p, log, cfg.Pace, cfg.Temperature),
		cfg:      cfg,
	}
}

// Run plays ph in each of langs, in order, and returns once the list is exhausted
// or the run is stopped. If a run is already in progress, Run stops it and
// returns a Toggled report instead.
//
// Languages without text are skipped and synthesis failures are logged and
// skipped; neither ends the run.
func (o *Orchestrator) Run(ctx context.Context, ph phrase.Phrase, langs []language.Language) *Report {
	o.mu.Lock()
	if o.session != nil {
		o.mu.Unlock()
		o.Stop()
		return &Report{Toggled: true}
	}
	runCtx, cancel := context.WithCancel(ctx)
	s := &session{id: uuid.New(), cancel: cancel, index: -1}
	o.session = s
	o.mu.Unlock()
	defer o.finish(s)

	log := o.log.WithFields(logrus.Fields{
		"session":   s.id.String(),
		"phrase":    ph.ID,
		"languages": len(langs),
	})
	log.Info("Relay started")

	report := &Report{SessionID: s.id}
	for i, lang := range langs {
		if runCtx.Err() != nil {
			break
		}
		o.setIndex(s, i)
		if o.cfg.OnLanguage != nil {
			o.cfg.OnLanguage(i, lang)
		}

		visit := o.visit(runCtx, ph, lang, i)
		report.Visits = append(report.Visits, visit)
		if o.cfg.OnVisit != nil {
			o.cfg.OnVisit(visit)
		}

		if visit.Status == StatusPlayed && i < len(langs)-1 && !o.pause(runCtx) {
			break
		}
	}

	report.Cancelled = runCtx.Err() != nil
	log.WithFields(logrus.Fields{
		"played":    len(report.Languages(StatusPlayed)),
		"skipped":   len(report.Languages(StatusSkipped)),
		"failed":    len(report.Languages(StatusFailed)),
		"cancelled": report.Cancelled,
	}).Info("Relay finished")
	return report
}

// visit runs one language. Upstream calls are detached from cancellation: an
// in-flight request completes (and fills the cache) but its result is dropped.
func (o *Orchestrator) visit(ctx context.Context, ph phrase.Phrase, lang language.Language, index int) Visit {
	v := Visit{Index: index, Language: lang}
	log := o.log.WithField("language", lang.Code)
	upstream := context.WithoutCancel(ctx)

	res, ok := o.resolve(upstream, ph, lang)
	if !ok {
		log.Debug("No text for language, skipping")
		v.Status = StatusSkipped
		return v
	}
	v.Text = res.text
	v.Translated = res.translated
	v.Degraded = res.degraded

	if ctx.Err() != nil {
		v.Status = StatusCancelled
		return v
	}

	audio, err := o.synth.Synthesize(upstream, o.request(ph, lang, o.cfg.Speaker, res.text))
	if err != nil {
		log.WithError(err).Errorf("Error with %s", lang.Name)
		v.Status = StatusFailed
		v.Err = err
		return v
	}

	if ctx.Err() != nil {
		v.Status = StatusCancelled
		return v
	}

	err = o.player.Play(ctx, audio)
	if ctx.Err() != nil {
		v.Status = StatusCancelled
		return v
	}
	if err != nil {
		log.WithError(err).Warn("Playback failed, moving on")
		v.Err = err
	}
	v.Status = StatusPlayed
	return v
}

func (o *Orchestrator) pause(ctx context.Context) bool {
	if o.cfg.Pause < 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(o.cfg.Pause)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// Stop cancels the current run, if any, and halts its audio immediately. The
// orchestrator is Idle when Stop returns; the run itself unwinds at its next
// checkpoint.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	s := o.session
	o.session = nil
	o.mu.Unlock()

	if s == nil {
		return
	}
	s.cancel()
	if err := o.player.Stop(); err != nil {
		o.log.WithError(err).Warn("Failed to stop playback")
	}
	o.log.WithField("session", s.id.String()).Info("Relay stopped")
}

// State reports whether a run is in progress.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.session != nil {
		return Running
	}
	return Idle
}

// CurrentIndex is the index of the language being processed, or -1 when idle.
func (o *Orchestrator) CurrentIndex() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.session == nil {
		return -1
	}
	return o.session.index
}

// SessionID identifies the current run; uuid.Nil when idle.
func (o *Orchestrator) SessionID() uuid.UUID {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.session == nil {
		return uuid.Nil
	}
	return o.session.id
}

func (o *Orchestrator) setIndex(s *session, i int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	s.index = i
}

func (o *Orchestrator) finish(s *session) {
	o.mu.Lock()
	if o.session == s {
		o.session = nil
	}
	o.mu.Unlock()
	s.cancel()
}
