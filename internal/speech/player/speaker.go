package player

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"voicerelay/internal/speech"
)

// SpeakerPlayer plays through the system audio device.
type SpeakerPlayer struct {
	mu       sync.Mutex
	rate     beep.SampleRate
	ready    bool
	ctrl     *beep.Ctrl
	streamer beep.StreamSeekCloser
}

func NewSpeakerPlayer() *SpeakerPlayer {
	return &SpeakerPlayer{}
}

func (p *SpeakerPlayer) Play(ctx context.Context, payload string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	streamer, format, err := decode(payload)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	var once sync.Once
	finish := func() { once.Do(func() { close(done) }) }

	p.mu.Lock()
	if !p.ready {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			p.mu.Unlock()
			streamer.Close()
			return fmt.Errorf("%w: failed to open audio device: %v", speech.ErrPlayback, err)
		}
		p.rate = format.SampleRate
		p.ready = true
	}
	p.stopLocked()

	ctrl := &beep.Ctrl{Streamer: streamer, Paused: false}
	var s beep.Streamer = ctrl
	if format.SampleRate != p.rate {
		s = beep.Resample(4, format.SampleRate, p.rate, ctrl)
	}
	p.ctrl = ctrl
	p.streamer = streamer
	speaker.Play(beep.Seq(s, beep.Callback(finish)))
	p.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
		_ = p.Stop()
		return ctx.Err()
	}

	p.mu.Lock()
	if p.ctrl == ctrl {
		p.stopLocked()
	}
	p.mu.Unlock()
	return nil
}

func (p *SpeakerPlayer) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	return nil
}

// stopLocked detaches the current streamer so the speaker's Seq falls through to
// its callback and the waiting Play returns.
func (p *SpeakerPlayer) stopLocked() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Streamer = nil
	speaker.Unlock()

	p.streamer.Close()
	p.ctrl = nil
	p.streamer = nil
}
