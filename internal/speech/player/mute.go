package player

import (
	"context"
	"sync"
	"time"
)

// MutePlayer decodes payloads and waits for their duration without producing
// sound. It keeps relay pacing intact on machines without an audio device.
type MutePlayer struct {
	mu   sync.Mutex
	stop chan struct{}
}

func NewMutePlayer() *MutePlayer {
	return &MutePlayer{}
}

func (p *MutePlayer) Play(ctx context.Context, payload string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	streamer, format, err := decode(payload)
	if err != nil {
		return err
	}
	duration := format.SampleRate.D(streamer.Len())
	streamer.Close()

	stop := make(chan struct{})
	p.mu.Lock()
	p.stopLocked()
	p.stop = stop
	p.mu.Unlock()

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-stop:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (p *MutePlayer) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	return nil
}

func (p *MutePlayer) stopLocked() {
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
}
