package player

import (
	"context"
	"sync"
	"time"
)

// MockPlayer records payloads and "plays" each for Duration.
type MockPlayer struct {
	Duration time.Duration
	// Err, when set, is returned by Play instead of waiting.
	Err error
	// OnPlay runs when playback of a payload starts.
	OnPlay func(payload string)

	mu      sync.Mutex
	played  []string
	stops   int
	current chan struct{}
}

func NewMockPlayer(duration time.Duration) *MockPlayer {
	return &MockPlayer{Duration: duration}
}

func (m *MockPlayer) Play(ctx context.Context, payload string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stop := make(chan struct{})
	m.mu.Lock()
	m.played = append(m.played, payload)
	m.current = stop
	m.mu.Unlock()

	if m.OnPlay != nil {
		m.OnPlay(payload)
	}
	if m.Err != nil {
		return m.Err
	}

	select {
	case <-time.After(m.Duration):
	case <-stop:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (m *MockPlayer) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stops++
	if m.current != nil {
		close(m.current)
		m.current = nil
	}
	return nil
}

// Played returns the payloads passed to Play, in order.
func (m *MockPlayer) Played() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.played...)
}

// Stops returns how many times Stop was called.
func (m *MockPlayer) Stops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stops
}
