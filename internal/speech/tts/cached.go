package tts

import (
	"context"

	"github.com/sirupsen/logrus"

	"voicerelay/internal/speech/cache"
)

// Cached memoizes a Synthesizer by Fingerprint.
type Cached struct {
	next  Synthesizer
	store *cache.Cache[string]
	log   logrus.FieldLogger
}

// NewCached wraps next with store. A nil store gets a fresh cache.
func NewCached(next Synthesizer, store *cache.Cache[string], log logrus.FieldLogger) *Cached {
	if store == nil {
		store = cache.New[string]()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Cached{next: next, store: store, log: log}
}

func (c *Cached) Synthesize(ctx context.Context, req Request) (string, error) {
	key := Fingerprint(req)
	if audio, ok := c.store.Get(key); ok {
		c.log.WithField("language", req.LanguageCode).Debug("Using cached audio")
		return audio, nil
	}

	audio, err := c.next.Synthesize(ctx, req)
	if err != nil {
		return "", err
	}

	c.store.Put(key, audio)
	return audio, nil
}

// Stats reports usage of the underlying cache.
func (c *Cached) Stats() cache.Stats {
	return c.store.Stats()
}
