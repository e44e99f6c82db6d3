// Package player plays base64 encoded mp3 or wav payloads to completion.
package player

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"

	"voicerelay/internal/speech"
)

// Player plays one payload at a time.
//
// Play blocks until end of media, a decode error, Stop, or ctx cancellation,
// whichever comes first. Stop halts the current payload immediately; the position
// is discarded.
type Player interface {
	Play(ctx context.Context, payload string) error
	Stop() error
}

// New returns the speaker player, or the mute player when mute is set.
func New(mute bool) Player {
	if mute {
		return NewMutePlayer()
	}
	return NewSpeakerPlayer()
}

func decode(payload string) (beep.StreamSeekCloser, beep.Format, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("%w: invalid base64 payload: %v", speech.ErrPlayback, err)
	}

	// Offline engines produce RIFF/WAVE; the cloud engines return MP3.
	if bytes.HasPrefix(raw, []byte("RIFF")) {
		streamer, format, err := wav.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, beep.Format{}, fmt.Errorf("%w: failed to decode WAV: %v", speech.ErrPlayback, err)
		}
		return streamer, format, nil
	}

	streamer, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(raw)))
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("%w: failed to decode MP3: %v", speech.ErrPlayback, err)
	}
	return streamer, format, nil
}
