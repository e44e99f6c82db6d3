// Package speech holds the error taxonomy shared by the synthesis, translation and
// playback packages.
package speech

import (
	"errors"
	"fmt"
)

// ErrPlayback is returned when an audio payload cannot be decoded or played.
var ErrPlayback = errors.New("playback failed")

// UpstreamError is a non-success response from a vendor endpoint.
type UpstreamError struct {
	Service string
	Status  int
	Body    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API error (%d): %s", e.Service, e.Status, e.Body)
}

// IsUpstream reports whether err carries an UpstreamError.
func IsUpstream(err error) bool {
	var upstream *UpstreamError
	return errors.As(err, &upstream)
}
