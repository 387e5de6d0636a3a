package track

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoTracks rejects an empty request set before the average
	// movement divides by zero.
	ErrNoTracks = fmt.Errorf("%w: no tracks to schedule", ErrInvalidInput)
)
