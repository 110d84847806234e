package ai

import "errors"

// ErrNoAnswer is returned when the model produced no usable answer text.
var ErrNoAnswer = errors.New("model returned no answer")
