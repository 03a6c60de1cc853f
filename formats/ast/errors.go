package ast

import "errors"

var (
	ErrNoAudioData         = errors.New("no audio data to encode")
	ErrInvalidChannelCount = errors.New("channel count must be between 1 and 16")
)
