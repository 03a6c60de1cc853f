package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a RIFF WAVE file")
	ErrMissingFmtChunk     = errors.New("no fmt chunk found in WAV file")
	ErrMissingDataChunk    = errors.New("no data chunk found in WAV file")
	ErrUnsupportedBitDepth = errors.New("only 16-bit PCM is supported")
	ErrNoChannels          = errors.New("WAV file declares zero channels")
)
