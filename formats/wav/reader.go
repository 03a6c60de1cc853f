// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

const (
	formatPCM        = 1
	formatExtensible = 65534
)

// Descriptor holds the format parameters extracted from a WAV file.
// It is built once by Decode and never mutated afterwards.
type Descriptor struct {
	// FormatTag is the raw WAVE format category (1 = integer PCM).
	FormatTag uint16
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels int
	// SampleRate of the PCM stream in Hz.
	SampleRate uint32
	// BitsPerSample as declared by the fmt chunk. Always 16 after a
	// successful Decode.
	BitsPerSample int
	// DataSize is the byte length of the data chunk payload.
	DataSize uint32
	// TotalSamples is DataSize / (2 * Channels), truncated.
	TotalSamples uint32

	// Warnings collects non-fatal findings (non-PCM format tag,
	// channel count outside 1-16). The caller decides how to surface them.
	Warnings []string
}

// PCMStream is a decoded WAV file: the validated descriptor plus a reader
// positioned at the first byte of the data chunk payload. Reads never go
// past the end of the data chunk.
type PCMStream struct {
	Descriptor

	data *riff.Chunk
}

func (s *PCMStream) Read(p []byte) (int, error) {
	if s.data.IsFullyRead() {
		return 0, io.EOF
	}
	if remaining := s.data.Size - s.data.Pos; len(p) > remaining {
		p = p[:remaining]
	}
	return s.data.Read(p)
}

// Decode validates the RIFF/WAVE container in rs and extracts the format
// parameters needed for a lossless PCM16 conversion. The fmt and data
// chunks may appear in any order and may be separated by unrelated chunks
// (LIST, JUNK, ...); chunks are located by linear scan with size-prefixed
// skip, rewinding between the two passes like the reference tool does.
func Decode(rs io.ReadSeeker) (*PCMStream, error) {
	p := riff.New(rs)
	if err := p.ParseHeaders(); err != nil {
		return nil, ErrNotWavFile
	}
	if p.Format != riff.WavFormatID {
		return nil, ErrNotWavFile
	}

	fmtChunk, err := seekChunk(p, riff.FmtID)
	if err != nil {
		return nil, ErrMissingFmtChunk
	}
	if err := fmtChunk.DecodeWavHeader(p); err != nil {
		return nil, fmt.Errorf("parse fmt chunk: %w", err)
	}

	desc := Descriptor{
		FormatTag:     p.WavAudioFormat,
		Channels:      int(p.NumChannels),
		SampleRate:    p.SampleRate,
		BitsPerSample: int(p.BitsPerSample),
	}

	if desc.FormatTag != formatPCM && desc.FormatTag != formatExtensible {
		desc.Warnings = append(desc.Warnings,
			fmt.Sprintf("source WAV may not contain PCM audio (format tag %d)", desc.FormatTag))
	}
	if desc.Channels == 0 {
		return nil, ErrNoChannels
	}
	if desc.Channels < 1 || desc.Channels > 16 {
		desc.Warnings = append(desc.Warnings,
			fmt.Sprintf("channel count %d is outside the supported 1-16 range", desc.Channels))
	}
	if desc.BitsPerSample != 16 {
		return nil, ErrUnsupportedBitDepth
	}

	// The data chunk may precede fmt, so rescan from the top.
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind source: %w", err)
	}
	p = riff.New(rs)
	if err := p.ParseHeaders(); err != nil {
		return nil, ErrNotWavFile
	}
	dataChunk, err := seekChunk(p, riff.DataFormatID)
	if err != nil {
		return nil, ErrMissingDataChunk
	}

	desc.DataSize = uint32(dataChunk.Size)
	desc.TotalSamples = desc.DataSize / (2 * uint32(desc.Channels))

	return &PCMStream{Descriptor: desc, data: dataChunk}, nil
}

// seekChunk walks the chunk list until it finds id, draining every chunk it
// skips. Any read failure, including a clean end of stream, means the chunk
// is not present.
func seekChunk(p *riff.Parser, id [4]byte) (*riff.Chunk, error) {
	for {
		ch, err := p.NextChunk()
		if err != nil {
			return nil, err
		}
		if ch.ID == id {
			return ch, nil
		}
		ch.Drain()
	}
}
