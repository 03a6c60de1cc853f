// SPDX-License-Identifier: EPL-2.0

// Package ast encodes 16-bit PCM audio into the Nintendo AST streaming
// container (the "STRM" format used by GameCube and Wii titles).
//
// The container is a 64-byte big-endian header followed by a sequence of
// blocks. Each block starts with a 32-byte sub-header ("BLCK" magic,
// per-channel audio size, 24 reserved bytes) and carries up to 10080 bytes
// of audio per channel, grouped by channel rather than interleaved, with
// every sample byte-swapped to big-endian. The final block is zero-padded
// per channel so its size lands on a 32-byte boundary.
//
// # Encoding
//
//	stream := ast.Stream{
//	    Channels:     2,
//	    SampleRate:   32000,
//	    TotalSamples: 960000,
//	    LoopStart:    0,
//	    Looped:       true,
//	}
//	err := ast.Encode(out, pcm, stream)
//
// pcm must be interleaved little-endian 16-bit PCM (the WAV data chunk
// layout) and supply exactly TotalSamples*2*Channels bytes.
//
// # Layout
//
// ComputeLayout exposes the block accounting on its own, which is useful
// for reporting the output size before writing anything:
//
//	layout, err := ast.ComputeLayout(stream.TotalSamples, stream.Channels)
//	fmt.Println(ast.HeaderSize + layout.StreamSize())
//
// The conversion is lossless: every sample is copied bit-exact, only byte
// order and grouping change. Loop points and the recorded sample rate are
// metadata; they never select or alter samples.
package ast
