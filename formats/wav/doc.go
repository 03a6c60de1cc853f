// SPDX-License-Identifier: EPL-2.0

// Package wav extracts PCM 16-bit audio from RIFF/WAVE files.
//
// This package reads the subset of WAV needed for a lossless AST
// conversion: the fmt chunk (format tag, channel count, sample rate, bit
// depth) and the raw data chunk payload. It uses github.com/go-audio/riff
// for chunk walking, so fmt and data may appear in any order and may be
// surrounded by chunks it does not understand (LIST, JUNK, cue, ...).
//
// # Decoding
//
// Decode needs a seekable source because the data chunk can precede the
// fmt chunk; it rescans the container once the format is known:
//
//	file, _ := os.Open("audio.wav")
//	stream, err := wav.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	fmt.Println(stream.SampleRate, stream.Channels, stream.TotalSamples)
//
//	// stream is an io.Reader over the interleaved little-endian
//	// 16-bit samples of the data chunk.
//	io.Copy(dst, stream)
//
// # Validation
//
// Decode fails hard when the input cannot be converted losslessly:
//   - ErrNotWavFile: missing or corrupt RIFF/WAVE tags
//   - ErrMissingFmtChunk, ErrMissingDataChunk: required chunk absent
//   - ErrUnsupportedBitDepth: bit depth other than 16
//   - ErrNoChannels: fmt chunk declares zero channels
//
// Suspicious but workable inputs (a non-PCM format tag, a channel count
// outside 1-16) are recorded in Descriptor.Warnings instead of aborting;
// callers decide whether to surface them.
package wav
