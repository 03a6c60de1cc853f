// SPDX-License-Identifier: EPL-2.0

// Package wav2ast converts 16-bit PCM WAV audio into the Nintendo AST
// streaming container, losslessly, with loop metadata.
//
// AST ("STRM") is the streamed-music format of GameCube/Wii titles such as
// Super Mario Galaxy and Mario Kart: Double Dash. The conversion copies
// every sample bit-exact; only byte order, block grouping and metadata
// change.
//
// # Quick Start
//
// The one-call pipeline reads a WAV and writes an AST:
//
//	in, _ := os.Open("music.wav")
//	out, _ := os.Create("music.ast")
//
//	result, err := wav2ast.Convert(in, out, wav2ast.Options{
//	    LoopStart: 158462,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Printf("wrote %d bytes\n", result.FileSize())
//
// # Pipeline
//
// The pipeline is three immutable stages, each usable on its own:
//
//	src, _ := wav.Decode(in)                              // descriptor + PCM reader
//	plan, _ := wav2ast.ResolvePlan(src.Descriptor, opts)  // validated parameters
//	ast.Encode(out, src, ast.Stream{...})                 // header + blocks
//
// wav.Decode tolerates arbitrary chunk ordering and unknown chunks;
// ResolvePlan converts time-based loop/end points to samples and clamps
// them to the source length; ast.Encode re-segments the PCM payload into
// 10080-byte-per-channel big-endian blocks.
//
// # Loop Points
//
// Loop start and end points can be given as sample indexes or in
// microseconds; time values convert with the source sample rate,
// round-half-up. An end point never extends past the source audio. With
// looping disabled the loop start is forced to zero.
//
// # Sample Rate Override
//
// Options.SampleRate only changes the rate recorded in the header, i.e.
// the playback speed. No resampling is performed, and loop time
// conversions keep using the source rate.
//
// # Command Line
//
// cmd/wav2ast wraps the pipeline in the classic ASTCreate-style interface:
//
//	wav2ast music.wav -o music.ast -s 158462 -e 7485124
//	wav2ast "with spaces.wav" -n -f 95000000
//
// See the individual subpackages for format details.
package wav2ast
