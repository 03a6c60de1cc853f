// SPDX-License-Identifier: EPL-2.0

package ast

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// codecPCM16 is the codec/bit-depth tag for uncompressed 16-bit PCM.
	codecPCM16 = 0x00010010

	// volume is the fixed playback volume byte at offset 0x28.
	volume = 0x7F

	loopEnabled  = 0xFFFF
	loopDisabled = 0x0000
)

// Stream carries the metadata the encoder writes into the STRM header.
type Stream struct {
	// Channels count of the interleaved source, within 1-16.
	Channels int
	// SampleRate recorded for playback; changing it from the source rate
	// changes playback speed, the samples themselves are copied verbatim.
	SampleRate uint32
	// TotalSamples per channel to encode.
	TotalSamples uint32
	// LoopStart sample index; meaningful only when Looped is set.
	LoopStart uint32
	// Looped selects whether playback resumes at LoopStart after the
	// stream end.
	Looped bool
}

// writeHeader serializes the fixed 64-byte STRM header. Every multi-byte
// field is big-endian; the loop end point always equals the stream end.
func writeHeader(w io.Writer, s Stream, l BlockLayout) error {
	var h [HeaderSize]byte

	copy(h[0x00:], "STRM")
	binary.BigEndian.PutUint32(h[0x04:], l.StreamSize())
	binary.BigEndian.PutUint32(h[0x08:], codecPCM16)
	binary.BigEndian.PutUint16(h[0x0C:], uint16(s.Channels))

	// The reference tool writes this field unswapped; 0xFFFF and 0x0000
	// read the same either way.
	loop := uint16(loopDisabled)
	if s.Looped {
		loop = loopEnabled
	}
	binary.BigEndian.PutUint16(h[0x0E:], loop)

	binary.BigEndian.PutUint32(h[0x10:], s.SampleRate)
	binary.BigEndian.PutUint32(h[0x14:], s.TotalSamples)
	binary.BigEndian.PutUint32(h[0x18:], s.LoopStart)
	binary.BigEndian.PutUint32(h[0x1C:], s.TotalSamples)
	binary.BigEndian.PutUint32(h[0x20:], l.FirstBlockSize())

	// 0x24 reserved, then the volume byte at 0x28; the rest stays zero.
	h[0x28] = volume

	if _, err := w.Write(h[:]); err != nil {
		return fmt.Errorf("write AST header: %w", err)
	}
	return nil
}
