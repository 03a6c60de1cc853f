// SPDX-License-Identifier: EPL-2.0

package ast

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Encode streams interleaved little-endian 16-bit PCM samples from src and
// writes a complete AST file to w: the 64-byte STRM header followed by
// BLCK blocks with the samples regrouped per channel and byte-swapped to
// big-endian. src must supply exactly TotalSamples*2*Channels bytes; a
// short read aborts the encode since the output would be inconsistent with
// the header accounting.
func Encode(w io.Writer, src io.Reader, s Stream) error {
	layout, err := ComputeLayout(s.TotalSamples, s.Channels)
	if err != nil {
		return err
	}
	if err := writeHeader(w, s, layout); err != nil {
		return err
	}
	return writeBlocks(w, src, layout)
}

func writeBlocks(w io.Writer, src io.Reader, l BlockLayout) error {
	channels := uint32(l.Channels)
	stride := channels * 2

	// Both buffers are reused across the block loop; out is sized for the
	// final block's per-channel padding.
	in := make([]byte, BlockSize*channels)
	out := make([]byte, BlockSize+30)

	var hdr [blockHeaderSize]byte
	copy(hdr[0:4], "BLCK")

	for i := uint32(0); i < l.Blocks; i++ {
		last := i == l.Blocks-1
		perChannel := l.blockDataSize(i)

		// The size field is per channel; the final block's includes its
		// padding.
		sizeField := perChannel
		if last {
			sizeField += l.Padding
		}
		binary.BigEndian.PutUint32(hdr[4:8], sizeField)
		if _, err := w.Write(hdr[:]); err != nil {
			return fmt.Errorf("write block header: %w", err)
		}

		data := in[:perChannel*channels]
		if _, err := io.ReadFull(src, data); err != nil {
			return fmt.Errorf("read source audio for block %d: %w", i, err)
		}

		// De-interleave: channel c owns every sample at stride Channels
		// starting at offset c, swapped to big-endian on the way out.
		for c := uint32(0); c < channels; c++ {
			k := uint32(0)
			for j := c * 2; j < uint32(len(data)); j += stride {
				binary.BigEndian.PutUint16(out[k:], binary.LittleEndian.Uint16(data[j:]))
				k += 2
			}
			if last {
				for p := uint32(0); p < l.Padding; p++ {
					out[k] = 0
					k++
				}
			}
			if _, err := w.Write(out[:k]); err != nil {
				return fmt.Errorf("write block %d channel %d: %w", i, c, err)
			}
		}
	}

	return nil
}
