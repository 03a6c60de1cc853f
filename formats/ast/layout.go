// SPDX-License-Identifier: EPL-2.0

package ast

const (
	// BlockSize is the fixed audio payload size per channel of every block
	// except possibly the last, in bytes.
	BlockSize = 10080

	// HeaderSize is the size of the STRM file header in bytes.
	HeaderSize = 64

	// blockHeaderSize covers the BLCK magic, the size field and the
	// 24 reserved bytes of every block sub-header.
	blockHeaderSize = 32
)

// BlockLayout partitions a sample count into fixed-size blocks. It is
// derived once by ComputeLayout and consumed read-only by the header and
// block writers.
type BlockLayout struct {
	// Samples is the per-channel sample count being encoded.
	Samples uint32
	// Channels is the channel count, always within 1-16.
	Channels int
	// Blocks is the total block count, at least 1.
	Blocks uint32
	// FinalBlockSize is the last block's per-channel audio size in bytes,
	// excluding padding. A stream that divides evenly ends with a
	// full-size block, never a zero-size one.
	FinalBlockSize uint32
	// Padding is the per-channel zero fill after the final block's data,
	// sized so FinalBlockSize+Padding is a multiple of 32. Always even,
	// within 0-30.
	Padding uint32
}

// ComputeLayout derives the block layout for the given per-channel sample
// count. The block de-interleaver indexes samples by channel, so the 1-16
// channel range is enforced here rather than at parse time.
func ComputeLayout(samples uint32, channels int) (BlockLayout, error) {
	if channels < 1 || channels > 16 {
		return BlockLayout{}, ErrInvalidChannelCount
	}

	perChannel := samples * 2
	final := perChannel % BlockSize
	blocks := perChannel / BlockSize
	if final != 0 {
		blocks++
	}
	if blocks == 0 {
		return BlockLayout{}, ErrNoAudioData
	}
	if final == 0 {
		final = BlockSize
	}

	return BlockLayout{
		Samples:        samples,
		Channels:       channels,
		Blocks:         blocks,
		FinalBlockSize: final,
		Padding:        (32 - final%32) % 32,
	}, nil
}

// StreamSize is the total AST payload size excluding the 64-byte file
// header: audio bytes plus one 32-byte sub-header per block plus the
// per-channel padding.
func (l BlockLayout) StreamSize() uint32 {
	audio := l.Samples * 2 * uint32(l.Channels)
	return audio + blockHeaderSize*l.Blocks + l.Padding*uint32(l.Channels)
}

// FirstBlockSize is the per-channel size recorded in the file header. A
// single-block stream reports its padded final size.
func (l BlockLayout) FirstBlockSize() uint32 {
	if l.Blocks == 1 {
		return l.FinalBlockSize + l.Padding
	}
	return BlockSize
}

// blockDataSize is block i's per-channel audio size, excluding padding.
func (l BlockLayout) blockDataSize(i uint32) uint32 {
	if i == l.Blocks-1 {
		return l.FinalBlockSize
	}
	return BlockSize
}
