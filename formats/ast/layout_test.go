// SPDX-License-Identifier: EPL-2.0

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		samples   uint32
		channels  int
		blocks    uint32
		finalSize uint32
		padding   uint32
	}{
		{"OneSampleMono", 1, 1, 1, 2, 30},
		{"ExactlyOneBlock", 5040, 1, 1, 10080, 0},
		{"OneBlockPlusOneSample", 5041, 1, 2, 2, 30},
		{"Mono20kSamples", 20000, 1, 4, 9760, 0},
		{"Stereo20kSamples", 20000, 2, 4, 9760, 0},
		{"SixteenChannels", 12345, 16, 3, 4530, 14},
		{"EvenMultiple", 15120, 1, 3, 10080, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, err := ComputeLayout(tt.samples, tt.channels)
			require.NoError(t, err)

			assert.Equal(t, tt.blocks, l.Blocks)
			assert.Equal(t, tt.finalSize, l.FinalBlockSize)
			assert.Equal(t, tt.padding, l.Padding)
		})
	}
}

func TestComputeLayout_EmptyAudio(t *testing.T) {
	t.Parallel()

	_, err := ComputeLayout(0, 2)
	assert.ErrorIs(t, err, ErrNoAudioData)
}

func TestComputeLayout_ChannelRange(t *testing.T) {
	t.Parallel()

	_, err := ComputeLayout(100, 0)
	assert.ErrorIs(t, err, ErrInvalidChannelCount)

	_, err = ComputeLayout(100, 17)
	assert.ErrorIs(t, err, ErrInvalidChannelCount)

	_, err = ComputeLayout(100, 16)
	assert.NoError(t, err)
}

// The padding must round the final block up to a 32-byte boundary, stay
// within 0-30 and remain even, for any sample count.
func TestComputeLayout_PaddingInvariant(t *testing.T) {
	t.Parallel()

	for samples := uint32(1); samples <= 3*BlockSize; samples += 7 {
		l, err := ComputeLayout(samples, 2)
		require.NoError(t, err)

		require.Zerof(t, (l.FinalBlockSize+l.Padding)%32, "samples=%d", samples)
		require.LessOrEqualf(t, l.Padding, uint32(30), "samples=%d", samples)
		require.Zerof(t, l.Padding%2, "samples=%d", samples)
		require.NotZerof(t, l.FinalBlockSize, "samples=%d", samples)
	}
}

// Per-block sizes must account for every selected sample exactly.
func TestComputeLayout_BlockAccounting(t *testing.T) {
	t.Parallel()

	for _, channels := range []int{1, 2, 4, 16} {
		for _, samples := range []uint32{1, 4999, 5040, 5041, 20000, 3 * BlockSize / 2} {
			l, err := ComputeLayout(samples, channels)
			require.NoError(t, err)

			var sum uint32
			for i := uint32(0); i < l.Blocks; i++ {
				sum += l.blockDataSize(i) * uint32(channels)
			}
			require.Equalf(t, samples*2*uint32(channels), sum,
				"channels=%d samples=%d", channels, samples)
		}
	}
}

func TestBlockLayout_FirstBlockSize(t *testing.T) {
	t.Parallel()

	single, err := ComputeLayout(100, 1)
	require.NoError(t, err)
	assert.Equal(t, single.FinalBlockSize+single.Padding, single.FirstBlockSize())

	multi, err := ComputeLayout(20000, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(BlockSize), multi.FirstBlockSize())
}

func TestBlockLayout_StreamSize(t *testing.T) {
	t.Parallel()

	// 20000 mono samples: 40000 audio bytes, 4 sub-headers, no padding.
	l, err := ComputeLayout(20000, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(40000+4*32), l.StreamSize())

	// 4 mono samples: 8 audio bytes, 1 sub-header, 24 bytes padding.
	l, err = ComputeLayout(4, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(8+32+24), l.StreamSize())

	// Padding counts once per channel.
	l, err = ComputeLayout(4, 2)
	require.NoError(t, err)
	assert.Equal(t, uint32(16+32+2*24), l.StreamSize())
}
