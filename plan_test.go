// SPDX-License-Identifier: EPL-2.0

package wav2ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/wav2ast/formats/wav"
)

func u32(v uint32) *uint32 { return &v }
func u64(v uint64) *uint64 { return &v }

func sourceDescriptor() wav.Descriptor {
	return wav.Descriptor{
		Channels:      1,
		SampleRate:    32000,
		BitsPerSample: 16,
		DataSize:      40000,
		TotalSamples:  20000,
	}
}

func TestMicrosToSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		us   uint64
		rate uint32
		want uint32
	}{
		{"ThirtySecondsAt32k", 30000000, 32000, 960000},
		{"ExactSampleBoundary", 15625, 32000, 500},
		{"RoundsDown", 15626, 32000, 500},
		{"RoundsHalfUp", 500, 1000, 1},
		{"TinyOffsetRoundsToZero", 1, 32000, 0},
		{"OneSecondAt44k1", 1000000, 44100, 44100},
		{"LargeOffsetKeepsPrecision", 3600000000, 48000, 172800000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, microsToSamples(tt.us, tt.rate))
		})
	}
}

func TestResolvePlan_Defaults(t *testing.T) {
	t.Parallel()

	plan, err := ResolvePlan(sourceDescriptor(), Options{})
	require.NoError(t, err)

	assert.Equal(t, uint32(32000), plan.SampleRate)
	assert.Equal(t, uint32(20000), plan.TotalSamples)
	assert.Zero(t, plan.LoopStart)
	assert.True(t, plan.Looped)
}

func TestResolvePlan_EndSample(t *testing.T) {
	t.Parallel()

	plan, err := ResolvePlan(sourceDescriptor(), Options{EndSample: u32(5000)})
	require.NoError(t, err)
	assert.Equal(t, uint32(5000), plan.TotalSamples)

	// Requests past the source never extend the output.
	plan, err = ResolvePlan(sourceDescriptor(), Options{EndSample: u32(999999)})
	require.NoError(t, err)
	assert.Equal(t, uint32(20000), plan.TotalSamples)

	_, err = ResolvePlan(sourceDescriptor(), Options{EndSample: u32(0)})
	assert.ErrorIs(t, err, ErrZeroSampleCount)
}

func TestResolvePlan_EndMicros(t *testing.T) {
	t.Parallel()

	// 312500 µs at 32 kHz is exactly 10000 samples.
	plan, err := ResolvePlan(sourceDescriptor(), Options{EndMicros: u64(312500)})
	require.NoError(t, err)
	assert.Equal(t, uint32(10000), plan.TotalSamples)

	// Clamped to the source length.
	plan, err = ResolvePlan(sourceDescriptor(), Options{EndMicros: u64(3600000000)})
	require.NoError(t, err)
	assert.Equal(t, uint32(20000), plan.TotalSamples)

	_, err = ResolvePlan(sourceDescriptor(), Options{EndMicros: u64(0)})
	assert.ErrorIs(t, err, ErrZeroEndTime)

	// One microsecond rounds to zero samples.
	_, err = ResolvePlan(sourceDescriptor(), Options{EndMicros: u64(1)})
	assert.ErrorIs(t, err, ErrEndTimeTooShort)
}

func TestResolvePlan_LoopStart(t *testing.T) {
	t.Parallel()

	plan, err := ResolvePlan(sourceDescriptor(), Options{LoopStart: 1234})
	require.NoError(t, err)
	assert.Equal(t, uint32(1234), plan.LoopStart)

	// Microseconds take precedence and convert with the source rate.
	plan, err = ResolvePlan(sourceDescriptor(), Options{LoopStart: 9, LoopStartMicros: u64(312500)})
	require.NoError(t, err)
	assert.Equal(t, uint32(10000), plan.LoopStart)

	// A loop start at or past the end silently resets to zero.
	plan, err = ResolvePlan(sourceDescriptor(), Options{LoopStart: 20000})
	require.NoError(t, err)
	assert.Zero(t, plan.LoopStart)

	plan, err = ResolvePlan(sourceDescriptor(), Options{LoopStart: 6000, EndSample: u32(5000)})
	require.NoError(t, err)
	assert.Zero(t, plan.LoopStart)
}

func TestResolvePlan_NoLoop(t *testing.T) {
	t.Parallel()

	plan, err := ResolvePlan(sourceDescriptor(), Options{NoLoop: true, LoopStart: 1234})
	require.NoError(t, err)

	assert.False(t, plan.Looped)
	assert.Zero(t, plan.LoopStart, "disabling the loop forces the loop start to zero")
}

func TestResolvePlan_SampleRateOverride(t *testing.T) {
	t.Parallel()

	plan, err := ResolvePlan(sourceDescriptor(), Options{SampleRate: 48000})
	require.NoError(t, err)
	assert.Equal(t, uint32(48000), plan.SampleRate)

	// Zero keeps the source rate.
	plan, err = ResolvePlan(sourceDescriptor(), Options{SampleRate: 0})
	require.NoError(t, err)
	assert.Equal(t, uint32(32000), plan.SampleRate)

	// Loop time conversion sticks to the source rate even when the
	// playback rate is overridden.
	plan, err = ResolvePlan(sourceDescriptor(), Options{
		SampleRate:      64000,
		LoopStartMicros: u64(312500),
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(10000), plan.LoopStart)
}

func TestResolvePlan_ZeroSourceRate(t *testing.T) {
	t.Parallel()

	d := sourceDescriptor()
	d.SampleRate = 0

	_, err := ResolvePlan(d, Options{})
	assert.ErrorIs(t, err, ErrZeroSampleRate)

	// An explicit rate rescues a broken source header.
	plan, err := ResolvePlan(d, Options{SampleRate: 22050})
	require.NoError(t, err)
	assert.Equal(t, uint32(22050), plan.SampleRate)
}
