// SPDX-License-Identifier: EPL-2.0

package wav2ast

import (
	"math/big"

	"github.com/ik5/wav2ast/formats/wav"
)

// Options are the user-facing conversion overrides. Pointer fields
// distinguish "not supplied" from a literal zero, which matters because a
// zero end point is an error while an omitted one means "whole file".
type Options struct {
	// LoopStart is the loop point as a sample index. Ignored when
	// LoopStartMicros is supplied or looping is disabled.
	LoopStart uint32
	// LoopStartMicros is the loop point as a time offset, converted with
	// the source sample rate.
	LoopStartMicros *uint64
	// NoLoop disables looping and forces the loop point to zero.
	NoLoop bool
	// EndSample truncates the stream to this many samples. Zero is an
	// error; values past the source length are clamped, never extended.
	EndSample *uint32
	// EndMicros truncates the stream at a time offset, converted with the
	// source sample rate and clamped like EndSample.
	EndMicros *uint64
	// SampleRate overrides the playback rate recorded in the output,
	// changing playback speed only. Zero keeps the source rate, and time
	// conversions above always use the source rate regardless.
	SampleRate uint32
}

// Plan is the resolved, validated set of conversion parameters. It is
// derived once from a descriptor plus Options and never mutated.
type Plan struct {
	SampleRate   uint32
	TotalSamples uint32
	LoopStart    uint32
	Looped       bool
}

// ResolvePlan validates the overrides against the source descriptor.
//
// End points are clamped to the source sample count. A loop start at or
// past the end of the stream silently resets to zero, matching the
// reference tool.
func ResolvePlan(d wav.Descriptor, opts Options) (Plan, error) {
	total := d.TotalSamples

	if opts.EndSample != nil {
		if *opts.EndSample == 0 {
			return Plan{}, ErrZeroSampleCount
		}
		if *opts.EndSample < total {
			total = *opts.EndSample
		}
	}
	if opts.EndMicros != nil {
		if *opts.EndMicros == 0 {
			return Plan{}, ErrZeroEndTime
		}
		end := microsToSamples(*opts.EndMicros, d.SampleRate)
		if end == 0 {
			return Plan{}, ErrEndTimeTooShort
		}
		if end < total {
			total = end
		}
	}

	loopStart := opts.LoopStart
	if opts.LoopStartMicros != nil {
		loopStart = microsToSamples(*opts.LoopStartMicros, d.SampleRate)
	}

	rate := opts.SampleRate
	if rate == 0 {
		rate = d.SampleRate
	}
	if rate == 0 {
		return Plan{}, ErrZeroSampleRate
	}

	looped := !opts.NoLoop
	if !looped {
		loopStart = 0
	}
	if loopStart >= total {
		loopStart = 0
	}

	return Plan{
		SampleRate:   rate,
		TotalSamples: total,
		LoopStart:    loopStart,
		Looped:       looped,
	}, nil
}

// microsToSamples converts a microsecond offset to a sample count,
// round-half-up. The intermediate runs at 128-bit float precision so large
// offsets at high rates don't lose sample accuracy.
func microsToSamples(us uint64, rate uint32) uint32 {
	f := new(big.Float).SetPrec(128).SetUint64(us)
	f.Quo(f, big.NewFloat(1e6))
	f.Mul(f, new(big.Float).SetUint64(uint64(rate)))
	f.Add(f, big.NewFloat(0.5))
	n, _ := f.Uint64()
	return uint32(n)
}
