// SPDX-License-Identifier: EPL-2.0

package wav2ast

import (
	"fmt"
	"io"

	"github.com/ik5/wav2ast/formats/ast"
	"github.com/ik5/wav2ast/formats/wav"
)

// Result describes a finished conversion.
type Result struct {
	// Descriptor of the source WAV, including any non-fatal warnings.
	Descriptor wav.Descriptor
	// Plan actually applied after clamping and validation.
	Plan Plan
	// Layout of the written blocks.
	Layout ast.BlockLayout
}

// FileSize is the total size of the written AST file in bytes.
func (r *Result) FileSize() uint32 {
	return ast.HeaderSize + r.Layout.StreamSize()
}

// Convert runs the whole pipeline: parse the WAV in rs, resolve opts
// against it, and stream the selected samples into w as an AST file.
//
// On error nothing useful has been written to w; a failure partway through
// the block writer leaves w truncated.
func Convert(rs io.ReadSeeker, w io.Writer, opts Options) (*Result, error) {
	src, err := wav.Decode(rs)
	if err != nil {
		return nil, fmt.Errorf("decode WAV: %w", err)
	}

	plan, err := ResolvePlan(src.Descriptor, opts)
	if err != nil {
		return nil, err
	}

	layout, err := ast.ComputeLayout(plan.TotalSamples, src.Channels)
	if err != nil {
		return nil, err
	}

	stream := ast.Stream{
		Channels:     src.Channels,
		SampleRate:   plan.SampleRate,
		TotalSamples: plan.TotalSamples,
		LoopStart:    plan.LoopStart,
		Looped:       plan.Looped,
	}
	if err := ast.Encode(w, src, stream); err != nil {
		return nil, fmt.Errorf("encode AST: %w", err)
	}

	return &Result{Descriptor: src.Descriptor, Plan: plan, Layout: layout}, nil
}
