// SPDX-License-Identifier: EPL-2.0

package wav2ast

import "errors"

var (
	ErrZeroSampleCount = errors.New("total sample count cannot be zero")
	ErrZeroEndTime     = errors.New("end point cannot be zero microseconds")
	ErrEndTimeTooShort = errors.New("end point rounds to zero samples")
	ErrZeroSampleRate  = errors.New("sample rate is 0 Hz")
)
