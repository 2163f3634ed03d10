// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidBufSize    = errors.New("buffer size must be positive")
	ErrUnknownFormat     = errors.New("no decoder registered for format")
)
