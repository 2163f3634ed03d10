// SPDX-License-Identifier: EPL-2.0

package spectrum

import "errors"

var (
	ErrInvalidFrameSize = errors.New("spectrum: frame size must be positive")
	ErrInvalidHopSize   = errors.New("spectrum: hop size must be positive")
)
