// SPDX-License-Identifier: EPL-2.0

package session

import "errors"

var (
	ErrInvalidSampleRate = errors.New("session: sample rate must be positive")
	ErrNotRecording      = errors.New("session: not recording")
	ErrAlreadyRecording  = errors.New("session: already recording")
	ErrNotStopped        = errors.New("session: recording not stopped")
)
