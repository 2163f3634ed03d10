// SPDX-License-Identifier: EPL-2.0

package morsepbx

import "errors"

var (
	ErrUnknownMode = errors.New("morsepbx: unknown decoding mode")
	ErrEmptyBuffer = errors.New("morsepbx: nil buffer")
)
