// SPDX-License-Identifier: EPL-2.0

package morse

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("morse: invalid argument")

	ErrInvalidSampleRate = fmt.Errorf("%w: sample rate must be positive", ErrInvalidArgument)
	ErrTargetOutOfRange  = fmt.Errorf("%w: target frequency outside the spectrum", ErrInvalidArgument)
	ErrInvalidParams     = fmt.Errorf("%w: invalid decode parameters", ErrInvalidArgument)

	ErrInvalidSymbol = errors.New("morse: invalid symbol")
)
