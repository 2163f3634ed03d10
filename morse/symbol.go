// SPDX-License-Identifier: EPL-2.0

package morse

import (
	"fmt"
	"strings"
)

// Symbol is one Morse element. Its value is the wire character.
type Symbol byte

const (
	Dot  Symbol = '.'
	Dash Symbol = '-'
)

func (s Symbol) String() string { return string(rune(s)) }

// Symbols is a decoded sequence in temporal order.
type Symbols []Symbol

// String concatenates the symbols with no separators.
func (s Symbols) String() string {
	var b strings.Builder

	b.Grow(len(s))

	for _, sym := range s {
		b.WriteByte(byte(sym))
	}

	return b.String()
}

// ParseSymbols reads a string of '.' and '-'.
func ParseSymbols(code string) (Symbols, error) {
	out := make(Symbols, 0, len(code))

	for i := 0; i < len(code); i++ {
		switch sym := Symbol(code[i]); sym {
		case Dot, Dash:
			out = append(out, sym)
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidSymbol, code[i], i)
		}
	}

	return out, nil
}
