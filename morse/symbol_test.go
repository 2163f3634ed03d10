// SPDX-License-Identifier: EPL-2.0

package morse

import (
	"errors"
	"testing"
)

func TestParseSymbols(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    string
		want    string
		wantErr error
	}{
		{"empty", "", "", nil},
		{"mixed", "..-.", "..-.", nil},
		{"dashes", "---", "---", nil},
		{"space", ".. -", "", ErrInvalidSymbol},
		{"letter", ".a", "", ErrInvalidSymbol},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseSymbols(tt.code)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseSymbols(%q) error = %v, want %v", tt.code, err, tt.wantErr)
			}

			if got.String() != tt.want {
				t.Errorf("ParseSymbols(%q) = %q, want %q", tt.code, got.String(), tt.want)
			}
		})
	}
}

func TestSymbolString(t *testing.T) {
	t.Parallel()

	if Dot.String() != "." || Dash.String() != "-" {
		t.Errorf("Dot, Dash = %q, %q", Dot.String(), Dash.String())
	}

	if got := (Symbols{Dash, Dot, Dash}).String(); got != "-.-" {
		t.Errorf("Symbols.String() = %q, want %q", got, "-.-")
	}
}
