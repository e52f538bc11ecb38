package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestScalarError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ScalarError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "surrogate",
			err:      NewSurrogate(0xD800),
			wantMsg:  "scalar value U+D800 is a surrogate code point",
			wantBase: ErrSurrogateNotAllowed,
		},
		{
			name:     "above max",
			err:      NewOutOfRange(0x110000),
			wantMsg:  "scalar value 0x110000 exceeds U+10FFFF",
			wantBase: ErrOutOfRange,
		},
		{
			name:     "negative",
			err:      NewOutOfRange(-1),
			wantMsg:  "scalar value -1 is negative",
			wantBase: ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, tt.wantBase) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.wantBase)
			}
		})
	}
}

func TestDecodeError(t *testing.T) {
	err := NewDecode(2, "expected continuation byte")
	want := "invalid UTF-8 at byte 2: expected continuation byte"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Error("DecodeError should unwrap to ErrInvalidEncoding")
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ParseError
		wantMsg string
	}{
		{
			name:    "with path",
			err:     NewParse("points.txt", 7, "not a code point: xyzzy"),
			wantMsg: "points.txt:7: not a code point: xyzzy",
		},
		{
			name:    "without path",
			err:     NewParse("", 3, "empty code point"),
			wantMsg: "line 3: empty code point",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrInvalidInput) {
				t.Error("ParseError should unwrap to ErrInvalidInput")
			}
		})
	}
}

func TestWrap(t *testing.T) {
	base := errors.New("base error")

	t.Run("wraps non-nil error", func(t *testing.T) {
		wrapped := Wrap(base, "context")
		if wrapped == nil {
			t.Fatal("Wrap() returned nil for non-nil error")
		}
		if got, want := wrapped.Error(), "context: base error"; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
		if !errors.Is(wrapped, base) {
			t.Error("wrapped error should match base via errors.Is")
		}
	})

	t.Run("nil passthrough", func(t *testing.T) {
		if Wrap(nil, "context") != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWrapf(t *testing.T) {
	base := errors.New("base error")
	wrapped := Wrapf(base, "processing U+%04X", 0x00C0)
	if got, want := wrapped.Error(), "processing U+00C0: base error"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if Wrapf(nil, "anything %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestIsAndAs(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewSurrogate(0xDFFF))

	if !Is(err, ErrSurrogateNotAllowed) {
		t.Error("Is() should find ErrSurrogateNotAllowed through wrapping")
	}

	var scalarErr *ScalarError
	if !As(err, &scalarErr) {
		t.Fatal("As() should extract *ScalarError")
	}
	if scalarErr.Value != 0xDFFF {
		t.Errorf("extracted Value = %#x, want 0xDFFF", scalarErr.Value)
	}
}
