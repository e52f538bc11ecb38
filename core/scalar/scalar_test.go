package scalar

import (
	"testing"

	"github.com/FocuswithJustin/RuneCast/core/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		input   int64
		wantErr error
	}{
		{"zero", 0x0000, nil},
		{"ascii", 0x0041, nil},
		{"last ascii", 0x007F, nil},
		{"first two-byte", 0x0080, nil},
		{"last before surrogates", 0xD7FF, nil},
		{"first surrogate", 0xD800, errors.ErrSurrogateNotAllowed},
		{"mid surrogate", 0xDC00, errors.ErrSurrogateNotAllowed},
		{"last surrogate", 0xDFFF, errors.ErrSurrogateNotAllowed},
		{"first after surrogates", 0xE000, nil},
		{"max BMP", 0xFFFF, nil},
		{"first supplementary", 0x10000, nil},
		{"max scalar", 0x10FFFF, nil},
		{"above max", 0x110000, errors.ErrOutOfRange},
		{"negative", -1, errors.ErrOutOfRange},
		{"far above max", 1 << 32, errors.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New(%#x) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				var serr *errors.ScalarError
				if !errors.As(err, &serr) {
					t.Fatalf("New(%#x) error is not a *ScalarError", tt.input)
				}
				if serr.Value != tt.input {
					t.Errorf("ScalarError.Value = %#x, want %#x", serr.Value, tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%#x) unexpected error: %v", tt.input, err)
			}
			if got := int64(s.Rune()); got != tt.input {
				t.Errorf("Rune() = %#x, want %#x", got, tt.input)
			}
		})
	}
}

func TestFromRune(t *testing.T) {
	if _, err := FromRune('é'); err != nil {
		t.Errorf("FromRune('é') unexpected error: %v", err)
	}
	if _, err := FromRune(rune(0xD900)); !errors.Is(err, errors.ErrSurrogateNotAllowed) {
		t.Errorf("FromRune(surrogate) error = %v, want ErrSurrogateNotAllowed", err)
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew(0x110000) should panic")
		}
	}()
	MustNew(0x110000)
}

func TestString(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0x41, "U+0041"},
		{0x7F, "U+007F"},
		{0x1F600, "U+1F600"},
	}
	for _, tt := range tests {
		if got := MustNew(tt.input).String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
