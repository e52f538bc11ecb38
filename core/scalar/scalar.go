// Package scalar provides Unicode scalar values and their conversion to
// UTF-8 byte sequences and narrowed single bytes.
//
// A scalar value is an integer in 0..U+10FFFF excluding the UTF-16
// surrogate range U+D800..U+DFFF. Validation happens once, at
// construction; every operation on a constructed Scalar is total.
package scalar

import (
	"fmt"

	"github.com/FocuswithJustin/RuneCast/core/errors"
)

const (
	// Max is the maximum valid Unicode code point.
	Max = 0x10FFFF

	// Surrogate code points are reserved for UTF-16 pairs and are never
	// valid scalar values on their own.
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// Scalar is a validated Unicode scalar value. The zero value is U+0000,
// which is valid. Scalars are immutable and safe to copy and share.
type Scalar struct {
	v rune
}

// New validates v and returns it as a Scalar.
// It fails with ErrOutOfRange for negative values or values above
// U+10FFFF, and with ErrSurrogateNotAllowed for U+D800..U+DFFF.
func New(v int64) (Scalar, error) {
	if v < 0 || v > Max {
		return Scalar{}, errors.NewOutOfRange(v)
	}
	if v >= surrogateMin && v <= surrogateMax {
		return Scalar{}, errors.NewSurrogate(v)
	}
	return Scalar{v: rune(v)}, nil
}

// FromRune validates r and returns it as a Scalar. Go range loops over
// strings never yield surrogates, but runes built by arithmetic can be
// anything, so the same checks as New apply.
func FromRune(r rune) (Scalar, error) {
	return New(int64(r))
}

// MustNew is New for values known valid at compile time; it panics on
// invalid input. Intended for tests and tables of constants.
func MustNew(v int64) Scalar {
	s, err := New(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Rune returns the scalar value as a rune.
func (s Scalar) Rune() rune {
	return s.v
}

// Uint32 returns the scalar value as an unsigned integer.
func (s Scalar) Uint32() uint32 {
	return uint32(s.v)
}

// String formats the scalar in the conventional U+XXXX form.
func (s Scalar) String() string {
	return fmt.Sprintf("U+%04X", s.v)
}
