package scalar

import "github.com/FocuswithJustin/RuneCast/core/errors"

// UTF-8 lead byte prefixes and payload masks.
const (
	tx = 0x80 // 1000 0000  continuation prefix
	t2 = 0xC0 // 1100 0000  2-byte lead prefix
	t3 = 0xE0 // 1110 0000  3-byte lead prefix
	t4 = 0xF0 // 1111 0000  4-byte lead prefix
	t5 = 0xF8 // 1111 1000  first invalid lead value

	maskx = 0x3F // 0011 1111  continuation payload
	mask2 = 0x1F // 0001 1111  2-byte lead payload
	mask3 = 0x0F // 0000 1111  3-byte lead payload
	mask4 = 0x07 // 0000 0111  4-byte lead payload

	// Lowest and highest valid continuation byte.
	locb = 0x80 // 1000 0000
	hicb = 0xBF // 1011 1111
)

// utf8Ranges is the canonical sequence-length table, ordered by upper
// bound so each boundary (0x7F, 0x7FF, 0xFFFF, 0x10FFFF) is explicit.
var utf8Ranges = []struct {
	max  rune
	size int
}{
	{max: 1<<7 - 1, size: 1},
	{max: 1<<11 - 1, size: 2},
	{max: 1<<16 - 1, size: 3},
	{max: Max, size: 4},
}

// UTF8Len returns the number of bytes in the scalar's UTF-8 encoding.
func (s Scalar) UTF8Len() int {
	for _, r := range utf8Ranges {
		if s.v <= r.max {
			return r.size
		}
	}
	// Unreachable: construction bounds s.v by Max.
	return 4
}

// AppendUTF8 appends the canonical UTF-8 encoding of s to dst and
// returns the extended slice. Continuation bytes carry six bits each,
// filled from the least-significant end; the lead byte carries the
// remaining high bits under its prefix.
func (s Scalar) AppendUTF8(dst []byte) []byte {
	switch s.UTF8Len() {
	case 1:
		return append(dst, byte(s.v))
	case 2:
		return append(dst,
			t2|byte(s.v>>6),
			tx|byte(s.v)&maskx)
	case 3:
		return append(dst,
			t3|byte(s.v>>12),
			tx|byte(s.v>>6)&maskx,
			tx|byte(s.v)&maskx)
	default:
		return append(dst,
			t4|byte(s.v>>18),
			tx|byte(s.v>>12)&maskx,
			tx|byte(s.v>>6)&maskx,
			tx|byte(s.v)&maskx)
	}
}

// EncodeUTF8 returns the canonical UTF-8 encoding of s as a fresh slice.
func (s Scalar) EncodeUTF8() []byte {
	return s.AppendUTF8(make([]byte, 0, 4))
}

// DecodeUTF8 decodes exactly one scalar value from the start of p and
// returns it with the number of bytes consumed. Unlike the standard
// library decoder it never substitutes U+FFFD: truncated input, stray
// continuation bytes, overlong forms, surrogates and values above
// U+10FFFF all fail with a typed error.
func DecodeUTF8(p []byte) (Scalar, int, error) {
	if len(p) == 0 {
		return Scalar{}, 0, errors.NewDecode(0, "empty input")
	}

	lead := p[0]
	var (
		size int
		v    rune
		min  rune // smallest value the sequence length may encode
	)
	switch {
	case lead < tx:
		return Scalar{v: rune(lead)}, 1, nil
	case lead < t2:
		return Scalar{}, 0, errors.NewDecode(0, "stray continuation byte")
	case lead < t3:
		size, v, min = 2, rune(lead&mask2), 1<<7
	case lead < t4:
		size, v, min = 3, rune(lead&mask3), 1<<11
	case lead < t5:
		size, v, min = 4, rune(lead&mask4), 1<<16
	default:
		return Scalar{}, 0, errors.NewDecode(0, "invalid lead byte")
	}

	if len(p) < size {
		return Scalar{}, 0, errors.NewDecode(len(p), "truncated sequence")
	}
	for i := 1; i < size; i++ {
		c := p[i]
		if c < locb || c > hicb {
			return Scalar{}, 0, errors.NewDecode(i, "expected continuation byte")
		}
		v = v<<6 | rune(c&maskx)
	}

	if v < min {
		return Scalar{}, 0, errors.NewDecode(0, "overlong encoding")
	}
	s, err := New(int64(v))
	if err != nil {
		return Scalar{}, 0, &errors.DecodeError{Offset: 0, Reason: "decoded value is not a scalar", Err: err}
	}
	return s, size, nil
}
