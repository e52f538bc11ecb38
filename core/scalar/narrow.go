package scalar

// Narrow returns the low 8 bits of the scalar value as an unsigned
// byte. This is truncation, not encoding: for values above 0xFF the
// result is lossy, and for values in 0x80..0xFF it generally differs
// from the UTF-8 encoding, which spreads the same value over a lead
// byte and a continuation byte capped at 0xBF.
func (s Scalar) Narrow() byte {
	return byte(s.v)
}

// NarrowMatchesUTF8 reports whether the narrowed byte is exactly the
// scalar's UTF-8 encoding. True only for U+0000..U+007F, where the
// single encoded byte is the value itself.
func (s Scalar) NarrowMatchesUTF8() bool {
	return s.UTF8Len() == 1
}
