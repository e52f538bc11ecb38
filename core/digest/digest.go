// Package digest computes BLAKE3 digests of encoded output so bulk runs
// can be verified against golden values.
package digest

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Sum computes the hex-encoded BLAKE3 hash of the given data.
func Sum(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Hasher accumulates encoded output incrementally. The zero value is
// not usable; create one with New.
type Hasher struct {
	h *blake3.Hasher
	n int64
}

// New creates an empty Hasher.
func New() *Hasher {
	return &Hasher{h: blake3.New()}
}

// Write adds data to the running digest. It never fails.
func (h *Hasher) Write(p []byte) (int, error) {
	h.n += int64(len(p))
	return h.h.Write(p)
}

// Bytes returns the number of bytes hashed so far.
func (h *Hasher) Bytes() int64 {
	return h.n
}

// Sum returns the hex-encoded digest of everything written so far.
// The hasher remains usable afterwards.
func (h *Hasher) Sum() string {
	return hex.EncodeToString(h.h.Sum(nil))
}
