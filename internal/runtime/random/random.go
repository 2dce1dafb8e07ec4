// Package random provides the runtime's randomness service as explicit,
// caller-owned state. The mutation engine takes a *Source by reference; there
// is no hidden package-level generator, which keeps seeded runs deterministic
// and testable.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"hash/crc32"
	mrand "math/rand"
)

// Source is a seedable random number generator with an optional secure mode.
type Source struct {
	rng    *mrand.Rand
	secure bool
}

// New creates a Source with the given seed.
func New(seed uint32) *Source {
	return &Source{rng: mrand.New(mrand.NewSource(int64(seed)))}
}

// NewSecure creates a Source that draws from the operating system's entropy
// pool instead of the deterministic generator.
func NewSecure() *Source {
	s := New(0)
	s.secure = true
	return s
}

// Seed reseeds the deterministic generator. It has no effect on draws made in
// secure mode.
func (s *Source) Seed(seed uint32) {
	s.rng = mrand.New(mrand.NewSource(int64(seed)))
}

// SetSecure switches the source between deterministic and secure draws.
func (s *Source) SetSecure(secure bool) {
	s.secure = secure
}

// Int returns a uniform value in [0, n). n must be positive.
func (s *Source) Int(n int) int {
	if n <= 1 {
		return 0
	}
	if s.secure {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err == nil {
			return int(binary.LittleEndian.Uint64(buf[:]) % uint64(n))
		}
		// Entropy failure falls back to the deterministic generator.
	}
	return s.rng.Intn(n)
}

// Checksum computes the content checksum used to seed a generator from a
// series' raw bytes.
func Checksum(raw []byte) uint32 {
	return crc32.ChecksumIEEE(raw)
}
