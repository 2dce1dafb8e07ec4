package value

// Bitset is a codepoint membership set used as a find target.
type Bitset struct {
	bits    []byte
	negated bool
}

// NewBitset creates an empty bitset able to hold codepoints below size.
func NewBitset(size int) *Bitset {
	if size < 1 {
		size = 1
	}
	return &Bitset{bits: make([]byte, (size+7)/8)}
}

// BitsetOf creates a bitset containing every codepoint of str.
func BitsetOf(str string) *Bitset {
	max := 0
	for _, r := range str {
		if int(r) > max {
			max = int(r)
		}
	}
	bs := NewBitset(max + 1)
	for _, r := range str {
		bs.Set(r)
	}
	return bs
}

// Kind implements Value.
func (*Bitset) Kind() Kind { return KindBitset }

// Set adds codepoint r to the set, growing the bit storage if needed.
func (b *Bitset) Set(r rune) {
	if r < 0 {
		return
	}
	idx := int(r) / 8
	if idx >= len(b.bits) {
		grown := make([]byte, idx+1)
		copy(grown, b.bits)
		b.bits = grown
	}
	b.bits[idx] |= 1 << (uint(r) % 8)
}

// SetRange adds every codepoint in [lo, hi] to the set.
func (b *Bitset) SetRange(lo, hi rune) {
	for r := lo; r <= hi; r++ {
		b.Set(r)
	}
}

// Negate flips the sense of membership tests.
func (b *Bitset) Negate() {
	b.negated = !b.negated
}

// Test reports whether codepoint r is a member of the set.
func (b *Bitset) Test(r rune) bool {
	in := false
	if r >= 0 {
		idx := int(r) / 8
		if idx < len(b.bits) {
			in = b.bits[idx]&(1<<(uint(r)%8)) != 0
		}
	}
	if b.negated {
		return !in
	}
	return in
}

// Bytes returns a copy of the raw bit storage.
func (b *Bitset) Bytes() []byte {
	out := make([]byte, len(b.bits))
	copy(out, b.bits)
	return out
}
