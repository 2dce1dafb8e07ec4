package series

import (
	"errors"
	"unicode"
	"unicode/utf16"
)

// Errors returned by series operations.
var (
	ErrCodepointRange = errors.New("series: codepoint out of representable range")
	ErrIndexRange     = errors.New("series: index out of range")
)

// MaxCodepoint is the largest codepoint a wide series can hold directly.
const MaxCodepoint = 0xFFFF

// Width is the element width of a series in bytes.
type Width uint8

const (
	// Byte is 8-bit element storage (Latin-1 text, binary data).
	Byte Width = 1
	// Wide is 16-bit element storage (UCS-2 wide characters).
	Wide Width = 2
)

// String returns a string representation of the width.
func (w Width) String() string {
	switch w {
	case Byte:
		return "byte"
	case Wide:
		return "wide"
	default:
		return "unknown"
	}
}

// Series is a growable block of fixed-width elements shared by reference.
// The zero value is an empty byte-wide series.
type Series struct {
	width     Width
	bytes     []byte   // active storage when width == Byte
	wide      []uint16 // active storage when width == Wide
	protected bool
}

// New creates an empty series of the given width with room for capacity
// elements.
func New(w Width, capacity int) *Series {
	if capacity < 0 {
		capacity = 0
	}
	s := &Series{width: w}
	if w == Wide {
		s.wide = make([]uint16, 0, capacity)
	} else {
		s.width = Byte
		s.bytes = make([]byte, 0, capacity)
	}
	return s
}

// FromString creates a series from a Go string. Content that fits in Latin-1
// stays byte-wide; anything else is stored wide. Codepoints above
// MaxCodepoint are rejected.
func FromString(str string) (*Series, error) {
	return FromRunes([]rune(str))
}

// FromRunes creates a series from a rune slice, choosing the narrowest width
// that can hold the content. Codepoints above MaxCodepoint are stored as
// UTF-16 surrogate pairs and occupy two elements.
func FromRunes(rs []rune) (*Series, error) {
	wide := false
	for _, r := range rs {
		if r < 0 || r > unicode.MaxRune {
			return nil, ErrCodepointRange
		}
		if r > 0xFF {
			wide = true
		}
	}

	if wide {
		elems := utf16.Encode(rs)
		s := New(Wide, len(elems))
		s.wide = append(s.wide, elems...)
		return s, nil
	}

	s := New(Byte, len(rs))
	for _, r := range rs {
		s.bytes = append(s.bytes, byte(r))
	}
	return s, nil
}

// FromBytes creates a byte-wide series owning a copy of b.
func FromBytes(b []byte) *Series {
	s := New(Byte, len(b))
	s.bytes = append(s.bytes, b...)
	return s
}

// Width returns the element width of the series.
func (s *Series) Width() Width {
	if s.width == Wide {
		return Wide
	}
	return Byte
}

// Len returns the number of elements in the series.
func (s *Series) Len() int {
	if s.width == Wide {
		return len(s.wide)
	}
	return len(s.bytes)
}

// Cap returns the element capacity of the series.
func (s *Series) Cap() int {
	if s.width == Wide {
		return cap(s.wide)
	}
	return cap(s.bytes)
}

// Protected reports whether the series is write-protected.
func (s *Series) Protected() bool {
	return s.protected
}

// Protect marks the series write-protected. Mutation layers must refuse to
// modify a protected series.
func (s *Series) Protect() {
	s.protected = true
}

// Unprotect clears the write-protected mark.
func (s *Series) Unprotect() {
	s.protected = false
}

// Get returns the codepoint at index i. The index must be in [0, Len());
// callers are expected to have range-checked already.
func (s *Series) Get(i int) rune {
	if s.width == Wide {
		return rune(s.wide[i])
	}
	return rune(s.bytes[i])
}

// Set writes codepoint r at index i, widening byte storage if r does not fit
// in a single byte. Widening never happens on read.
func (s *Series) Set(i int, r rune) error {
	if r < 0 || r > MaxCodepoint {
		return ErrCodepointRange
	}
	if i < 0 || i >= s.Len() {
		return ErrIndexRange
	}
	if s.width != Wide && r > 0xFF {
		s.Widen()
	}
	if s.width == Wide {
		s.wide[i] = uint16(r)
	} else {
		s.bytes[i] = byte(r)
	}
	return nil
}

// Append adds codepoint r at the tail, widening if needed. A codepoint above
// MaxCodepoint is stored as a surrogate pair and occupies two elements.
func (s *Series) Append(r rune) error {
	if r < 0 || r > unicode.MaxRune {
		return ErrCodepointRange
	}
	if s.width != Wide && r > 0xFF {
		s.Widen()
	}
	if r > MaxCodepoint {
		hi, lo := utf16.EncodeRune(r)
		s.wide = append(s.wide, uint16(hi), uint16(lo))
		return nil
	}
	if s.width == Wide {
		s.wide = append(s.wide, uint16(r))
	} else {
		s.bytes = append(s.bytes, byte(r))
	}
	return nil
}

// AppendRunes appends each rune in rs at the tail.
func (s *Series) AppendRunes(rs []rune) error {
	for _, r := range rs {
		if err := s.Append(r); err != nil {
			return err
		}
	}
	return nil
}

// Widen promotes byte storage to wide storage in place, copy-promoting every
// existing element. Widening a wide series is a no-op. Any raw storage
// previously obtained from Bytes is invalid afterward.
func (s *Series) Widen() {
	if s.width == Wide {
		return
	}
	wide := make([]uint16, len(s.bytes), cap(s.bytes))
	for i, b := range s.bytes {
		wide[i] = uint16(b)
	}
	s.width = Wide
	s.wide = wide
	s.bytes = nil
}

// OpenHole shifts the tail right to make room for n elements at index at.
// The new elements are zeroed. at may equal Len (append position).
func (s *Series) OpenHole(at, n int) error {
	if n <= 0 {
		return nil
	}
	length := s.Len()
	if at < 0 || at > length {
		return ErrIndexRange
	}
	if s.width == Wide {
		s.wide = append(s.wide, make([]uint16, n)...)
		copy(s.wide[at+n:], s.wide[at:length])
		for i := at; i < at+n; i++ {
			s.wide[i] = 0
		}
	} else {
		s.bytes = append(s.bytes, make([]byte, n)...)
		copy(s.bytes[at+n:], s.bytes[at:length])
		for i := at; i < at+n; i++ {
			s.bytes[i] = 0
		}
	}
	return nil
}

// Remove deletes n elements starting at index at, shifting the tail left.
// The range is clipped to the series bounds.
func (s *Series) Remove(at, n int) {
	length := s.Len()
	if at < 0 || at >= length || n <= 0 {
		return
	}
	if at+n > length {
		n = length - at
	}
	if s.width == Wide {
		s.wide = append(s.wide[:at], s.wide[at+n:]...)
	} else {
		s.bytes = append(s.bytes[:at], s.bytes[at+n:]...)
	}
}

// Truncate shortens the series to n elements. Longer than Len is a no-op.
func (s *Series) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= s.Len() {
		return
	}
	if s.width == Wide {
		s.wide = s.wide[:n]
	} else {
		s.bytes = s.bytes[:n]
	}
}

// Reset empties the series, keeping capacity and width.
func (s *Series) Reset() {
	if s.width == Wide {
		s.wide = s.wide[:0]
	} else {
		s.bytes = s.bytes[:0]
	}
}

// Bytes returns the raw byte storage of a byte-wide series. It returns nil
// for a wide series. The slice is invalidated by any mutating call.
func (s *Series) Bytes() []byte {
	if s.width == Wide {
		return nil
	}
	return s.bytes
}

// WideElems returns the raw element storage of a wide series. It returns nil
// for a byte-wide series. The slice is invalidated by any mutating call.
func (s *Series) WideElems() []uint16 {
	if s.width != Wide {
		return nil
	}
	return s.wide
}

// RawBytes returns the storage interpreted as bytes regardless of width:
// Len()*Width() bytes, wide elements in native little-endian order. Used for
// content checksums.
func (s *Series) RawBytes() []byte {
	if s.width != Wide {
		return s.bytes
	}
	raw := make([]byte, 0, len(s.wide)*2)
	for _, u := range s.wide {
		raw = append(raw, byte(u), byte(u>>8))
	}
	return raw
}

// Runes returns the content from index at as a rune slice. Surrogate pairs
// in wide storage decode to their combined codepoint.
func (s *Series) Runes(at int) []rune {
	length := s.Len()
	if at < 0 || at > length {
		return nil
	}
	if s.width == Wide {
		return utf16.Decode(s.wide[at:])
	}
	rs := make([]rune, 0, length-at)
	for i := at; i < length; i++ {
		rs = append(rs, s.Get(i))
	}
	return rs
}

// String returns the full content decoded to a Go string.
func (s *Series) String() string {
	return string(s.Runes(0))
}

// Slice creates a new unprotected series holding a copy of len elements
// starting at index at, at the narrowest width that can hold the content.
// The range is clipped to the series bounds.
func (s *Series) Slice(at, n int) *Series {
	length := s.Len()
	if at < 0 {
		at = 0
	}
	if at > length {
		at = length
	}
	if n < 0 || at+n > length {
		n = length - at
	}
	if s.width != Wide {
		out := New(Byte, n)
		out.bytes = append(out.bytes, s.bytes[at:at+n]...)
		return out
	}

	// Slimming copy: a wide series whose slice holds only Latin-1 content
	// comes back byte-wide.
	narrow := true
	for i := at; i < at+n; i++ {
		if s.wide[i] > 0xFF {
			narrow = false
			break
		}
	}
	if narrow {
		out := New(Byte, n)
		for i := at; i < at+n; i++ {
			out.bytes = append(out.bytes, byte(s.wide[i]))
		}
		return out
	}
	out := New(Wide, n)
	out.wide = append(out.wide, s.wide[at:at+n]...)
	return out
}
