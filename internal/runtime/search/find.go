package search

import (
	"github.com/dshills/strand/internal/runtime/compare"
	"github.com/dshills/strand/internal/runtime/series"
	"github.com/dshills/strand/internal/runtime/value"
)

// NotFound is the sentinel position for a failed search.
const NotFound = -1

// Flags modify search behavior. They combine independently.
type Flags uint8

const (
	// Case makes the search case-sensitive.
	Case Flags = 1 << iota
	// Match anchors the search: only the starting position is probed.
	Match
	// Reverse scans backward from just before the starting position.
	Reverse
	// Last scans backward from the tail.
	Last
	// Tail asks the caller to report the position just past the match.
	// The search itself always returns the match start; the dispatcher
	// applies the adjustment.
	Tail
)

// Find locates target within s between index and end (element positions).
// Target may be a string/binary view, a Char, an Int codepoint, or a Bitset.
// targetLen is the number of elements the target occupies (1 for char, int,
// and bitset targets). skip is the candidate stride; 1 probes every position.
// Returns the absolute match position or NotFound.
func Find(s *series.Series, index, end int, target value.Value, targetLen int, flags Flags, skip int) int {
	start := index

	if flags&(Reverse|Last) != 0 {
		skip = -1
		start = 0
		if flags&Last != 0 {
			index = end - targetLen
		} else {
			index--
		}
	}
	if skip == 0 {
		skip = 1
	}

	switch t := target.(type) {
	case value.View:
		if t.Tag == value.KindBinary && s.Width() != series.Byte {
			// Binary sought in wide text still compares by codepoint.
			return findStr(s, start, index, end, skip, t, targetLen, flags|Case)
		}
		if s.Width() == series.Byte &&
			t.Series.Width() == series.Byte &&
			flags&^(Case|Match) == 0 {
			return findByteStr(s, start, end, viewBytes(t, targetLen), flags&Case == 0, flags&Match != 0)
		}
		return findStr(s, start, index, end, skip, t, targetLen, flags)
	case value.Char:
		return findChar(rune(t), s, start, index, end, skip, flags)
	case value.Int:
		return findChar(rune(t), s, start, index, end, skip, flags)
	case *value.Bitset:
		return findBitset(s, start, index, end, skip, t, flags)
	default:
		return NotFound
	}
}

func viewBytes(v value.View, n int) []byte {
	b := v.Series.Bytes()
	if v.Index >= len(b) {
		return nil
	}
	b = b[v.Index:]
	if n < len(b) {
		b = b[:n]
	}
	return b
}

// findByteStr is the fast path: both sides byte-wide, forward scan only.
func findByteStr(s *series.Series, index, end int, target []byte, uncase, match bool) int {
	if len(target) == 0 {
		return NotFound
	}
	raw := s.Bytes()
	if end > len(raw) {
		end = len(raw)
	}

	first := target[0]
	firstUp := upByte(first)

	for i := index; i < end; i++ {
		b := raw[i]
		hit := b == first
		if !hit && uncase {
			hit = upByte(b) == firstUp
		}
		if hit {
			if i+len(target) <= len(raw) && byteTailMatches(raw, i, target, uncase) {
				return i
			}
		}
		if match {
			break
		}
	}
	return NotFound
}

func byteTailMatches(raw []byte, at int, target []byte, uncase bool) bool {
	for j := 1; j < len(target); j++ {
		b := raw[at+j]
		c := target[j]
		if b == c {
			continue
		}
		if !uncase || upByte(b) != upByte(c) {
			return false
		}
	}
	return true
}

func upByte(b byte) byte {
	r := compare.UpCase(rune(b))
	if r > 0xFF {
		// Folding escapes the byte range (e.g. 0xFF -> U+0178); keep as-is.
		return b
	}
	return byte(r)
}

// findStr is the general substring search: any widths, any direction, stride.
func findStr(s *series.Series, head, index, end int, skip int, target value.View, targetLen int, flags Flags) int {
	if targetLen <= 0 {
		return NotFound
	}
	uncase := flags&Case == 0

	lead := target.Series.Get(target.Index)
	if uncase {
		lead = compare.UpCase(lead)
	}

	for ; index >= head && index < end; index += skip {
		c := s.Get(index)
		if uncase {
			c = compare.UpCase(c)
		}
		if c == lead && index+targetLen <= s.Len() && strTailMatches(s, index, target, targetLen, uncase) {
			return index
		}
		if flags&Match != 0 {
			break
		}
	}
	return NotFound
}

func strTailMatches(s *series.Series, at int, target value.View, targetLen int, uncase bool) bool {
	for j := 1; j < targetLen; j++ {
		c1 := s.Get(at + j)
		c2 := target.Series.Get(target.Index + j)
		if c1 == c2 {
			continue
		}
		if !uncase || compare.UpCase(c1) != compare.UpCase(c2) {
			return false
		}
	}
	return true
}

func findChar(want rune, s *series.Series, head, index, end int, skip int, flags Flags) int {
	uncase := flags&Case == 0
	if uncase {
		want = compare.UpCase(want)
	}

	for ; index >= head && index < end; index += skip {
		c := s.Get(index)
		if uncase {
			c = compare.UpCase(c)
		}
		if c == want {
			return index
		}
		if flags&Match != 0 {
			break
		}
	}
	return NotFound
}

func findBitset(s *series.Series, head, index, end int, skip int, bs *value.Bitset, flags Flags) int {
	for ; index >= head && index < end; index += skip {
		if bs.Test(s.Get(index)) {
			return index
		}
		if flags&Match != 0 {
			break
		}
	}
	return NotFound
}
