package mutate

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dshills/strand/internal/runtime/series"
	"github.com/dshills/strand/internal/runtime/value"
)

// Op selects the modification flavor.
type Op uint8

const (
	// Insert places content at the view's index, preserving the tail.
	Insert Op = iota
	// Append places content at the series tail regardless of index.
	Append
	// Change overwrites content at the view's index.
	Change
)

// String returns the verb name of the op.
func (op Op) String() string {
	switch op {
	case Insert:
		return "insert"
	case Append:
		return "append"
	case Change:
		return "change"
	default:
		return "unknown"
	}
}

// Modify performs insert, append, or change of src into dst.
//
// part limits the operation when non-negative: for insert and append it caps
// how many elements of src are consumed; for change it is the number of
// target elements replaced (otherwise the source length is replaced). dup
// repeats the inserted content; values below one insert nothing.
//
// The returned position is the index immediately after the inserted content
// for insert and change, and the head position for append, matching the
// cursor conventions of the evaluator's chained operations.
func Modify(op Op, dst value.View, src value.Value, part, dup int) (int, error) {
	if dst.Series.Protected() {
		return dst.Index, ErrProtected
	}

	runes, err := sourceRunes(dst.Tag, src)
	if err != nil {
		return dst.Index, err
	}
	if op != Change && part >= 0 && part < len(runes) {
		runes = runes[:part]
	}
	logical := len(runes)
	if dst.Tag != value.KindBinary {
		runes = expandAstral(runes)
	}
	// Validate all content before any storage change.
	for _, r := range runes {
		if r < 0 || r > series.MaxCodepoint {
			return dst.Index, series.ErrCodepointRange
		}
		if dst.Tag == value.KindBinary && r > 0xFF {
			return dst.Index, ErrBinaryWiden
		}
	}

	if dup < 0 {
		dup = 0
	}
	size := dup * len(runes)

	dst = dst.Normalize()
	index := dst.Index
	tail := dst.Tail()
	if op == Append {
		index = tail
	}

	// Change replaces one target element per logical codepoint written; a
	// surrogate pair counts as one.
	removeLen := 0
	if op == Change {
		removeLen = dup * logical
		if part >= 0 {
			removeLen = part
		}
		if removeLen > tail-index {
			removeLen = tail - index
		}
	}

	if removeLen > 0 {
		dst.Series.Remove(index, removeLen)
	}
	if size > 0 {
		if err := dst.Series.OpenHole(index, size); err != nil {
			return index, err
		}
		at := index
		for d := 0; d < dup; d++ {
			for _, r := range runes {
				if err := dst.Series.Set(at, r); err != nil {
					return at, err
				}
				at++
			}
		}
	}

	if op == Append {
		return 0, nil
	}
	return index + size, nil
}

// sourceRunes flattens a source value into the codepoints to write into a
// target of the given kind.
func sourceRunes(dstKind value.Kind, src value.Value) ([]rune, error) {
	if dstKind == value.KindBinary {
		return binarySourceRunes(src)
	}

	switch s := src.(type) {
	case value.View:
		if s.Tag == value.KindBinary {
			// Bytes map to Latin-1 codepoints when entering text.
			return s.Series.Runes(s.Index), nil
		}
		return s.Series.Runes(s.Index), nil
	case value.Char:
		return []rune{rune(s)}, nil
	default:
		return []rune(value.Form(src)), nil
	}
}

func binarySourceRunes(src value.Value) ([]rune, error) {
	switch s := src.(type) {
	case value.View:
		if s.Tag == value.KindBinary {
			return s.Series.Runes(s.Index), nil
		}
		// Text entering a binary is UTF-8 encoded.
		return bytesToRunes([]byte(s.Text())), nil
	case value.Char:
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], rune(s))
		return bytesToRunes(buf[:n]), nil
	case value.Int:
		if s < 0 || s > 0xFF {
			return nil, ErrBinaryWiden
		}
		return []rune{rune(s)}, nil
	default:
		return bytesToRunes([]byte(value.Form(src))), nil
	}
}

// expandAstral rewrites codepoints above the wide element range as UTF-16
// surrogate pairs; text storage holds them as two elements.
func expandAstral(rs []rune) []rune {
	expanded := false
	for _, r := range rs {
		if r > series.MaxCodepoint {
			expanded = true
			break
		}
	}
	if !expanded {
		return rs
	}
	out := make([]rune, 0, len(rs)+1)
	for _, r := range rs {
		if r > series.MaxCodepoint {
			hi, lo := utf16.EncodeRune(r)
			out = append(out, hi, lo)
			continue
		}
		out = append(out, r)
	}
	return out
}

func bytesToRunes(b []byte) []rune {
	rs := make([]rune, len(b))
	for i, c := range b {
		rs[i] = rune(c)
	}
	return rs
}
