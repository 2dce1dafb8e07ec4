// Package compare implements ordering and equality over series views.
//
// Comparison is by codepoint value, locale-free, and independent of storage
// width: a byte-wide and a wide series with the same logical content compare
// equal. Case-insensitive comparison upcases codepoints below CaseLimit; past
// the limit codepoints compare as-is.
package compare
