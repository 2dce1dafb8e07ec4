package compare

import "unicode"

// CaseLimit is the exclusive upper bound of the case-folding table. Codepoints
// at or above the limit are their own upcase and lowcase forms.
const CaseLimit = 0x2E00

// UpCase returns the uppercase form of r for codepoints below CaseLimit,
// identity otherwise.
func UpCase(r rune) rune {
	if r < CaseLimit {
		return unicode.ToUpper(r)
	}
	return r
}

// LoCase returns the lowercase form of r for codepoints below CaseLimit,
// identity otherwise.
func LoCase(r rune) rune {
	if r < CaseLimit {
		return unicode.ToLower(r)
	}
	return r
}
