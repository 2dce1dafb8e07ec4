package compare

import "github.com/dshills/strand/internal/runtime/value"

// Views compares the content of two views from their current indexes to
// their tails, returning a negative, zero, or positive result. Widths may
// differ; comparison is by codepoint value. When caseSensitive is false both
// codepoints are upcased (below CaseLimit) before subtracting.
func Views(a, b value.View, caseSensitive bool) int {
	la := a.LenAt()
	lb := b.LenAt()
	n := la
	if lb < n {
		n = lb
	}

	for i := 0; i < n; i++ {
		c1 := a.Series.Get(a.Index + i)
		c2 := b.Series.Get(b.Index + i)
		if c1 == c2 {
			continue
		}
		if !caseSensitive {
			c1 = UpCase(c1)
			c2 = UpCase(c2)
		}
		if c1 != c2 {
			return int(c1) - int(c2)
		}
	}

	return la - lb
}

// Same reports strict identity: both views reference the same series at the
// same index.
func Same(a, b value.View) bool {
	return a.Series == b.Series && a.Index == b.Index
}

// Equal reports ordinary equality: content equal, case-insensitive.
func Equal(a, b value.View) bool {
	return Views(a, b, false) == 0
}

// StrictEqual reports case-sensitive content equality.
func StrictEqual(a, b value.View) bool {
	return Views(a, b, true) == 0
}
