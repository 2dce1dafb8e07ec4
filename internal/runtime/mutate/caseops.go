package mutate

import (
	"github.com/dshills/strand/internal/runtime/compare"
	"github.com/dshills/strand/internal/runtime/value"
)

// ChangeCase upcases or lowcases the first part elements from the view's
// index in place. part below zero converts to the tail. Codepoints at or
// above the case-folding limit pass through unchanged.
func ChangeCase(v value.View, part int, upper bool) error {
	if v.Series.Protected() {
		return ErrProtected
	}
	v = v.Normalize()

	n := v.LenAt()
	if part >= 0 && part < n {
		n = part
	}

	for i := v.Index; i < v.Index+n; i++ {
		c := v.Series.Get(i)
		var folded rune
		if upper {
			folded = compare.UpCase(c)
		} else {
			folded = compare.LoCase(c)
		}
		if folded == c {
			continue
		}
		if v.Tag == value.KindBinary && folded > 0xFF {
			continue
		}
		if err := v.Series.Set(i, folded); err != nil {
			return err
		}
	}
	return nil
}
