package value

import (
	"fmt"

	"github.com/dshills/strand/internal/runtime/series"
)

// Value is the operand and result currency of the dispatcher.
type Value interface {
	// Kind returns the datatype tag of the value.
	Kind() Kind
}

// None is the none sentinel value.
var None Value = noneValue{}

type noneValue struct{}

// Kind implements Value.
func (noneValue) Kind() Kind { return KindNone }

// IsNone reports whether v is the none sentinel (or nil).
func IsNone(v Value) bool {
	return v == nil || v.Kind() == KindNone
}

// Char is a single codepoint value.
type Char rune

// Kind implements Value.
func (Char) Kind() Kind { return KindChar }

// Int is an integer value.
type Int int64

// Kind implements Value.
func (Int) Kind() Kind { return KindInt }

// Word is a named token, used by construction verbs.
type Word string

// Kind implements Value.
func (Word) Kind() Kind { return KindWord }

// Logic is a boolean value, produced by the predicate verbs.
type Logic bool

// Kind implements Value.
func (Logic) Kind() Kind { return KindLogic }

// View is a cursor into shared series storage tagged with a datatype.
// Views are copied by value; the series is shared by reference.
type View struct {
	Series *series.Series
	Index  int
	Tag    Kind
}

// NewView creates a view over s at index 0 with the given series kind.
func NewView(s *series.Series, tag Kind) View {
	return View{Series: s, Tag: tag}
}

// StringView creates a string-kinded view over fresh storage holding str.
func StringView(str string) (View, error) {
	s, err := series.FromString(str)
	if err != nil {
		return View{}, err
	}
	return NewView(s, KindString), nil
}

// BinaryView creates a binary-kinded view over fresh storage holding a copy
// of b.
func BinaryView(b []byte) View {
	return NewView(series.FromBytes(b), KindBinary)
}

// Kind implements Value.
func (v View) Kind() Kind { return v.Tag }

// Tail returns the series length (the position one past the last element).
func (v View) Tail() int {
	return v.Series.Len()
}

// LenAt returns the number of elements from the view's index to the tail.
func (v View) LenAt() int {
	n := v.Series.Len() - v.Index
	if n < 0 {
		return 0
	}
	return n
}

// AtTail reports whether the index is at or past the series tail.
func (v View) AtTail() bool {
	return v.Index >= v.Series.Len()
}

// Normalize returns a copy of the view with the index clamped to
// [0, series length].
func (v View) Normalize() View {
	if v.Index < 0 {
		v.Index = 0
	}
	if n := v.Series.Len(); v.Index > n {
		v.Index = n
	}
	return v
}

// At returns a copy of the view with the index moved by offset elements,
// clamped to the series bounds.
func (v View) At(offset int) View {
	v.Index += offset
	return v.Normalize()
}

// Head returns a copy of the view positioned at the series head.
func (v View) Head() View {
	v.Index = 0
	return v
}

// TailView returns a copy of the view positioned at the series tail.
func (v View) TailView() View {
	v.Index = v.Series.Len()
	return v
}

// First returns the codepoint at the view's index.
// The caller must ensure the view is not at the tail.
func (v View) First() rune {
	return v.Series.Get(v.Index)
}

// Text returns the content from the view's index to the tail as a string.
func (v View) Text() string {
	return string(v.Series.Runes(v.Index))
}

// String implements fmt.Stringer for diagnostics.
func (v View) String() string {
	return fmt.Sprintf("%s[%d/%d]", v.Tag, v.Index, v.Series.Len())
}
