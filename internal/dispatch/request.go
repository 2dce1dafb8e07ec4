package dispatch

import (
	"github.com/dshills/strand/internal/runtime/mutate"
	"github.com/dshills/strand/internal/runtime/value"
)

// Request carries one verb invocation: the verb, its operands, and the
// decoded refinement flags. Requests are built fresh per call and never
// persisted.
type Request struct {
	Verb Verb

	// Value is the primary operand (the target of the verb).
	Value value.Value
	// Arg is the secondary operand where the verb takes one (find target,
	// inserted content, pick position, swap partner, make source, ...).
	Arg value.Value
	// Arg2 is the third operand (poke's replacement value).
	Arg2 value.Value

	// Part limits the operation length when non-nil: an Int element count
	// or a View into the same series marking the endpoint.
	Part value.Value
	// Dup repeats inserted content. Zero means the refinement is absent
	// (a single insertion).
	Dup int

	// Case makes comparison/search case-sensitive.
	Case bool
	// Last searches from the tail, or takes from the tail.
	Last bool
	// Reverse searches backward, or inverts sort order.
	Reverse bool
	// Tail returns the position past the match instead of the match start.
	Tail bool
	// Match anchors find at the starting position.
	Match bool
	// Only treats the found target as a single element for tail adjustment.
	Only bool
	// Skip is the record stride for find and sort. Zero means absent.
	Skip int

	// Seed reseeds the random generator from the target's content.
	Seed bool
	// Secure draws randomness from the system entropy pool.
	Secure bool
	// OnlyRandom picks one random element instead of shuffling.
	OnlyRandom bool

	// Trim mode refinements.
	TrimHead  bool
	TrimTail  bool
	TrimAuto  bool
	TrimLines bool
	TrimAll   bool
	TrimWith  string

	// Compare substitutes the sort comparison when non-nil.
	Compare mutate.Comparator

	// MakeKind is the target datatype for make and to.
	MakeKind value.Kind
}

// partLen resolves the Part refinement into an element count relative to v's
// index, clamped to [0, remaining length]. Returns (n, true) when present.
func (r *Request) partLen(v value.View) (int, bool, error) {
	if r.Part == nil {
		return 0, false, nil
	}
	switch p := r.Part.(type) {
	case value.Int:
		n := int(p)
		if n < 0 {
			n = 0
		}
		if max := v.LenAt(); n > max {
			n = max
		}
		return n, true, nil
	case value.View:
		if p.Series != v.Series {
			return 0, false, argErr("part endpoint must reference the same series")
		}
		n := p.Index - v.Index
		if n < 0 {
			n = 0
		}
		if max := v.LenAt(); n > max {
			n = max
		}
		return n, true, nil
	default:
		return 0, false, argErr("part must be an integer or a position in the same series")
	}
}
