package mutate

import (
	"sort"

	"github.com/dshills/strand/internal/runtime/compare"
	"github.com/dshills/strand/internal/runtime/random"
	"github.com/dshills/strand/internal/runtime/value"
)

// Reverse swaps element pairs in place over the first n elements from the
// view's index, operating on raw storage at native width. n below zero means
// the full remaining length.
func Reverse(v value.View, n int) error {
	if v.Series.Protected() {
		return ErrProtected
	}
	v = v.Normalize()
	if n < 0 || n > v.LenAt() {
		n = v.LenAt()
	}
	if n < 2 {
		return nil
	}

	if b := v.Series.Bytes(); b != nil {
		b = b[v.Index : v.Index+n]
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			b[i], b[j] = b[j], b[i]
		}
		return nil
	}
	w := v.Series.WideElems()[v.Index : v.Index+n]
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		w[i], w[j] = w[j], w[i]
	}
	return nil
}

// SwapChars exchanges the single codepoints at two views' positions. The
// views may belong to different series; whichever side receives a codepoint
// it cannot hold at byte width is widened, except binary series, which
// refuse. Either view at its tail makes the swap a no-op.
func SwapChars(a, b value.View) error {
	if a.Series.Protected() || b.Series.Protected() {
		return ErrProtected
	}
	a = a.Normalize()
	b = b.Normalize()
	if a.AtTail() || b.AtTail() {
		return nil
	}

	c1 := a.First()
	c2 := b.First()
	if a.Tag == value.KindBinary && c2 > 0xFF {
		return ErrBinaryWiden
	}
	if b.Tag == value.KindBinary && c1 > 0xFF {
		return ErrBinaryWiden
	}

	if err := a.Series.Set(a.Index, c2); err != nil {
		return err
	}
	return b.Series.Set(b.Index, c1)
}

// Comparator substitutes the built-in sort comparison. It receives the first
// codepoint of each record and returns a negative, zero, or positive result.
type Comparator func(a, b rune) int

// SortOptions configure Sort.
type SortOptions struct {
	// CaseSensitive compares codepoints without folding.
	CaseSensitive bool
	// Reverse inverts the ordering.
	Reverse bool
	// Skip treats the content as records of Skip elements each. Zero means
	// single-element records.
	Skip int
	// Part limits how many elements are sorted; negative means all from the
	// view's index.
	Part int
	// Compare, when non-nil, replaces the built-in comparison entirely.
	Compare Comparator
}

// Sort orders records of the view's content in place. Records are Skip
// elements wide and are ordered by their first element only; the remaining
// elements travel with their record. The sort is stable.
func Sort(v value.View, opts SortOptions) error {
	if v.Series.Protected() {
		return ErrProtected
	}
	v = v.Normalize()

	length := v.LenAt()
	if opts.Part >= 0 && opts.Part < length {
		length = opts.Part
	}
	if length <= 1 {
		return nil
	}

	skip := 1
	if opts.Skip != 0 {
		skip = opts.Skip
		if skip <= 0 || skip > length || length%skip != 0 {
			return ErrInvalidSkip
		}
	}

	records := length / skip
	recs := make([][]rune, records)
	for i := 0; i < records; i++ {
		at := v.Index + i*skip
		rec := make([]rune, skip)
		for j := 0; j < skip; j++ {
			rec[j] = v.Series.Get(at + j)
		}
		recs[i] = rec
	}

	cmp := opts.Compare
	if cmp == nil {
		cmp = func(a, b rune) int {
			if !opts.CaseSensitive {
				a = compare.UpCase(a)
				b = compare.UpCase(b)
			}
			return int(a) - int(b)
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		n := cmp(recs[i][0], recs[j][0])
		if opts.Reverse {
			return n > 0
		}
		return n < 0
	})

	at := v.Index
	for _, rec := range recs {
		for _, r := range rec {
			if err := v.Series.Set(at, r); err != nil {
				return err
			}
			at++
		}
	}
	return nil
}

// Shuffle permutes the elements from the view's index to the tail in place
// using draws from rng.
func Shuffle(v value.View, rng *random.Source) error {
	if v.Series.Protected() {
		return ErrProtected
	}
	v = v.Normalize()

	idx := v.Index
	for n := v.LenAt(); n > 1; {
		k := idx + rng.Int(n)
		n--
		a := v.Series.Get(k)
		b := v.Series.Get(n + idx)
		if err := v.Series.Set(k, b); err != nil {
			return err
		}
		if err := v.Series.Set(n+idx, a); err != nil {
			return err
		}
	}
	return nil
}

// SeedFrom reseeds rng from a checksum of the view's content. Wide series
// contribute their full byte range (length times width bytes).
func SeedFrom(v value.View, rng *random.Source) {
	v = v.Normalize()
	raw := v.Series.RawBytes()
	at := v.Index * int(v.Series.Width())
	if at > len(raw) {
		at = len(raw)
	}
	rng.Seed(random.Checksum(raw[at:]))
}
