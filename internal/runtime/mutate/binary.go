package mutate

import (
	"github.com/dshills/strand/internal/runtime/series"
	"github.com/dshills/strand/internal/runtime/value"
)

// BitOp selects a binary bitwise operation.
type BitOp uint8

const (
	// BitAnd intersects; the residual past the shorter input is zeroed.
	BitAnd BitOp = iota
	// BitOr unions; the residual is copied from the longer input.
	BitOr
	// BitXor differences; the residual is copied from the longer input.
	BitXor
)

// Xandor combines two binary views bytewise. The result is a fresh series
// sized to the longer input.
func Xandor(op BitOp, a, b value.View) *series.Series {
	a = a.Normalize()
	b = b.Normalize()

	p0 := a.Series.Bytes()[a.Index:]
	p1 := b.Series.Bytes()[b.Index:]

	short, long := len(p0), len(p1)
	if short > long {
		short, long = long, short
	}

	out := make([]byte, long)
	switch op {
	case BitAnd:
		for i := 0; i < short; i++ {
			out[i] = p0[i] & p1[i]
		}
		// Residual stays zero.
	case BitOr:
		for i := 0; i < short; i++ {
			out[i] = p0[i] | p1[i]
		}
		copyResidual(out, p0, p1, short)
	case BitXor:
		for i := 0; i < short; i++ {
			out[i] = p0[i] ^ p1[i]
		}
		copyResidual(out, p0, p1, short)
	}
	return series.FromBytes(out)
}

func copyResidual(out, p0, p1 []byte, from int) {
	if len(p0) > len(p1) {
		copy(out[from:], p0[from:])
	} else {
		copy(out[from:], p1[from:])
	}
}

// Complement returns a fresh series holding the bitwise complement of a
// binary view's content.
func Complement(v value.View) *series.Series {
	v = v.Normalize()
	src := v.Series.Bytes()[v.Index:]
	out := make([]byte, len(src))
	for i, b := range src {
		out[i] = ^b
	}
	return series.FromBytes(out)
}
