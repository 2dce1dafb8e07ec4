package mutate

import "github.com/dshills/strand/internal/runtime/value"

// Remove deletes n elements at the view's index, clipping to the series
// bounds.
func Remove(v value.View, n int) error {
	if v.Series.Protected() {
		return ErrProtected
	}
	v = v.Normalize()
	v.Series.Remove(v.Index, n)
	return nil
}

// Clear truncates the series at the view's index. At index zero the series
// is fully reset.
func Clear(v value.View) error {
	if v.Series.Protected() {
		return ErrProtected
	}
	v = v.Normalize()
	if v.Index >= v.Tail() {
		return nil
	}
	if v.Index == 0 {
		v.Series.Reset()
		return nil
	}
	v.Series.Truncate(v.Index)
	return nil
}

// Take removes elements from the view and returns them.
//
// count below zero means "no explicit count": a single element is removed and
// returned as a Char (or Int for binary views). With an explicit count the
// result is a fresh view of the same kind; a zero count or an out-of-range
// position yields an empty result without mutating. last positions the
// removal at the tail minus the count.
func Take(v value.View, count int, last bool) (value.Value, error) {
	if v.Series.Protected() {
		return value.None, ErrProtected
	}

	v = v.Normalize()
	tail := v.Tail()
	hasCount := count >= 0

	n := 1
	if hasCount {
		n = count
		if n > v.LenAt() {
			n = v.LenAt()
		}
		if n == 0 {
			return emptyLike(v), nil
		}
	}

	index := v.Index
	if last {
		index = tail - n
	}
	if index < 0 || index >= tail {
		if !hasCount {
			return value.None, nil
		}
		return emptyLike(v), nil
	}
	if index+n > tail {
		n = tail - index
	}

	var out value.Value
	if !hasCount {
		if v.Tag == value.KindBinary {
			out = value.Int(v.Series.Get(index))
		} else {
			out = value.Char(v.Series.Get(index))
		}
	} else {
		out = value.View{Series: v.Series.Slice(index, n), Tag: v.Tag}
	}

	v.Series.Remove(index, n)
	return out, nil
}

func emptyLike(v value.View) value.View {
	return value.View{Series: v.Series.Slice(v.Tail(), 0), Tag: v.Tag}
}
