package dispatch

import (
	"github.com/dshills/strand/internal/runtime/mutate"
	"github.com/dshills/strand/internal/runtime/search"
	"github.com/dshills/strand/internal/runtime/value"
)

// stringAction handles the verbs whose behavior depends on the string and
// binary engines: picking, searching, modification, ordering, and the
// binary bitwise operators.
func (d *Dispatcher) stringAction(req *Request, v value.View) (value.Value, error) {
	switch req.Verb {
	case VerbPick:
		return pick(req, v)
	case VerbPoke:
		return poke(req, v)
	case VerbFind, VerbSelect:
		return find(req, v)
	case VerbCopy:
		return copySeries(req, v)
	case VerbAppend:
		return modify(req, v, mutate.Append)
	case VerbInsert:
		return modify(req, v, mutate.Insert)
	case VerbChange:
		return modify(req, v, mutate.Change)
	case VerbTake:
		return take(req, v)
	case VerbRemove:
		return remove(req, v)
	case VerbClear:
		if err := wrapEngine(mutate.Clear(v)); err != nil {
			return nil, err
		}
		return v, nil
	case VerbSwap:
		return swap(req, v)
	case VerbReverse:
		return reverse(req, v)
	case VerbSort:
		return sortSeries(req, v)
	case VerbRandom:
		return d.randomOp(req, v)
	case VerbTrim:
		return trim(req, v)
	case VerbUppercase:
		return changeCase(req, v, true)
	case VerbLowercase:
		return changeCase(req, v, false)
	case VerbAnd:
		return bitwise(req, v, mutate.BitAnd)
	case VerbOr:
		return bitwise(req, v, mutate.BitOr)
	case VerbXor:
		return bitwise(req, v, mutate.BitXor)
	case VerbComplement:
		if v.Tag != value.KindBinary {
			return nil, illegalErr(req.Verb, v.Tag)
		}
		return value.View{Series: mutate.Complement(v), Tag: value.KindBinary}, nil
	default:
		return nil, illegalErr(req.Verb, v.Tag)
	}
}

// pickPosition resolves a one-based pick position into an absolute element
// index. ok is false for position zero and for anything out of range.
func pickPosition(v value.View, pos int) (int, bool) {
	if pos == 0 {
		return 0, false
	}
	at := v.Index + pos
	if pos > 0 {
		at--
	}
	if at < 0 || at >= v.Tail() {
		return 0, false
	}
	return at, true
}

func element(v value.View, at int) value.Value {
	if v.Tag == value.KindBinary {
		return value.Int(v.Series.Get(at))
	}
	return value.Char(v.Series.Get(at))
}

func pick(req *Request, v value.View) (value.Value, error) {
	pos, err := intArg(req.Arg)
	if err != nil {
		return nil, err
	}
	at, ok := pickPosition(v, pos)
	if !ok {
		return value.None, nil
	}
	return element(v, at), nil
}

func poke(req *Request, v value.View) (value.Value, error) {
	pos, err := intArg(req.Arg)
	if err != nil {
		return nil, err
	}
	at, ok := pickPosition(v, pos)
	if !ok {
		return nil, rangeErr("poke position %d is out of range", pos)
	}

	var r rune
	switch c := req.Arg2.(type) {
	case value.Char:
		r = rune(c)
	case value.Int:
		r = rune(c)
	default:
		return nil, typeErr("poke replacement must be a char or integer, got %s", kindOfValue(req.Arg2))
	}
	// Binary storage is fixed at byte width; a wide value is out of range.
	if v.Tag == value.KindBinary && (r < 0 || r > 0xFF) {
		return nil, rangeErr("poke value %d does not fit a binary element", r)
	}
	if err := v.Series.Set(at, r); err != nil {
		return nil, rangeErr("poke value %d is not a valid codepoint", r)
	}
	return req.Arg2, nil
}

func find(req *Request, v value.View) (value.Value, error) {
	var flags search.Flags
	if req.Case {
		flags |= search.Case
	}
	if req.Match {
		flags |= search.Match
	}
	if req.Reverse {
		flags |= search.Reverse
	}
	if req.Last {
		flags |= search.Last
	}
	if req.Tail {
		flags |= search.Tail
	}
	// Binary content has no case to fold.
	if v.Tag == value.KindBinary {
		flags |= search.Case
	}

	targetLen := 1
	switch t := req.Arg.(type) {
	case value.View:
		if t.Tag == value.KindBinary {
			flags |= search.Case
		}
		targetLen = t.Normalize().LenAt()
	case value.Char, value.Int, *value.Bitset:
	default:
		return nil, typeErr("cannot search for a %s", kindOfValue(req.Arg))
	}

	end := v.Tail()
	if n, ok, err := req.partLen(v); err != nil {
		return nil, err
	} else if ok {
		end = v.Index + n
	}

	ret := search.Find(v.Series, v.Index, end, req.Arg, targetLen, flags, req.Skip)
	if ret == search.NotFound {
		return value.None, nil
	}

	if req.Verb == VerbFind {
		// Both tail and match report the position past the matched
		// content; only counts the target as one element.
		if req.Tail || req.Match {
			if req.Only {
				ret++
			} else {
				ret += targetLen
			}
		}
		return value.View{Series: v.Series, Index: ret, Tag: v.Tag}.Normalize(), nil
	}

	// select returns the element one past the match start.
	ret++
	if ret >= v.Tail() {
		return value.None, nil
	}
	return element(v, ret), nil
}

func copySeries(req *Request, v value.View) (value.Value, error) {
	n := v.LenAt()
	if part, ok, err := req.partLen(v); err != nil {
		return nil, err
	} else if ok {
		n = part
	}
	return value.View{Series: v.Series.Slice(v.Index, n), Tag: v.Tag}, nil
}

// srcLimit resolves the part refinement against the source operand for
// insert and append, where part caps how much of the source is consumed.
func srcLimit(req *Request, src value.Value) (int, error) {
	if req.Part == nil {
		return -1, nil
	}
	switch p := req.Part.(type) {
	case value.Int:
		n := int(p)
		if n < 0 {
			n = 0
		}
		return n, nil
	case value.View:
		sv, ok := src.(value.View)
		if !ok || sv.Series != p.Series {
			return 0, argErr("part endpoint must reference the inserted series")
		}
		n := p.Index - sv.Index
		if n < 0 {
			n = 0
		}
		return n, nil
	default:
		return 0, argErr("part must be an integer or a position in the inserted series")
	}
}

func modify(req *Request, v value.View, op mutate.Op) (value.Value, error) {
	var part int
	var err error
	if op == mutate.Change {
		part = -1
		if n, ok, perr := req.partLen(v); perr != nil {
			return nil, perr
		} else if ok {
			part = n
		}
	} else {
		part, err = srcLimit(req, req.Arg)
		if err != nil {
			return nil, err
		}
	}

	dup := req.Dup
	if dup == 0 {
		dup = 1
	}

	pos, err := mutate.Modify(op, v, req.Arg, part, dup)
	if err != nil {
		return nil, wrapEngine(err)
	}
	return value.View{Series: v.Series, Index: pos, Tag: v.Tag}, nil
}

func take(req *Request, v value.View) (value.Value, error) {
	count := -1
	if n, ok, err := req.partLen(v); err != nil {
		return nil, err
	} else if ok {
		count = n
	}
	out, err := mutate.Take(v, count, req.Last)
	if err != nil {
		return nil, wrapEngine(err)
	}
	return out, nil
}

func remove(req *Request, v value.View) (value.Value, error) {
	n := 1
	if part, ok, err := req.partLen(v); err != nil {
		return nil, err
	} else if ok {
		n = part
	}
	if err := wrapEngine(mutate.Remove(v, n)); err != nil {
		return nil, err
	}
	return v, nil
}

func swap(req *Request, v value.View) (value.Value, error) {
	other, err := viewArg(req.Arg)
	if err != nil {
		return nil, err
	}
	if other.Tag != v.Tag {
		return nil, typeErr("cannot swap a %s with a %s", v.Tag, other.Tag)
	}
	if other.Series.Protected() {
		return nil, lockedErr()
	}
	if err := wrapEngine(mutate.SwapChars(v, other)); err != nil {
		return nil, err
	}
	return v, nil
}

func reverse(req *Request, v value.View) (value.Value, error) {
	n := v.LenAt()
	if part, ok, err := req.partLen(v); err != nil {
		return nil, err
	} else if ok {
		n = part
	}
	if err := wrapEngine(mutate.Reverse(v, n)); err != nil {
		return nil, err
	}
	return v, nil
}

func sortSeries(req *Request, v value.View) (value.Value, error) {
	opts := mutate.SortOptions{
		CaseSensitive: req.Case,
		Reverse:       req.Reverse,
		Skip:          req.Skip,
		Part:          -1,
		Compare:       req.Compare,
	}
	if part, ok, err := req.partLen(v); err != nil {
		return nil, err
	} else if ok {
		opts.Part = part
	}
	if err := wrapEngine(mutate.Sort(v, opts)); err != nil {
		return nil, err
	}
	return v, nil
}

func (d *Dispatcher) randomOp(req *Request, v value.View) (value.Value, error) {
	if req.Secure {
		d.rng.SetSecure(true)
	}
	if req.Seed {
		mutate.SeedFrom(v, d.rng)
		return v, nil
	}
	if req.OnlyRandom {
		n := v.LenAt()
		if n == 0 {
			return value.None, nil
		}
		return element(v, v.Index+d.rng.Int(n)), nil
	}
	if err := wrapEngine(mutate.Shuffle(v, d.rng)); err != nil {
		return nil, err
	}
	return v, nil
}

func trim(req *Request, v value.View) (value.Value, error) {
	modes := req.TrimHead || req.TrimTail || req.TrimLines || req.TrimAuto
	if (req.TrimAll || req.TrimWith != "") && modes {
		return nil, argErr("trim all/with cannot combine with head, tail, lines, or auto")
	}
	if req.TrimAuto && (req.TrimHead || req.TrimTail || req.TrimLines) {
		return nil, argErr("trim auto cannot combine with other modes")
	}
	err := mutate.Trim(v, mutate.TrimOptions{
		Head:  req.TrimHead,
		Tail:  req.TrimTail,
		Auto:  req.TrimAuto,
		Lines: req.TrimLines,
		All:   req.TrimAll,
		With:  req.TrimWith,
	})
	if err != nil {
		return nil, wrapEngine(err)
	}
	return v, nil
}

func changeCase(req *Request, v value.View, upper bool) (value.Value, error) {
	part := -1
	if n, ok, err := req.partLen(v); err != nil {
		return nil, err
	} else if ok {
		part = n
	}
	if err := wrapEngine(mutate.ChangeCase(v, part, upper)); err != nil {
		return nil, err
	}
	return v, nil
}

func bitwise(req *Request, v value.View, op mutate.BitOp) (value.Value, error) {
	if v.Tag != value.KindBinary {
		return nil, illegalErr(req.Verb, v.Tag)
	}
	other, err := viewArg(req.Arg)
	if err != nil {
		return nil, err
	}
	if other.Tag != value.KindBinary {
		return nil, typeErr("%s requires two binary values, got %s", req.Verb, other.Tag)
	}
	return value.View{Series: mutate.Xandor(op, v, other), Tag: value.KindBinary}, nil
}
