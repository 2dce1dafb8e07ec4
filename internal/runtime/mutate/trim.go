package mutate

import "github.com/dshills/strand/internal/runtime/value"

// TrimOptions select a trim mode. Head/Tail/Lines/Auto are mutually
// exclusive with All/With, and Auto excludes everything else; the dispatcher
// validates combinations before calling.
type TrimOptions struct {
	Head  bool
	Tail  bool
	Auto  bool
	Lines bool
	All   bool
	// With removes every occurrence of its codepoints instead of whitespace.
	With string
}

func isTrimSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// Trim removes whitespace (or the With set) from the view's content in
// place. With no mode selected both the head and the tail are trimmed.
func Trim(v value.View, opts TrimOptions) error {
	if v.Series.Protected() {
		return ErrProtected
	}
	v = v.Normalize()

	switch {
	case opts.All:
		return trimSet(v, isTrimSpace)
	case opts.With != "":
		set := value.BitsetOf(opts.With)
		return trimSet(v, set.Test)
	case opts.Lines:
		return trimLines(v)
	case opts.Auto:
		return trimAuto(v)
	case opts.Head || opts.Tail:
		return trimEnds(v, opts.Head, opts.Tail)
	default:
		return trimEnds(v, true, true)
	}
}

// trimEnds removes leading and/or trailing whitespace.
func trimEnds(v value.View, head, tail bool) error {
	if tail {
		end := v.Tail()
		for end > v.Index && isTrimSpace(v.Series.Get(end-1)) {
			end--
		}
		v.Series.Truncate(end)
	}
	if head {
		n := 0
		for v.Index+n < v.Tail() && isTrimSpace(v.Series.Get(v.Index+n)) {
			n++
		}
		v.Series.Remove(v.Index, n)
	}
	return nil
}

// trimSet removes every codepoint the predicate accepts.
func trimSet(v value.View, drop func(rune) bool) error {
	i := v.Index
	for i < v.Tail() {
		if drop(v.Series.Get(i)) {
			v.Series.Remove(i, 1)
			continue
		}
		i++
	}
	return nil
}

// trimLines collapses whitespace runs to single spaces and trims both ends.
func trimLines(v value.View) error {
	i := v.Index
	for i < v.Tail() {
		if !isTrimSpace(v.Series.Get(i)) {
			i++
			continue
		}
		n := 1
		for i+n < v.Tail() && isTrimSpace(v.Series.Get(i+n)) {
			n++
		}
		if err := v.Series.Set(i, ' '); err != nil {
			return err
		}
		v.Series.Remove(i+1, n-1)
		i++
	}
	return trimEnds(v, true, true)
}

// trimAuto removes the indentation of the first non-empty line from every
// line, then trims leading blank lines and the tail.
func trimAuto(v value.View) error {
	// Measure the reference indent.
	indent := 0
	i := v.Index
	for i < v.Tail() {
		c := v.Series.Get(i)
		if c == '\n' {
			indent = 0
			i++
			continue
		}
		if c == ' ' || c == '\t' {
			indent++
			i++
			continue
		}
		break
	}
	if i >= v.Tail() {
		v.Series.Truncate(v.Index)
		return nil
	}

	// Drop up to indent leading spaces/tabs on every line.
	at := v.Index
	lineStart := true
	for at < v.Tail() {
		c := v.Series.Get(at)
		if lineStart {
			n := 0
			for at+n < v.Tail() && n < indent {
				c2 := v.Series.Get(at + n)
				if c2 != ' ' && c2 != '\t' {
					break
				}
				n++
			}
			v.Series.Remove(at, n)
			lineStart = false
			continue
		}
		if c == '\n' {
			lineStart = true
		}
		at++
	}
	return trimEnds(v, true, true)
}
