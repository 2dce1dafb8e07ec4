package dispatch

import (
	"github.com/dshills/strand/internal/runtime/value"
)

// PathResult classifies the outcome of a path navigation step.
type PathResult uint8

const (
	// PathOK means a write step accepted its value.
	PathOK PathResult = iota
	// PathUse means a read step produced a value for the navigator to use.
	PathUse
	// PathNone means the step selected nothing; the evaluator substitutes
	// the none value.
	PathNone
	// PathBadRange means a set step addressed a position outside the series.
	PathBadRange
	// PathBadSelect means the selector datatype cannot address this series.
	PathBadSelect
	// PathBadSet means the stored value cannot be placed at the selection.
	PathBadSet
)

// String returns the outcome name.
func (r PathResult) String() string {
	switch r {
	case PathOK:
		return "ok"
	case PathUse:
		return "use"
	case PathNone:
		return "none"
	case PathBadRange:
		return "bad-range"
	case PathBadSelect:
		return "bad-select"
	case PathBadSet:
		return "bad-set"
	default:
		return "unknown"
	}
}

// SelectPath evaluates a read path step: series/selector. Integer selectors
// address elements one-based from the view's index. Selecting past the tail
// or with position zero yields PathNone, never an error.
func SelectPath(v value.View, selector value.Value) (value.Value, PathResult) {
	if !v.Tag.IsSeries() {
		return value.None, PathBadSelect
	}
	v = v.Normalize()

	n, ok := selector.(value.Int)
	if !ok {
		return value.None, PathBadSelect
	}
	at, ok := pickPosition(v, int(n))
	if !ok {
		return value.None, PathNone
	}
	return element(v, at), PathUse
}

// SetPath evaluates a write path step: series/selector: newval. Unlike
// SelectPath, addressing outside the series is an error, as is a value the
// series cannot hold.
func SetPath(v value.View, selector, newval value.Value) PathResult {
	if !v.Tag.IsSeries() {
		return PathBadSelect
	}
	v = v.Normalize()
	if v.Series.Protected() {
		return PathBadSet
	}

	n, ok := selector.(value.Int)
	if !ok {
		return PathBadSelect
	}
	at, ok := pickPosition(v, int(n))
	if !ok {
		return PathBadRange
	}

	var r rune
	switch c := newval.(type) {
	case value.Char:
		r = rune(c)
	case value.Int:
		r = rune(c)
	default:
		return PathBadSet
	}
	if v.Tag == value.KindBinary && (r < 0 || r > 0xFF) {
		return PathBadSet
	}
	if err := v.Series.Set(at, r); err != nil {
		return PathBadSet
	}
	return PathOK
}

// FilePath evaluates a path step on a file value: %dir/name. The selector is
// formed as text and appended after a separating slash; a doubled slash at
// the join is collapsed.
func FilePath(v value.View, selector value.Value) (value.View, PathResult) {
	if v.Tag != value.KindFile {
		return value.View{}, PathBadSelect
	}
	v = v.Normalize()

	part := value.Form(selector)
	base := v.Text()
	if len(base) > 0 && base[len(base)-1] == '/' {
		if len(part) > 0 && part[0] == '/' {
			part = part[1:]
		}
	} else {
		if len(part) == 0 || part[0] != '/' {
			part = "/" + part
		}
	}

	out, err := value.StringView(base + part)
	if err != nil {
		return value.View{}, PathBadSet
	}
	out.Tag = value.KindFile
	return out, PathUse
}
