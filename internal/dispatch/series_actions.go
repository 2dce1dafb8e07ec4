package dispatch

import (
	"github.com/dshills/strand/internal/runtime/compare"
	"github.com/dshills/strand/internal/runtime/value"
)

// seriesAction handles the navigation, reflection, and comparison verbs that
// behave identically for every series datatype. handled is false when the
// verb belongs to the per-datatype engines instead.
func seriesAction(req *Request, v value.View) (out value.Value, handled bool, err error) {
	switch req.Verb {
	case VerbHead:
		return v.Head(), true, nil
	case VerbTail:
		return v.TailView(), true, nil
	case VerbHeadQ:
		return value.Logic(v.Index == 0), true, nil
	case VerbTailQ:
		return value.Logic(v.AtTail()), true, nil
	case VerbNext:
		return v.At(1), true, nil
	case VerbBack:
		return v.At(-1), true, nil
	case VerbSkip:
		n, err := intArg(req.Arg)
		if err != nil {
			return nil, true, err
		}
		return v.At(n), true, nil
	case VerbAt:
		n, err := intArg(req.Arg)
		if err != nil {
			return nil, true, err
		}
		// Position 1 is the current index; zero and negative positions
		// count backward without the one-based offset.
		if n > 0 {
			n--
		}
		return v.At(n), true, nil
	case VerbIndex:
		return value.Int(v.Index + 1), true, nil
	case VerbLength:
		return value.Int(v.LenAt()), true, nil

	case VerbSame:
		other, err := viewArg(req.Arg)
		if err != nil {
			return nil, true, err
		}
		return value.Logic(compare.Same(v, other)), true, nil
	case VerbEqual:
		other, err := viewArg(req.Arg)
		if err != nil {
			return nil, true, err
		}
		if req.Case {
			return value.Logic(compare.Views(v, other, true) == 0), true, nil
		}
		return value.Logic(compare.Equal(v, other)), true, nil
	case VerbStrictEqual:
		other, err := viewArg(req.Arg)
		if err != nil {
			return nil, true, err
		}
		return value.Logic(compare.StrictEqual(v, other) && v.Tag == other.Tag), true, nil
	}
	return nil, false, nil
}

func intArg(v value.Value) (int, error) {
	n, ok := v.(value.Int)
	if !ok {
		return 0, typeErr("expected an integer argument, got %s", kindOfValue(v))
	}
	return int(n), nil
}

func viewArg(v value.Value) (value.View, error) {
	view, ok := v.(value.View)
	if !ok || !view.Tag.IsSeries() {
		return value.View{}, typeErr("expected a series argument, got %s", kindOfValue(v))
	}
	return view.Normalize(), nil
}
