package dispatch

import (
	"encoding/binary"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/dshills/strand/internal/runtime/series"
	"github.com/dshills/strand/internal/runtime/value"
)

// construct handles make and to. The target datatype comes from
// req.MakeKind; the source value from req.Arg.
func (d *Dispatcher) construct(req *Request) (value.Value, error) {
	kind := req.MakeKind
	switch {
	case kind.IsAnyString():
		return makeString(req.Verb, kind, req.Arg)
	case kind == value.KindBinary:
		return makeBinary(req.Verb, req.Arg)
	default:
		return nil, typeErr("cannot %s a %s from a %s", req.Verb, kind, kindOfValue(req.Arg))
	}
}

func makeString(verb Verb, kind value.Kind, src value.Value) (value.Value, error) {
	switch s := src.(type) {
	case value.Int:
		// make string! 100 reserves capacity; to string! 100 renders it.
		if verb == VerbMake {
			n := int(s)
			if n < 0 {
				n = 0
			}
			return value.View{Series: series.New(series.Byte, n), Tag: kind}, nil
		}
		return freshText(kind, value.Form(s))
	case value.Char:
		return freshText(kind, string(rune(s)))
	case value.Word:
		return freshText(kind, string(s))
	case value.View:
		s = s.Normalize()
		if s.Tag == value.KindBinary {
			return decodeBinary(kind, s)
		}
		if s.Tag.IsAnyString() {
			return value.View{Series: s.Series.Slice(s.Index, s.LenAt()), Tag: kind}, nil
		}
		return nil, typeErr("cannot %s a %s from a %s", verb, kind, s.Tag)
	default:
		return freshText(kind, value.Form(src))
	}
}

func freshText(kind value.Kind, str string) (value.Value, error) {
	s, err := series.FromString(str)
	if err != nil {
		return nil, &Error{Kind: KindRange, Err: err}
	}
	return value.View{Series: s, Tag: kind}, nil
}

// decodeBinary converts raw bytes to text. A leading byte order mark selects
// the encoding and is dropped; otherwise the bytes must be valid UTF-8.
func decodeBinary(kind value.Kind, src value.View) (value.Value, error) {
	raw := src.Series.Bytes()
	if src.Index < len(raw) {
		raw = raw[src.Index:]
	} else {
		raw = nil
	}

	// The decoder substitutes replacement characters instead of failing, so
	// BOM-less content is validated up front.
	if !hasBOM(raw) && !utf8.Valid(raw) {
		return nil, typeErr("binary content is not valid UTF-8")
	}

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return nil, typeErr("binary content is not valid text: %v", err)
	}
	return freshText(kind, string(out))
}

func hasBOM(b []byte) bool {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return true
	}
	if len(b) >= 2 && ((b[0] == 0xFF && b[1] == 0xFE) || (b[0] == 0xFE && b[1] == 0xFF)) {
		return true
	}
	return false
}

func makeBinary(verb Verb, src value.Value) (value.Value, error) {
	switch s := src.(type) {
	case value.Int:
		if verb == VerbMake {
			n := int(s)
			if n < 0 {
				n = 0
			}
			return value.View{Series: series.New(series.Byte, n), Tag: value.KindBinary}, nil
		}
		// to binary! renders the integer as eight big-endian bytes.
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], uint64(s))
		return value.BinaryView(buf[:]), nil
	case value.Char:
		return value.BinaryView([]byte(string(rune(s)))), nil
	case value.View:
		s = s.Normalize()
		if s.Tag == value.KindBinary {
			return value.View{Series: s.Series.Slice(s.Index, s.LenAt()), Tag: value.KindBinary}, nil
		}
		if s.Tag.IsAnyString() {
			return value.BinaryView([]byte(s.Text())), nil
		}
		return nil, typeErr("cannot %s a binary from a %s", verb, s.Tag)
	default:
		return value.BinaryView([]byte(value.Form(src))), nil
	}
}
