package value

import (
	"fmt"
	"strings"
)

// Form renders a value as plain text, without datatype decoration. It is the
// fallback serialization used by construction verbs.
func Form(v Value) string {
	switch val := v.(type) {
	case nil:
		return "none"
	case noneValue:
		return "none"
	case Char:
		return string(rune(val))
	case Int:
		return fmt.Sprintf("%d", int64(val))
	case Word:
		return string(val)
	case Logic:
		if val {
			return "true"
		}
		return "false"
	case *Bitset:
		return fmt.Sprintf("#{%X}", val.Bytes())
	case View:
		if val.Tag == KindBinary {
			return fmt.Sprintf("%X", binaryBytes(val))
		}
		return val.Text()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Mold renders a value in source form, with the delimiters of its datatype.
func Mold(v Value) string {
	switch val := v.(type) {
	case nil:
		return "none"
	case noneValue:
		return "none"
	case Char:
		return fmt.Sprintf("#%q", string(rune(val)))
	case Int:
		return fmt.Sprintf("%d", int64(val))
	case Word:
		return string(val)
	case Logic:
		if val {
			return "true"
		}
		return "false"
	case *Bitset:
		return fmt.Sprintf("make bitset! #{%X}", val.Bytes())
	case View:
		return moldView(val)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func moldView(v View) string {
	switch v.Tag {
	case KindFile:
		return "%" + v.Text()
	case KindTag:
		return "<" + v.Text() + ">"
	case KindBinary:
		return fmt.Sprintf("#{%X}", binaryBytes(v))
	case KindURL, KindEmail:
		return v.Text()
	default:
		var b strings.Builder
		b.WriteByte('"')
		for _, r := range v.Text() {
			if r == '"' {
				b.WriteByte('^')
			}
			b.WriteRune(r)
		}
		b.WriteByte('"')
		return b.String()
	}
}

func binaryBytes(v View) []byte {
	raw := v.Series.Bytes()
	if raw == nil {
		return nil
	}
	if v.Index >= len(raw) {
		return nil
	}
	return raw[v.Index:]
}
