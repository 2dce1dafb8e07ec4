package mutate

import "github.com/dshills/strand/internal/runtime/value"

// SplitLines splits the view's content on CR, LF, or CR-LF into fresh
// string views. A trailing unterminated segment is kept.
func SplitLines(v value.View) []value.View {
	v = v.Normalize()

	var out []value.View
	start := v.Index
	i := v.Index
	tail := v.Tail()

	for i < tail {
		c := v.Series.Get(i)
		if c != '\n' && c != '\r' {
			i++
			continue
		}
		out = append(out, value.View{
			Series: v.Series.Slice(start, i-start),
			Tag:    value.KindString,
		})
		i++
		if c == '\r' && i < tail && v.Series.Get(i) == '\n' {
			i++
		}
		start = i
	}
	if i > start {
		out = append(out, value.View{
			Series: v.Series.Slice(start, i-start),
			Tag:    value.KindString,
		})
	}
	return out
}
