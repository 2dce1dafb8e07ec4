package mutate

import (
	"testing"

	"github.com/dshills/strand/internal/runtime/value"
)

func TestTrimDefaultBothEnds(t *testing.T) {
	v := mustView(t, "  hello  ")

	if err := Trim(v, TrimOptions{}); err != nil {
		t.Fatalf("trim failed: %v", err)
	}
	if v.Series.String() != "hello" {
		t.Errorf("expected %q, got %q", "hello", v.Series.String())
	}
}

func TestTrimHeadOnly(t *testing.T) {
	v := mustView(t, "  hello  ")

	if err := Trim(v, TrimOptions{Head: true}); err != nil {
		t.Fatalf("trim failed: %v", err)
	}
	if v.Series.String() != "hello  " {
		t.Errorf("expected %q, got %q", "hello  ", v.Series.String())
	}
}

func TestTrimTailOnly(t *testing.T) {
	v := mustView(t, "  hello  ")

	if err := Trim(v, TrimOptions{Tail: true}); err != nil {
		t.Fatalf("trim failed: %v", err)
	}
	if v.Series.String() != "  hello" {
		t.Errorf("expected %q, got %q", "  hello", v.Series.String())
	}
}

func TestTrimAll(t *testing.T) {
	v := mustView(t, " a b\tc\nd ")

	if err := Trim(v, TrimOptions{All: true}); err != nil {
		t.Fatalf("trim failed: %v", err)
	}
	if v.Series.String() != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", v.Series.String())
	}
}

func TestTrimWithSet(t *testing.T) {
	v := mustView(t, "a-b-c")

	if err := Trim(v, TrimOptions{With: "-"}); err != nil {
		t.Fatalf("trim failed: %v", err)
	}
	if v.Series.String() != "abc" {
		t.Errorf("expected %q, got %q", "abc", v.Series.String())
	}
}

func TestTrimLinesCollapses(t *testing.T) {
	v := mustView(t, " a\n  b\tc \n")

	if err := Trim(v, TrimOptions{Lines: true}); err != nil {
		t.Fatalf("trim failed: %v", err)
	}
	if v.Series.String() != "a b c" {
		t.Errorf("expected %q, got %q", "a b c", v.Series.String())
	}
}

func TestTrimAutoRemovesCommonIndent(t *testing.T) {
	v := mustView(t, "  line1\n  line2\n    line3\n")

	if err := Trim(v, TrimOptions{Auto: true}); err != nil {
		t.Fatalf("trim failed: %v", err)
	}
	if v.Series.String() != "line1\nline2\n  line3" {
		t.Errorf("got %q", v.Series.String())
	}
}

func TestTrimRespectsIndex(t *testing.T) {
	v := mustView(t, "xx  hi  ").At(2)

	if err := Trim(v, TrimOptions{}); err != nil {
		t.Fatalf("trim failed: %v", err)
	}
	if v.Series.String() != "xxhi" {
		t.Errorf("expected %q, got %q", "xxhi", v.Series.String())
	}
}

func TestTrimProtected(t *testing.T) {
	v := mustView(t, " a ")
	v.Series.Protect()

	if err := Trim(v, TrimOptions{}); err != ErrProtected {
		t.Errorf("expected ErrProtected, got %v", err)
	}
}

func TestChangeCaseUpper(t *testing.T) {
	v := mustView(t, "Hello")

	if err := ChangeCase(v, -1, true); err != nil {
		t.Fatalf("uppercase failed: %v", err)
	}
	if v.Series.String() != "HELLO" {
		t.Errorf("expected %q, got %q", "HELLO", v.Series.String())
	}
}

func TestChangeCaseLowerPart(t *testing.T) {
	v := mustView(t, "HELLO")

	if err := ChangeCase(v, 3, false); err != nil {
		t.Fatalf("lowercase failed: %v", err)
	}
	if v.Series.String() != "helLO" {
		t.Errorf("expected %q, got %q", "helLO", v.Series.String())
	}
}

func TestChangeCaseProtected(t *testing.T) {
	v := mustView(t, "abc")
	v.Series.Protect()

	if err := ChangeCase(v, -1, true); err != ErrProtected {
		t.Errorf("expected ErrProtected, got %v", err)
	}
}

func TestXandor(t *testing.T) {
	a := value.BinaryView([]byte{0xF0, 0x0F, 0xAA})
	b := value.BinaryView([]byte{0xFF, 0xFF})

	and := Xandor(BitAnd, a, b)
	if got := and.Bytes(); got[0] != 0xF0 || got[1] != 0x0F || got[2] != 0x00 {
		t.Errorf("and: got % X", got)
	}

	or := Xandor(BitOr, a, b)
	if got := or.Bytes(); got[0] != 0xFF || got[1] != 0xFF || got[2] != 0xAA {
		t.Errorf("or: got % X", got)
	}

	xor := Xandor(BitXor, a, b)
	if got := xor.Bytes(); got[0] != 0x0F || got[1] != 0xF0 || got[2] != 0xAA {
		t.Errorf("xor: got % X", got)
	}
}

func TestComplement(t *testing.T) {
	v := value.BinaryView([]byte{0x00, 0xFF, 0xA5})

	out := Complement(v)
	if got := out.Bytes(); got[0] != 0xFF || got[1] != 0x00 || got[2] != 0x5A {
		t.Errorf("got % X", got)
	}
	if v.Series.Bytes()[0] != 0x00 {
		t.Error("complement must not mutate its input")
	}
}

func TestSplitLines(t *testing.T) {
	v := mustView(t, "one\ntwo\r\nthree")

	lines := SplitLines(v)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	want := []string{"one", "two", "three"}
	for i, w := range want {
		if lines[i].Series.String() != w {
			t.Errorf("line %d: expected %q, got %q", i, w, lines[i].Series.String())
		}
	}
}
