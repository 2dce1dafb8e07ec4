package value

import "testing"

func TestViewAliasesSeries(t *testing.T) {
	v, err := StringView("hello")
	if err != nil {
		t.Fatalf("StringView failed: %v", err)
	}

	alias := v.At(2)
	if alias.Series != v.Series {
		t.Error("At must alias the same series")
	}
	if alias.Index != 2 {
		t.Errorf("expected index 2, got %d", alias.Index)
	}
	if alias.Text() != "llo" {
		t.Errorf("expected %q, got %q", "llo", alias.Text())
	}
}

func TestNormalizeClampsIndex(t *testing.T) {
	v, _ := StringView("abc")

	v.Index = -5
	if got := v.Normalize().Index; got != 0 {
		t.Errorf("expected 0, got %d", got)
	}

	v.Index = 99
	if got := v.Normalize().Index; got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestLenAt(t *testing.T) {
	v, _ := StringView("abcde")

	if v.LenAt() != 5 {
		t.Errorf("expected 5, got %d", v.LenAt())
	}
	if v.At(3).LenAt() != 2 {
		t.Errorf("expected 2, got %d", v.At(3).LenAt())
	}
	if !v.TailView().AtTail() {
		t.Error("TailView should be at tail")
	}
}

func TestKindPredicates(t *testing.T) {
	for _, k := range []Kind{KindString, KindFile, KindURL, KindEmail, KindTag} {
		if !k.IsAnyString() {
			t.Errorf("%v should be any-string", k)
		}
		if !k.IsSeries() {
			t.Errorf("%v should be series", k)
		}
	}
	if KindBinary.IsAnyString() {
		t.Error("binary is not any-string")
	}
	if !KindBinary.IsSeries() {
		t.Error("binary is series")
	}
	if KindChar.IsSeries() {
		t.Error("char is not series")
	}
}

func TestBitsetMembership(t *testing.T) {
	bs := BitsetOf("abc")

	for _, r := range "abc" {
		if !bs.Test(r) {
			t.Errorf("expected %q in set", r)
		}
	}
	if bs.Test('d') {
		t.Error("d should not be in set")
	}

	bs.Negate()
	if bs.Test('a') {
		t.Error("negated set should exclude a")
	}
	if !bs.Test('d') {
		t.Error("negated set should include d")
	}
}

func TestBitsetGrows(t *testing.T) {
	bs := NewBitset(8)
	bs.Set('☃')
	if !bs.Test('☃') {
		t.Error("expected snowman after grow")
	}
}

func TestMoldDelimiters(t *testing.T) {
	str, _ := StringView("abc")
	file := View{Series: str.Series, Tag: KindFile}
	tag := View{Series: str.Series, Tag: KindTag}
	bin := BinaryView([]byte{0xDE, 0xAD})

	if got := Mold(str); got != `"abc"` {
		t.Errorf("string mold: got %q", got)
	}
	if got := Mold(file); got != "%abc" {
		t.Errorf("file mold: got %q", got)
	}
	if got := Mold(tag); got != "<abc>" {
		t.Errorf("tag mold: got %q", got)
	}
	if got := Mold(bin); got != "#{DEAD}" {
		t.Errorf("binary mold: got %q", got)
	}
	if got := Mold(None); got != "none" {
		t.Errorf("none mold: got %q", got)
	}
}

func TestFormIsUndecorated(t *testing.T) {
	str, _ := StringView("abc")
	if got := Form(str); got != "abc" {
		t.Errorf("expected %q, got %q", "abc", got)
	}
	if got := Form(Char('A')); got != "A" {
		t.Errorf("expected %q, got %q", "A", got)
	}
	if got := Form(Int(42)); got != "42" {
		t.Errorf("expected %q, got %q", "42", got)
	}
	if got := Form(Word("print")); got != "print" {
		t.Errorf("expected %q, got %q", "print", got)
	}
}
