package dispatch

import (
	"testing"

	"github.com/dshills/strand/internal/runtime/random"
	"github.com/dshills/strand/internal/runtime/value"
)

func strView(t *testing.T, s string) value.View {
	t.Helper()
	v, err := value.StringView(s)
	if err != nil {
		t.Fatalf("building view for %q: %v", s, err)
	}
	return v
}

func dispatchOK(t *testing.T, d *Dispatcher, req *Request) value.Value {
	t.Helper()
	out, err := d.Dispatch(req)
	if err != nil {
		t.Fatalf("%s failed: %v", req.Verb, err)
	}
	return out
}

func asView(t *testing.T, v value.Value) value.View {
	t.Helper()
	view, ok := v.(value.View)
	if !ok {
		t.Fatalf("expected a view result, got %T", v)
	}
	return view
}

func TestFindReturnsPositionOfMatch(t *testing.T) {
	d := New()
	hay := strView(t, "Hello World")

	out := dispatchOK(t, d, &Request{Verb: VerbFind, Value: hay, Arg: strView(t, "lo")})
	if got := asView(t, out); got.Index != 3 {
		t.Errorf("expected match at index 3, got %d", got.Index)
	}
}

func TestFindFoldsCaseByDefault(t *testing.T) {
	d := New()
	hay := strView(t, "Hello World")

	out := dispatchOK(t, d, &Request{Verb: VerbFind, Value: hay, Arg: strView(t, "LO")})
	if got := asView(t, out); got.Index != 3 {
		t.Errorf("expected case-folded match at index 3, got %d", got.Index)
	}

	out = dispatchOK(t, d, &Request{Verb: VerbFind, Value: hay, Arg: strView(t, "LO"), Case: true})
	if !value.IsNone(out) {
		t.Errorf("expected none for case-sensitive miss, got %v", out)
	}
}

func TestFindTailReturnsPositionPastMatch(t *testing.T) {
	d := New()
	hay := strView(t, "Hello World")

	out := dispatchOK(t, d, &Request{Verb: VerbFind, Value: hay, Arg: strView(t, "lo"), Tail: true})
	if got := asView(t, out); got.Index != 5 {
		t.Errorf("expected tail position 5, got %d", got.Index)
	}
}

func TestFindLastScansFromTail(t *testing.T) {
	d := New()
	hay := strView(t, "abcabc")

	out := dispatchOK(t, d, &Request{Verb: VerbFind, Value: hay, Arg: strView(t, "ab"), Last: true})
	if got := asView(t, out); got.Index != 3 {
		t.Errorf("expected last match at index 3, got %d", got.Index)
	}
}

func TestFindMatchAnchors(t *testing.T) {
	d := New()
	hay := strView(t, "xab")

	out := dispatchOK(t, d, &Request{Verb: VerbFind, Value: hay, Arg: strView(t, "ab"), Match: true})
	if !value.IsNone(out) {
		t.Errorf("expected none for anchored miss, got %v", out)
	}

	// An anchored hit reports the position past the matched content.
	out = dispatchOK(t, d, &Request{Verb: VerbFind, Value: hay.At(1), Arg: strView(t, "ab"), Match: true})
	if got := asView(t, out); got.Index != 3 {
		t.Errorf("expected position 3 past the anchored match, got %d", got.Index)
	}
}

func TestFindMatchAdvancesPastMatch(t *testing.T) {
	d := New()
	hay := strView(t, "hello")

	out := dispatchOK(t, d, &Request{Verb: VerbFind, Value: hay, Arg: strView(t, "he"), Match: true})
	if got := asView(t, out); got.Index != 2 {
		t.Errorf("expected position 2 past the match, got %d", got.Index)
	}

	out = dispatchOK(t, d, &Request{Verb: VerbFind, Value: hay, Arg: strView(t, "he"), Match: true, Only: true})
	if got := asView(t, out); got.Index != 1 {
		t.Errorf("expected position 1 with only, got %d", got.Index)
	}
}

func TestFindChar(t *testing.T) {
	d := New()
	hay := strView(t, "hello")

	out := dispatchOK(t, d, &Request{Verb: VerbFind, Value: hay, Arg: value.Char('l')})
	if got := asView(t, out); got.Index != 2 {
		t.Errorf("expected char match at index 2, got %d", got.Index)
	}
}

func TestFindBitset(t *testing.T) {
	d := New()
	hay := strView(t, "hello world")

	out := dispatchOK(t, d, &Request{Verb: VerbFind, Value: hay, Arg: value.BitsetOf(" \t")})
	if got := asView(t, out); got.Index != 5 {
		t.Errorf("expected bitset match at index 5, got %d", got.Index)
	}
}

func TestSelectReturnsElementPastMatchStart(t *testing.T) {
	d := New()
	hay := strView(t, "key=value")

	out := dispatchOK(t, d, &Request{Verb: VerbSelect, Value: hay, Arg: value.Char('=')})
	if got, ok := out.(value.Char); !ok || got != 'v' {
		t.Errorf("expected #\"v\", got %v", out)
	}

	out = dispatchOK(t, d, &Request{Verb: VerbSelect, Value: hay, Arg: value.Char('e')})
	if got, ok := out.(value.Char); !ok || got != 'y' {
		t.Errorf("expected #\"y\", got %v", out)
	}
}

func TestSelectStringTargetAdvancesOneElement(t *testing.T) {
	d := New()
	hay := strView(t, "abcd")

	// The element one past the match start, not past the whole target.
	out := dispatchOK(t, d, &Request{Verb: VerbSelect, Value: hay, Arg: strView(t, "bc")})
	if got, ok := out.(value.Char); !ok || got != 'c' {
		t.Errorf("expected #\"c\", got %v", out)
	}
}

func TestSelectAtTailIsNone(t *testing.T) {
	d := New()
	hay := strView(t, "abc")

	out := dispatchOK(t, d, &Request{Verb: VerbSelect, Value: hay, Arg: value.Char('c')})
	if !value.IsNone(out) {
		t.Errorf("expected none when the match ends the series, got %v", out)
	}
}

func TestPickOneBased(t *testing.T) {
	d := New()
	v := strView(t, "abc")

	out := dispatchOK(t, d, &Request{Verb: VerbPick, Value: v, Arg: value.Int(1)})
	if got, ok := out.(value.Char); !ok || got != 'a' {
		t.Errorf("expected #\"a\", got %v", out)
	}

	out = dispatchOK(t, d, &Request{Verb: VerbPick, Value: v, Arg: value.Int(0)})
	if !value.IsNone(out) {
		t.Errorf("expected none for position 0, got %v", out)
	}

	out = dispatchOK(t, d, &Request{Verb: VerbPick, Value: v, Arg: value.Int(4)})
	if !value.IsNone(out) {
		t.Errorf("expected none past the tail, got %v", out)
	}
}

func TestPickBinaryYieldsInteger(t *testing.T) {
	d := New()
	v := value.BinaryView([]byte{0x10, 0x20})

	out := dispatchOK(t, d, &Request{Verb: VerbPick, Value: v, Arg: value.Int(2)})
	if got, ok := out.(value.Int); !ok || got != 0x20 {
		t.Errorf("expected 32, got %v", out)
	}
}

func TestPokeReplacesElement(t *testing.T) {
	d := New()
	v := strView(t, "abc")

	dispatchOK(t, d, &Request{Verb: VerbPoke, Value: v, Arg: value.Int(2), Arg2: value.Char('X')})
	if got := v.Text(); got != "aXc" {
		t.Errorf("expected %q, got %q", "aXc", got)
	}
}

func TestPokeOutOfRangeErrors(t *testing.T) {
	d := New()
	v := strView(t, "abc")

	_, err := d.Dispatch(&Request{Verb: VerbPoke, Value: v, Arg: value.Int(4), Arg2: value.Char('X')})
	if kind, ok := KindOf(err); !ok || kind != KindRange {
		t.Errorf("expected range error, got %v", err)
	}
}

func TestPokeBinaryRejectsWideValue(t *testing.T) {
	d := New()
	v := value.BinaryView([]byte{1, 2, 3})

	_, err := d.Dispatch(&Request{Verb: VerbPoke, Value: v, Arg: value.Int(1), Arg2: value.Int(0x100)})
	if kind, ok := KindOf(err); !ok || kind != KindRange {
		t.Errorf("expected range error, got %v", err)
	}
	if raw := v.Series.Bytes(); raw[0] != 1 {
		t.Errorf("failed poke mutated the series: % X", raw)
	}
}

func TestAppendReturnsHead(t *testing.T) {
	d := New()
	v := strView(t, "ab")

	out := dispatchOK(t, d, &Request{Verb: VerbAppend, Value: v, Arg: strView(t, "cd")})
	got := asView(t, out)
	if got.Index != 0 {
		t.Errorf("expected head position, got index %d", got.Index)
	}
	if text := got.Text(); text != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", text)
	}
}

func TestInsertReturnsPositionPastInsertion(t *testing.T) {
	d := New()
	v := strView(t, "ad").At(1)

	out := dispatchOK(t, d, &Request{Verb: VerbInsert, Value: v, Arg: strView(t, "bc")})
	got := asView(t, out)
	if got.Index != 3 {
		t.Errorf("expected index 3 after insertion, got %d", got.Index)
	}
	if text := got.Head().Text(); text != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", text)
	}
}

func TestChangeWidensStorage(t *testing.T) {
	d := New()
	v := strView(t, "abc").At(2)

	out := dispatchOK(t, d, &Request{Verb: VerbChange, Value: v, Arg: value.Char('☃')})
	if text := asView(t, out).Head().Text(); text != "ab☃" {
		t.Errorf("expected %q, got %q", "ab☃", text)
	}
}

func TestChangePartReplacesRange(t *testing.T) {
	d := New()
	v := strView(t, "aXYZd").At(1)

	out := dispatchOK(t, d, &Request{Verb: VerbChange, Value: v, Arg: strView(t, "bc"), Part: value.Int(3)})
	if text := asView(t, out).Head().Text(); text != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", text)
	}
}

func TestInsertDup(t *testing.T) {
	d := New()
	v := strView(t, "")

	dispatchOK(t, d, &Request{Verb: VerbInsert, Value: v, Arg: value.Char('-'), Dup: 3})
	if text := v.Head().Text(); text != "---" {
		t.Errorf("expected %q, got %q", "---", text)
	}
}

func TestMutationOnProtectedSeriesFails(t *testing.T) {
	d := New()
	v := strView(t, "abc")
	v.Series.Protect()

	for _, verb := range []Verb{VerbAppend, VerbInsert, VerbChange, VerbTake, VerbRemove,
		VerbClear, VerbReverse, VerbSort, VerbTrim, VerbUppercase, VerbPoke} {
		req := &Request{Verb: verb, Value: v, Arg: value.Char('x')}
		if verb == VerbPoke {
			req.Arg = value.Int(1)
			req.Arg2 = value.Char('x')
		}
		_, err := d.Dispatch(req)
		if kind, ok := KindOf(err); !ok || kind != KindLockedSeries {
			t.Errorf("%s: expected locked-series error, got %v", verb, err)
		}
	}
	if got := v.Text(); got != "abc" {
		t.Errorf("protected series was mutated to %q", got)
	}
}

func TestNavigationVerbs(t *testing.T) {
	d := New()
	v := strView(t, "hello").At(2)

	if out := dispatchOK(t, d, &Request{Verb: VerbHead, Value: v}); asView(t, out).Index != 0 {
		t.Errorf("head did not reposition to 0")
	}
	if out := dispatchOK(t, d, &Request{Verb: VerbTail, Value: v}); asView(t, out).Index != 5 {
		t.Errorf("tail did not reposition to the series tail")
	}
	if out := dispatchOK(t, d, &Request{Verb: VerbNext, Value: v}); asView(t, out).Index != 3 {
		t.Errorf("next did not advance by one")
	}
	if out := dispatchOK(t, d, &Request{Verb: VerbBack, Value: v}); asView(t, out).Index != 1 {
		t.Errorf("back did not retreat by one")
	}
	if out := dispatchOK(t, d, &Request{Verb: VerbSkip, Value: v, Arg: value.Int(10)}); asView(t, out).Index != 5 {
		t.Errorf("skip did not clamp at the tail")
	}
	if out := dispatchOK(t, d, &Request{Verb: VerbAt, Value: v, Arg: value.Int(1)}); asView(t, out).Index != 2 {
		t.Errorf("at 1 should stay at the current index")
	}
	if out := dispatchOK(t, d, &Request{Verb: VerbIndex, Value: v}); out.(value.Int) != 3 {
		t.Errorf("index? should be one-based")
	}
	if out := dispatchOK(t, d, &Request{Verb: VerbLength, Value: v}); out.(value.Int) != 3 {
		t.Errorf("length? should count from the index")
	}
	if out := dispatchOK(t, d, &Request{Verb: VerbHeadQ, Value: v}); out.(value.Logic) {
		t.Errorf("head? should be false away from the head")
	}
	if out := dispatchOK(t, d, &Request{Verb: VerbTailQ, Value: v.TailView()}); !out.(value.Logic) {
		t.Errorf("tail? should be true at the tail")
	}
}

func TestComparisonVerbs(t *testing.T) {
	d := New()
	a := strView(t, "Hello")
	b := strView(t, "hello")

	if out := dispatchOK(t, d, &Request{Verb: VerbEqual, Value: a, Arg: b}); !out.(value.Logic) {
		t.Errorf("equal? should fold case")
	}
	if out := dispatchOK(t, d, &Request{Verb: VerbStrictEqual, Value: a, Arg: b}); out.(value.Logic) {
		t.Errorf("strict-equal? should not fold case")
	}
	if out := dispatchOK(t, d, &Request{Verb: VerbSame, Value: a, Arg: b}); out.(value.Logic) {
		t.Errorf("same? should require shared storage")
	}
	if out := dispatchOK(t, d, &Request{Verb: VerbSame, Value: a, Arg: a}); !out.(value.Logic) {
		t.Errorf("same? should be true for the same view")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	d := New()
	v := strView(t, "abcdef").At(2)

	out := dispatchOK(t, d, &Request{Verb: VerbCopy, Value: v, Part: value.Int(3)})
	got := asView(t, out)
	if text := got.Text(); text != "cde" {
		t.Errorf("expected %q, got %q", "cde", text)
	}

	dispatchOK(t, d, &Request{Verb: VerbUppercase, Value: v})
	if text := got.Text(); text != "cde" {
		t.Errorf("copy shares storage with its source: %q", text)
	}
}

func TestTakeThroughDispatcher(t *testing.T) {
	d := New()
	v := strView(t, "abc")

	out := dispatchOK(t, d, &Request{Verb: VerbTake, Value: v})
	if got, ok := out.(value.Char); !ok || got != 'a' {
		t.Errorf("expected #\"a\", got %v", out)
	}
	if text := v.Text(); text != "bc" {
		t.Errorf("expected %q, got %q", "bc", text)
	}

	out = dispatchOK(t, d, &Request{Verb: VerbTake, Value: v, Part: value.Int(2), Last: true})
	if text := asView(t, out).Text(); text != "bc" {
		t.Errorf("expected %q, got %q", "bc", text)
	}
}

func TestSwapExchangesElements(t *testing.T) {
	d := New()
	a := strView(t, "abc")
	b := strView(t, "xyz").At(2)

	dispatchOK(t, d, &Request{Verb: VerbSwap, Value: a, Arg: b})
	if got := a.Text(); got != "zbc" {
		t.Errorf("expected %q, got %q", "zbc", got)
	}
	if got := b.Head().Text(); got != "xya" {
		t.Errorf("expected %q, got %q", "xya", got)
	}
}

func TestSwapRequiresSameDatatype(t *testing.T) {
	d := New()
	s := strView(t, "abc")
	bin := value.BinaryView([]byte{1, 2, 3})

	_, err := d.Dispatch(&Request{Verb: VerbSwap, Value: s, Arg: bin})
	if kind, ok := KindOf(err); !ok || kind != KindTypeMismatch {
		t.Errorf("expected type-mismatch error, got %v", err)
	}

	f := strView(t, "abc")
	f.Tag = value.KindFile
	_, err = d.Dispatch(&Request{Verb: VerbSwap, Value: s, Arg: f})
	if kind, ok := KindOf(err); !ok || kind != KindTypeMismatch {
		t.Errorf("expected type-mismatch error for differing string kinds, got %v", err)
	}
	if got := s.Text(); got != "abc" {
		t.Errorf("failed swap mutated the series to %q", got)
	}
}

func TestSortReverseThroughDispatcher(t *testing.T) {
	d := New()
	v := strView(t, "bdca")

	dispatchOK(t, d, &Request{Verb: VerbSort, Value: v, Reverse: true})
	if text := v.Text(); text != "dcba" {
		t.Errorf("expected %q, got %q", "dcba", text)
	}
}

func TestTrimRefinementValidation(t *testing.T) {
	d := New()
	v := strView(t, "  x  ")

	_, err := d.Dispatch(&Request{Verb: VerbTrim, Value: v, TrimAll: true, TrimHead: true})
	if kind, ok := KindOf(err); !ok || kind != KindInvalidArgument {
		t.Errorf("expected invalid-argument for all+head, got %v", err)
	}

	_, err = d.Dispatch(&Request{Verb: VerbTrim, Value: v, TrimAuto: true, TrimLines: true})
	if kind, ok := KindOf(err); !ok || kind != KindInvalidArgument {
		t.Errorf("expected invalid-argument for auto+lines, got %v", err)
	}

	dispatchOK(t, d, &Request{Verb: VerbTrim, Value: v})
	if text := v.Text(); text != "x" {
		t.Errorf("expected %q, got %q", "x", text)
	}
}

func TestBitwiseOnBinary(t *testing.T) {
	d := New()
	a := value.BinaryView([]byte{0xF0, 0x0F})
	b := value.BinaryView([]byte{0xFF, 0x00, 0xAA})

	out := dispatchOK(t, d, &Request{Verb: VerbAnd, Value: a, Arg: b})
	got := asView(t, out)
	want := []byte{0xF0, 0x00, 0x00}
	raw := got.Series.Bytes()
	if len(raw) != len(want) {
		t.Fatalf("expected %d bytes, got %d", len(want), len(raw))
	}
	for i := range want {
		if raw[i] != want[i] {
			t.Errorf("byte %d: expected %#x, got %#x", i, want[i], raw[i])
		}
	}
}

func TestBitwiseOnStringIsIllegal(t *testing.T) {
	d := New()
	v := strView(t, "abc")

	_, err := d.Dispatch(&Request{Verb: VerbXor, Value: v, Arg: strView(t, "xyz")})
	if kind, ok := KindOf(err); !ok || kind != KindIllegalAction {
		t.Errorf("expected illegal-action error, got %v", err)
	}
}

func TestComplementThroughDispatcher(t *testing.T) {
	d := New()
	v := value.BinaryView([]byte{0x00, 0xFF})

	out := dispatchOK(t, d, &Request{Verb: VerbComplement, Value: v})
	raw := asView(t, out).Series.Bytes()
	if raw[0] != 0xFF || raw[1] != 0x00 {
		t.Errorf("expected FF00, got %X", raw)
	}
}

func TestRandomShuffleIsSeededDeterministic(t *testing.T) {
	rng := random.New(42)
	d := New(WithRandom(rng))
	v := strView(t, "abcdefgh")

	dispatchOK(t, d, &Request{Verb: VerbRandom, Value: v})
	first := v.Text()

	w := strView(t, "abcdefgh")
	rng.Seed(42)
	dispatchOK(t, d, &Request{Verb: VerbRandom, Value: w})
	if second := w.Text(); second != first {
		t.Errorf("same seed produced %q then %q", first, second)
	}
}

func TestRandomOnlyPicksElement(t *testing.T) {
	d := New(WithRandom(random.New(7)))
	v := strView(t, "abc")

	out := dispatchOK(t, d, &Request{Verb: VerbRandom, Value: v, OnlyRandom: true})
	c, ok := out.(value.Char)
	if !ok || c < 'a' || c > 'c' {
		t.Errorf("expected one of the elements, got %v", out)
	}
	if text := v.Text(); text != "abc" {
		t.Errorf("random/only mutated the series to %q", text)
	}
}

func TestPortVerbWithoutActorIsIllegal(t *testing.T) {
	d := New()
	v := strView(t, "data.txt")
	v.Tag = value.KindFile

	_, err := d.Dispatch(&Request{Verb: VerbRead, Value: v})
	if kind, ok := KindOf(err); !ok || kind != KindIllegalAction {
		t.Errorf("expected illegal-action error, got %v", err)
	}
}

type recordingActor struct {
	last Verb
}

func (a *recordingActor) Act(req *Request) (value.Value, error) {
	a.last = req.Verb
	return value.None, nil
}

func TestPortVerbDelegates(t *testing.T) {
	actor := &recordingActor{}
	d := New(WithPortActor(actor))
	v := strView(t, "http://example.com")
	v.Tag = value.KindURL

	dispatchOK(t, d, &Request{Verb: VerbRead, Value: v})
	if actor.last != VerbRead {
		t.Errorf("expected read to delegate to the port actor, got %v", actor.last)
	}
}

func TestPortVerbOnStringIsIllegal(t *testing.T) {
	d := New(WithPortActor(&recordingActor{}))
	v := strView(t, "abc")

	_, err := d.Dispatch(&Request{Verb: VerbOpen, Value: v})
	if kind, ok := KindOf(err); !ok || kind != KindIllegalAction {
		t.Errorf("expected illegal-action error, got %v", err)
	}
}

func TestVerbNames(t *testing.T) {
	if got := VerbNamed("strict-equal?"); got != VerbStrictEqual {
		t.Errorf("expected strict-equal? to resolve, got %v", got)
	}
	if got := VerbNamed("bogus"); got != VerbNone {
		t.Errorf("expected VerbNone for unknown name, got %v", got)
	}
	if got := VerbFind.String(); got != "find" {
		t.Errorf("expected %q, got %q", "find", got)
	}
}

func TestMetricsCounting(t *testing.T) {
	d := New()
	v := strView(t, "abc")

	dispatchOK(t, d, &Request{Verb: VerbLength, Value: v})
	dispatchOK(t, d, &Request{Verb: VerbLength, Value: v})
	if _, err := d.Dispatch(&Request{Verb: VerbPoke, Value: v, Arg: value.Int(9), Arg2: value.Char('x')}); err == nil {
		t.Fatalf("expected poke to fail")
	}

	m := d.Metrics()
	if got := m.TotalDispatches(); got != 3 {
		t.Errorf("expected 3 dispatches, got %d", got)
	}
	if got := m.TotalErrors(); got != 1 {
		t.Errorf("expected 1 error, got %d", got)
	}
	if vm := m.VerbStats(VerbLength); vm == nil || vm.DispatchCount != 2 {
		t.Errorf("expected 2 length? dispatches, got %+v", vm)
	}
	if snap := m.Snapshot(); len(snap) != 2 || snap[0].Verb != VerbLength {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}
