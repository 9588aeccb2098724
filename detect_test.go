package prop

import "testing"

type markedRef struct{ p *int }

func (m markedRef) Ref() *int                   { return m.p }
func (m markedRef) PropOptionPointerEmulation() {}

type markedGet struct{ v int }

func (m markedGet) Get() int                      { return m.v }
func (m markedGet) PropOptionImplicitConversion() {}

func TestCapabilityDetection(t *testing.T) {
	cell := intCell(1)
	if !HasGetter[int](cell) || !HasSetter[int](cell) {
		t.Fatal("GetSet cell must have getter and setter")
	}
	if IsRef[int](cell) {
		t.Fatal("GetSet cell is not reference mode")
	}

	g := GetFunc[int](func() int { return 1 })
	if !HasGetter[int](g) {
		t.Fatal("GetFunc must have a getter")
	}
	if HasSetter[int](g) {
		t.Fatal("GetFunc must not have a setter")
	}

	v := 0
	r := RefFunc[int](func() *int { return &v })
	if !IsRef[int](r) {
		t.Fatal("RefFunc is reference mode")
	}
	if HasGetter[int](r) || HasSetter[int](r) {
		t.Fatal("RefFunc has neither getter nor setter")
	}
	// queries are per value type: a ref to int is not a ref to string
	if IsRef[string](r) {
		t.Fatal("capability queries must be type-specific")
	}
}

func TestOptionDetection(t *testing.T) {
	v := 0
	if !EmulatesPointer(markedRef{p: &v}) {
		t.Fatal("marker method must enable pointer emulation")
	}
	if EmulatesPointer(RefFunc[int](func() *int { return &v })) {
		t.Fatal("absence of the marker means false")
	}
	if !ConvertsImplicitly(markedGet{}) {
		t.Fatal("marker method must enable implicit conversion")
	}
	if ConvertsImplicitly(GetFunc[int](func() int { return 0 })) {
		t.Fatal("absence of the marker means false")
	}
}

func TestCapsOf(t *testing.T) {
	v := 0
	caps := CapsOf[int](markedRef{p: &v})
	want := Caps{Ref: true, PointerEmulation: true}
	if caps != want {
		t.Fatalf("caps %+v, want %+v", caps, want)
	}
	caps = CapsOf[int](intCell(0))
	want = Caps{Getter: true, Setter: true}
	if caps != want {
		t.Fatalf("caps %+v, want %+v", caps, want)
	}
}
