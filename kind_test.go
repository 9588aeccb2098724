package prop

import "testing"

func TestKindOf(t *testing.T) {
	v := 0
	if got := KindOf[int](RefFunc[int](func() *int { return &v })); got != ProxyKind {
		t.Fatalf("expected ProxyKind, got %s", got)
	}
	if got := KindOf[int](GetFunc[int](func() int { return 0 })); got != ValueKind {
		t.Fatalf("expected ValueKind, got %s", got)
	}
	if got := KindOf[int](intCell(0)); got != ValueKind {
		t.Fatalf("expected ValueKind for get/set cell, got %s", got)
	}
	// a getter producing a pointer is still value mode
	if got := KindOf[*int](GetFunc[*int](func() *int { return &v })); got != ValueKind {
		t.Fatalf("expected ValueKind for pointer-valued getter, got %s", got)
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatalf("marshal %s: %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("unmarshal %q: %v", d, err)
		}
		if back != k {
			t.Fatalf("round trip of %s produced %s", k, back)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Banana")); err == nil {
		t.Fatal("expected error for unknown kind text")
	}
}
