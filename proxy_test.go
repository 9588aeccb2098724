package prop

import (
	"fmt"
	"testing"
)

type object struct {
	X int
}

func (o *object) Mass() int { return 5 + o.X*10 }

// objectPtr mirrors the common indirection-hiding use: the owner
// holds a pointer and exposes the pointee's fields.
type objectPtr struct {
	Object *object
}

func TestProxyWriteThrough(t *testing.T) {
	actual := objectPtr{Object: &object{X: 1}}
	x := OfRef[int](RefFunc[int](func() *int { return &actual.Object.X }))

	x.Set(7)
	if actual.Object.X != 7 {
		t.Fatalf("expected write-through to set X to 7, got %d", actual.Object.X)
	}
	if got := x.Get(); got != 7 {
		t.Fatalf("expected Get to read 7, got %d", got)
	}
}

func TestProxyRefIsReferentAddress(t *testing.T) {
	obj := &object{X: 3}
	x := OfRef[int](RefFunc[int](func() *int { return &obj.X }))

	if x.Ref() != &obj.X {
		t.Fatal("expected Ref to return the address of the referent")
	}
	*x.Ref() = 11
	if obj.X != 11 {
		t.Fatalf("expected write through Ref to land in the referent, got %d", obj.X)
	}
}

// countingRef counts referent resolutions so tests can observe how
// often an operation touches the rule.
type countingRef struct {
	n *int
	p *int
}

func (c countingRef) Ref() *int {
	*c.n++
	return c.p
}

func TestProxyUpdateResolvesReferentOnce(t *testing.T) {
	n, v := 0, 10
	p := OfRef[int](countingRef{n: &n, p: &v})

	n = 0
	AddAssign[int](p, 5)
	if v != 15 {
		t.Fatalf("expected compound assign to produce 15, got %d", v)
	}
	if n != 1 {
		t.Fatalf("expected exactly one referent resolution, got %d", n)
	}
}

func TestProxyCopy(t *testing.T) {
	a, b := 1, 2
	pa := OfRef[int](RefFunc[int](func() *int { return &a }))
	pb := OfRef[int](RefFunc[int](func() *int { return &b }))

	Copy[int](pa, pb)
	if a != 2 {
		t.Fatalf("expected copy to write b's value into a's referent, got %d", a)
	}
	// the accessors remain bound to their own storage
	b = 9
	if pa.Get() != 2 {
		t.Fatalf("expected pa to stay bound to a, got %d", pa.Get())
	}
}

func TestProxyIncDec(t *testing.T) {
	v := 5
	p := OfRef[int](RefFunc[int](func() *int { return &v }))

	if got := Inc[int](p); got != 6 || v != 6 {
		t.Fatalf("expected Inc to yield 6, got %d (storage %d)", got, v)
	}
	if got := PostDec[int](p); got != 6 || v != 5 {
		t.Fatalf("expected PostDec to yield old value 6, got %d (storage %d)", got, v)
	}
}

func TestProxyString(t *testing.T) {
	v := 42
	p := OfRef[int](RefFunc[int](func() *int { return &v }))
	if s := fmt.Sprint(p); s != "42" {
		t.Fatalf("expected proxy to print like its referent, got %q", s)
	}
}
