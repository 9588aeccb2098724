package prop

import (
	"unsafe"

	"github.com/signadot/prop/debug"
)

// Accessor construction. Each constructor performs the classification
// checks and the layout check; Go cannot express these as compile-time
// constraints, so violations panic with a descriptive message at the
// point of construction. A rule that constructs once is checked once.

// OfRef wraps a reference-mode rule in a Proxy accessor.
//
// The rule may not also provide Set: reference-mode writes go through
// the referent, and a setter on such a rule would silently be
// bypassed. Nor may it provide Get, which would leave the
// classification ambiguous.
func OfRef[T any, R Referencer[T]](rule R) Proxy[T, R] {
	if HasSetter[T](rule) {
		panic("prop: reference-mode rule must not provide Set; assignments are forwarded to Ref")
	}
	if HasGetter[T](rule) {
		panic("prop: rule provides both Get and Ref; classification is ambiguous")
	}
	p := Proxy[T, R]{rule: rule}
	layoutCheck(p, rule)
	if debug.Classify() {
		debug.Logf("prop: %T -> %s", rule, ProxyKind)
	}
	return p
}

// Of wraps a read-write value-mode rule in a Value accessor.
func Of[T any, R GetSetter[T]](rule R) Value[T, R] {
	if IsRef[T](rule) {
		panic("prop: rule provides both Get and Ref; classification is ambiguous")
	}
	v := Value[T, R]{rule: rule}
	layoutCheck(v, rule)
	if debug.Classify() {
		debug.Logf("prop: %T -> %s", rule, ValueKind)
	}
	return v
}

// OfGet wraps a get-only value-mode rule in a ReadOnly accessor. The
// resulting accessor has no write operations at all.
func OfGet[T any, R Getter[T]](rule R) ReadOnly[T, R] {
	if IsRef[T](rule) {
		panic("prop: rule provides both Get and Ref; classification is ambiguous")
	}
	v := ReadOnly[T, R]{rule: rule}
	layoutCheck(v, rule)
	if debug.Classify() {
		debug.Logf("prop: %T -> %s", rule, ValueKind)
	}
	return v
}

// layoutCheck enforces the aliasing contract: an accessor holds its
// rule and nothing else, so it can be embedded wherever the rule
// could be. A mismatch means accessor state was added and the
// contract is broken.
func layoutCheck[A, R any](a A, rule R) {
	if unsafe.Sizeof(a) != unsafe.Sizeof(rule) || unsafe.Alignof(a) != unsafe.Alignof(rule) {
		panic("prop: accessor layout diverges from its rule")
	}
}

// Copy assigns src's current value through dst. This is the
// accessor-to-accessor form of assignment: a write through dst, never
// a rebind of dst itself.
func Copy[T any](dst Setter[T], src Getter[T]) {
	dst.Set(src.Get())
}
