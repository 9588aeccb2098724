package prop

// Structural capability queries. Each answers false when the
// capability is absent; none of them can fail. Only operations
// actually invoked with an unsupported rule fail, at the call site.

// HasGetter reports whether rule reads values of type T by copy.
func HasGetter[T any](rule any) bool {
	_, ok := rule.(Getter[T])
	return ok
}

// HasSetter reports whether rule accepts writes of type T.
func HasSetter[T any](rule any) bool {
	_, ok := rule.(Setter[T])
	return ok
}

// IsRef reports whether rule refers to existing storage of type T.
func IsRef[T any](rule any) bool {
	_, ok := rule.(Referencer[T])
	return ok
}

// PointerEmulation marks a rule whose accessor stands in for a
// pointer to its value rather than for the value itself. The marker
// method is never called.
type PointerEmulation interface {
	PropOptionPointerEmulation()
}

// ImplicitConversion marks a rule whose foreign conversions are meant
// to be treated as widening. Go spells out every conversion, so the
// flag carries no semantics in this package; it is surfaced through
// Caps for declaration front ends that honor it.
type ImplicitConversion interface {
	PropOptionImplicitConversion()
}

// EmulatesPointer reports the pointer-emulation option, declared
// structurally on the rule. Absence means false.
func EmulatesPointer(rule any) bool {
	_, ok := rule.(PointerEmulation)
	return ok
}

// ConvertsImplicitly reports the implicit-conversion option.
func ConvertsImplicitly(rule any) bool {
	_, ok := rule.(ImplicitConversion)
	return ok
}

// Caps is the full structural capability report of a rule with
// respect to value type T.
type Caps struct {
	Getter             bool
	Setter             bool
	Ref                bool
	PointerEmulation   bool
	ImplicitConversion bool
}

func CapsOf[T any](rule any) Caps {
	return Caps{
		Getter:             HasGetter[T](rule),
		Setter:             HasSetter[T](rule),
		Ref:                IsRef[T](rule),
		PointerEmulation:   EmulatesPointer(rule),
		ImplicitConversion: ConvertsImplicitly(rule),
	}
}
