package prop

// The get/set rule contract. A rule is the caller-supplied unit that
// defines how a synthetic field reads and writes its value. Exactly
// one of Get or Ref defines the rule's mode: Get reads by copy
// (value mode), Ref exposes the address of existing storage
// (reference mode).
//
// Accessors implement these interfaces too, so anything accepting a
// rule also accepts an accessor.

// Getter is the read half of a value-mode rule.
type Getter[T any] interface {
	Get() T
}

// Setter is the optional write half of a value-mode rule.
type Setter[T any] interface {
	Set(T)
}

// GetSetter is a read-write value-mode rule.
type GetSetter[T any] interface {
	Getter[T]
	Setter[T]
}

// Referencer is a reference-mode rule. All mutation in reference mode
// goes through the returned referent; a Referencer must not also
// provide Set.
type Referencer[T any] interface {
	Ref() *T
}

// Updater is implemented by writable accessors. Update applies f to
// the current value using the accessor's own write discipline and
// returns the value written.
type Updater[T any] interface {
	Update(func(T) T) T
}

// GetFunc adapts a function to a get-only rule.
type GetFunc[T any] func() T

func (f GetFunc[T]) Get() T { return f() }

// RefFunc adapts a function to a reference-mode rule.
type RefFunc[T any] func() *T

func (f RefFunc[T]) Ref() *T { return f() }

// GetSet adapts a get/set function pair to a read-write rule. Both
// functions must be non-nil; a field without a setter is a GetFunc.
type GetSet[T any] struct {
	GetFn func() T
	SetFn func(T)
}

func (g GetSet[T]) Get() T  { return g.GetFn() }
func (g GetSet[T]) Set(v T) { g.SetFn(v) }
