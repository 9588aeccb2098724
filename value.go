package prop

import "fmt"

// Value is the value-semantics accessor. Reads copy the value out
// through the rule's Get; writes copy it back through Set.
type Value[T any, R GetSetter[T]] struct {
	rule R
}

// Get returns the rule's current value.
func (v Value[T, R]) Get() T { return v.rule.Get() }

// Set writes x through the rule.
func (v Value[T, R]) Set(x T) { v.rule.Set(x) }

// Update is a get-modify-set triple: read into a local, apply f,
// write the local back. It is not atomic with respect to other
// writers of the same underlying storage; callers that share the
// storage must synchronize around the owning aggregate.
func (v Value[T, R]) Update(f func(T) T) T {
	x := f(v.rule.Get())
	v.rule.Set(x)
	return x
}

// Ptr returns a pointer to a copy of the current value. There is no
// persistent addressable storage behind a Value, so the pointee does
// not track later writes and must not outlive the expression that
// produced it.
func (v Value[T, R]) Ptr() *T {
	x := v.rule.Get()
	return &x
}

func (v Value[T, R]) String() string { return fmt.Sprint(v.rule.Get()) }

// ReadOnly is the value-semantics accessor for rules without a
// setter. The assignment family is absent from its method set, so a
// write through a ReadOnly is a compile error, not a runtime one.
type ReadOnly[T any, R Getter[T]] struct {
	rule R
}

// Get returns the rule's current value.
func (v ReadOnly[T, R]) Get() T { return v.rule.Get() }

// Ptr returns a pointer to a copy of the current value; see
// Value.Ptr for the lifetime caveat.
func (v ReadOnly[T, R]) Ptr() *T {
	x := v.rule.Get()
	return &x
}

func (v ReadOnly[T, R]) String() string { return fmt.Sprint(v.rule.Get()) }
