package prop

import "fmt"

// Proxy is the reference-semantics accessor. Every operation acts
// directly on the storage its rule refers to; there is no
// read-modify-write cycle and no intermediate copy.
type Proxy[T any, R Referencer[T]] struct {
	rule R
}

// Get returns a copy of the referent's current value.
func (p Proxy[T, R]) Get() T { return *p.rule.Ref() }

// Set writes v to the referent.
func (p Proxy[T, R]) Set(v T) { *p.rule.Ref() = v }

// Ref returns the address of the referent, so taking "the address of
// the field" resolves to the real storage.
func (p Proxy[T, R]) Ref() *T { return p.rule.Ref() }

// Update applies f to the referent in place. The referent is resolved
// exactly once.
func (p Proxy[T, R]) Update(f func(T) T) T {
	r := p.rule.Ref()
	*r = f(*r)
	return *r
}

// String prints the referent, letting a Proxy interoperate with fmt
// like the value it stands for.
func (p Proxy[T, R]) String() string { return fmt.Sprint(p.Get()) }
