// Package prop implements synthetic struct fields: accessors whose
// reads and writes run through a caller-supplied get/set rule while
// the accessor itself behaves, as far as Go allows, like the value it
// stands for.
//
// A rule is classified by the shape of its read operation. A rule
// with Ref() *T refers to existing storage and produces a Proxy
// accessor, whose writes act directly on the referent. A rule with
// Get() T computes its value by copy and produces a Value accessor
// when it also has Set(T), or a ReadOnly accessor when it does not.
// The classification is exhaustive and mutually exclusive; a rule may
// not mix Ref with Get or Set.
//
// Accessors hold nothing beyond their rule, so an accessor has the
// exact size and alignment of the rule it wraps and may be embedded
// wherever the rule could be. Accessors themselves satisfy the rule
// contracts, which is what makes member composition (RefField, Field,
// GetField) close over the abstraction: a synthetic field of a
// synthetic field is declared with the same machinery.
//
// Go has no operator overloading, so the operator surface of an
// accessor is spelled out: Get, Set and Update on the accessor, and
// constrained forwarding functions (Add, Less, Index, Deref,
// AddAssign, Inc, ...) that evaluate an operator against the
// accessor's current value. An operator a value type does not support
// fails to instantiate at the call site; there is no runtime
// rejection.
package prop
