package prop

import "cmp"

// Operator forwarding. Go has no operator overloading, so the
// operators an accessor "supports" are constrained generic functions
// that evaluate against the accessor's current value. Everything here
// is defined over the rule contracts, so it applies equally to raw
// rules and to accessors, and a plain operand may sit on either side
// of the operation. An operand type that does not satisfy a
// constraint fails to instantiate at the call site.

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Real interface {
	~float32 | ~float64
}

type Number interface {
	Integer | Real
}

// Addable admits everything Go's + accepts.
type Addable interface {
	Number | ~string
}

// Binary operators. These read the value and produce a plain result;
// they never mutate the underlying storage.

func Add[T Addable](a Getter[T], y T) T { return a.Get() + y }
func Sub[T Number](a Getter[T], y T) T  { return a.Get() - y }
func Mul[T Number](a Getter[T], y T) T  { return a.Get() * y }
func Div[T Number](a Getter[T], y T) T  { return a.Get() / y }
func Mod[T Integer](a Getter[T], y T) T { return a.Get() % y }

func And[T Integer](a Getter[T], y T) T    { return a.Get() & y }
func Or[T Integer](a Getter[T], y T) T     { return a.Get() | y }
func Xor[T Integer](a Getter[T], y T) T    { return a.Get() ^ y }
func AndNot[T Integer](a Getter[T], y T) T { return a.Get() &^ y }
func Shl[T Integer](a Getter[T], n uint) T { return a.Get() << n }
func Shr[T Integer](a Getter[T], n uint) T { return a.Get() >> n }

// Right-hand substitution: when the accessor is the right operand of
// a non-commutative operator, the expression reduces to the plain
// value. (For commutative operators the left forms above suffice, and
// String on every accessor covers fmt output.)

func AddTo[T Addable](x T, a Getter[T]) T   { return x + a.Get() }
func SubFrom[T Number](x T, a Getter[T]) T  { return x - a.Get() }
func DivInto[T Number](x T, a Getter[T]) T  { return x / a.Get() }
func ModInto[T Integer](x T, a Getter[T]) T { return x % a.Get() }

// Comparisons.

func Eq[T comparable](a Getter[T], y T) bool { return a.Get() == y }
func Ne[T comparable](a Getter[T], y T) bool { return a.Get() != y }

func Less[T cmp.Ordered](a Getter[T], y T) bool      { return a.Get() < y }
func LessEq[T cmp.Ordered](a Getter[T], y T) bool    { return a.Get() <= y }
func Greater[T cmp.Ordered](a Getter[T], y T) bool   { return a.Get() > y }
func GreaterEq[T cmp.Ordered](a Getter[T], y T) bool { return a.Get() >= y }

// Unary operators.

func Neg[T Number](a Getter[T]) T     { return -a.Get() }
func Not[T ~bool](a Getter[T]) T      { return !a.Get() }
func Invert[T Integer](a Getter[T]) T { return ^a.Get() }

// Convert reads the value and converts it to U. Conversions in Go are
// always spelled out; there is no implicit form to control.
func Convert[U, T Number](a Getter[T]) U { return U(a.Get()) }

// Call and index forwarding: an accessor over a callable or indexable
// value behaves like that value.

func Call0[Rt any](a Getter[func() Rt]) Rt             { return a.Get()() }
func Call1[A1, Rt any](a Getter[func(A1) Rt], x A1) Rt { return a.Get()(x) }
func Call2[A1, A2, Rt any](a Getter[func(A1, A2) Rt], x A1, y A2) Rt {
	return a.Get()(x, y)
}

func Index[S ~[]E, E any](a Getter[S], i int) E               { return a.Get()[i] }
func Key[M ~map[K]V, K comparable, V any](a Getter[M], k K) V { return a.Get()[k] }

// Deref dereferences a pointer-typed value. An accessor with the
// pointer-emulation option does not need it: such an accessor is
// itself the pointer stand-in, and its Ref (Proxy) or Ptr (Value)
// plays this role.
func Deref[E any](a Getter[*E]) E { return *a.Get() }

// The assignment family. Defined once over Updater, so each accessor
// kind keeps its own write discipline: Proxy mutates the referent in
// place, Value runs a get-modify-set triple, and ReadOnly has no
// Update at all.

func AddAssign[T Addable](a Updater[T], y T) T { return a.Update(func(x T) T { return x + y }) }
func SubAssign[T Number](a Updater[T], y T) T  { return a.Update(func(x T) T { return x - y }) }
func MulAssign[T Number](a Updater[T], y T) T  { return a.Update(func(x T) T { return x * y }) }
func DivAssign[T Number](a Updater[T], y T) T  { return a.Update(func(x T) T { return x / y }) }
func ModAssign[T Integer](a Updater[T], y T) T { return a.Update(func(x T) T { return x % y }) }

func AndAssign[T Integer](a Updater[T], y T) T    { return a.Update(func(x T) T { return x & y }) }
func OrAssign[T Integer](a Updater[T], y T) T     { return a.Update(func(x T) T { return x | y }) }
func XorAssign[T Integer](a Updater[T], y T) T    { return a.Update(func(x T) T { return x ^ y }) }
func AndNotAssign[T Integer](a Updater[T], y T) T { return a.Update(func(x T) T { return x &^ y }) }
func ShlAssign[T Integer](a Updater[T], n uint) T { return a.Update(func(x T) T { return x << n }) }
func ShrAssign[T Integer](a Updater[T], n uint) T { return a.Update(func(x T) T { return x >> n }) }

// Inc and Dec return the new value, like a prefix increment.
func Inc[T Number](a Updater[T]) T { return a.Update(func(x T) T { return x + 1 }) }
func Dec[T Number](a Updater[T]) T { return a.Update(func(x T) T { return x - 1 }) }

// PostInc and PostDec return the old value, like a postfix increment.
// The read and write still form a single triple.
func PostInc[T Number](a Updater[T]) T {
	var old T
	a.Update(func(x T) T { old = x; return x + 1 })
	return old
}

func PostDec[T Number](a Updater[T]) T {
	var old T
	a.Update(func(x T) T { old = x; return x - 1 })
	return old
}
