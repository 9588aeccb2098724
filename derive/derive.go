// Package derive builds get/set rules whose reads evaluate a compiled
// expression over an environment value. This is the derived-quantity
// use of synthetic fields: store one representation, expose another.
package derive

import (
	"fmt"
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/prop"
)

// Program is a compiled derivation over environment type E producing
// values of type T.
type Program[E any, T any] struct {
	src  string
	prog *vm.Program
}

// Compile type-checks src against environment type E. Every
// expression failure surfaces here; a compiled Program does not fail
// at read time for well-typed environments.
func Compile[E any, T any](src string) (*Program[E, T], error) {
	var env E
	p, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("derive: compile %q: %w", src, err)
	}
	return &Program[E, T]{src: src, prog: p}, nil
}

// MustCompile is Compile for programs known good at init time.
func MustCompile[E any, T any](src string) *Program[E, T] {
	p, err := Compile[E, T](src)
	if err != nil {
		panic(err)
	}
	return p
}

// Bind produces a get-only rule evaluating the program against env.
// Wrap it with prop.OfGet.
func (p *Program[E, T]) Bind(env *E) prop.GetFunc[T] {
	return prop.GetFunc[T](func() T { return p.eval(env) })
}

// BindSet pairs the derived read with an explicit write-back, giving
// a read-write rule for prop.Of.
func (p *Program[E, T]) BindSet(env *E, set func(*E, T)) prop.GetSet[T] {
	return prop.GetSet[T]{
		GetFn: func() T { return p.eval(env) },
		SetFn: func(v T) { set(env, v) },
	}
}

func (p *Program[E, T]) eval(env *E) T {
	out, err := expr.Run(p.prog, *env)
	if err != nil {
		// Compile vetted the program against E; failing here is
		// a programmer error, like a bad template in html/template.
		panic(fmt.Sprintf("derive: run %q: %v", p.src, err))
	}
	if v, ok := out.(T); ok {
		return v
	}
	return coerce[T](out, p.src)
}

// coerce handles the numeric widening expr applies to arithmetic
// results (integer math comes back as int, float math as float64).
func coerce[T any](out any, src string) T {
	rv := reflect.ValueOf(out)
	rt := reflect.TypeFor[T]()
	if rv.IsValid() && rv.Type().ConvertibleTo(rt) {
		return rv.Convert(rt).Interface().(T)
	}
	panic(fmt.Sprintf("derive: %q produced %T, want %v", src, out, rt))
}
