package derive

import (
	"math"
	"testing"

	"github.com/signadot/prop"
)

type angle struct {
	Rad float64
}

const degPerRad = 180 / math.Pi

func TestDerivedReadOnly(t *testing.T) {
	p, err := Compile[angle, float64]("Rad * 57.29577951308232")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	env := &angle{Rad: math.Pi}
	deg := prop.OfGet[float64](p.Bind(env))

	if got := deg.Get(); math.Abs(got-180) > 1e-9 {
		t.Fatalf("expected 180 degrees, got %g", got)
	}
	env.Rad = math.Pi / 2
	if got := deg.Get(); math.Abs(got-90) > 1e-9 {
		t.Fatalf("expected derived read to track the environment, got %g", got)
	}
}

func TestDerivedRoundTrip(t *testing.T) {
	p := MustCompile[angle, float64]("Rad * 57.29577951308232")
	env := &angle{}
	deg := prop.Of[float64](p.BindSet(env, func(e *angle, v float64) {
		e.Rad = v / degPerRad
	}))

	deg.Set(90)
	if math.Abs(env.Rad-math.Pi/2) > 1e-9 {
		t.Fatalf("expected stored radians pi/2, got %g", env.Rad)
	}
	if got := deg.Get(); math.Abs(got-90) > 1e-9 {
		t.Fatalf("expected round trip within tolerance, got %g", got)
	}
	if got := prop.AddAssign[float64](deg, 90); math.Abs(got-180) > 1e-9 {
		t.Fatalf("expected compound assign through the derived rule, got %g", got)
	}
	if math.Abs(env.Rad-math.Pi) > 1e-9 {
		t.Fatalf("expected stored radians pi, got %g", env.Rad)
	}
}

func TestCompileRejectsBadExpressions(t *testing.T) {
	if _, err := Compile[angle, float64]("Rad +"); err == nil {
		t.Fatal("expected syntax error")
	}
	if _, err := Compile[angle, float64]("Deg * 2"); err == nil {
		t.Fatal("expected unknown identifier error")
	}
}

type counter struct {
	N int
}

func TestNumericCoercion(t *testing.T) {
	// integer arithmetic comes back as int; binding at float64 must
	// still produce the declared type
	p, err := Compile[counter, float64]("N + 1")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	env := &counter{N: 2}
	v := prop.OfGet[float64](p.Bind(env))
	if got := v.Get(); got != 3.0 {
		t.Fatalf("expected coerced 3.0, got %g", got)
	}
}
