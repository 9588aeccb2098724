package prop

import "fmt"

// Kind is an accessor classification. There are exactly two: rules
// that refer to storage are ProxyKind, rules that compute a value by
// copy are ValueKind.
type Kind int

const (
	ValueKind Kind = iota
	ProxyKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		ValueKind: "Value",
		ProxyKind: "Proxy",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Value": ValueKind,
		"Proxy": ProxyKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		ValueKind,
		ProxyKind,
	}
}

// KindOf classifies a rule for value type T. A Ref method implies
// ProxyKind; everything else is ValueKind. Get returning T is never
// reference mode, even when T is itself a pointer type.
func KindOf[T any](rule any) Kind {
	if IsRef[T](rule) {
		return ProxyKind
	}
	return ValueKind
}
