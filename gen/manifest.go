// Package gen renders accessor bundle declarations from a YAML
// manifest. It is a declaration front end over the prop core: each
// manifest bundle becomes a Go type holding the actual variables and
// one accessor constructor method per synthetic field.
package gen

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Property kinds accepted in a manifest.
const (
	ProxyProp   = "proxy"
	GetOnlyProp = "getonly"
	GetSetProp  = "getset"
)

// Manifest describes one generated file.
type Manifest struct {
	// Package is the package clause of the generated file.
	Package string `yaml:"package"`
	// Imports lists extra import paths the expressions need.
	Imports []string `yaml:"imports,omitempty"`
	Bundles []Bundle `yaml:"bundles"`
}

// Bundle is one group of synthetic fields over a shared actual
// struct.
type Bundle struct {
	// Name is the generated type's name.
	Name string `yaml:"name"`
	// Actual is the Go type holding the real variables. Property
	// expressions refer to it as `a`, a pointer to the embedded
	// actual value.
	Actual string `yaml:"actual"`
	Props  []Prop `yaml:"props"`
}

// Prop is one synthetic field declaration.
type Prop struct {
	Name string `yaml:"name"`
	// Type is the Go type the field imitates.
	Type string `yaml:"type"`
	// Kind is proxy, getonly or getset.
	Kind string `yaml:"kind"`
	// Ref is a proxy expression yielding *Type, e.g. "&a.Object.X".
	Ref string `yaml:"ref,omitempty"`
	// Get is a value expression yielding Type.
	Get string `yaml:"get,omitempty"`
	// Set is a statement writing the incoming value v, e.g.
	// "a.Object.X = v / 2".
	Set string `yaml:"set,omitempty"`
}

// Load parses and validates a manifest.
func Load(d []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.Unmarshal(d, m); err != nil {
		return nil, fmt.Errorf("gen: parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate applies the same shape rules the core enforces at
// construction, so misdeclared properties fail at generation time
// rather than at run time.
func (m *Manifest) Validate() error {
	if m.Package == "" {
		return fmt.Errorf("gen: manifest missing package")
	}
	if len(m.Bundles) == 0 {
		return fmt.Errorf("gen: manifest has no bundles")
	}
	for _, b := range m.Bundles {
		if b.Name == "" {
			return fmt.Errorf("gen: bundle missing name")
		}
		if b.Actual == "" {
			return fmt.Errorf("gen: bundle %s missing actual type", b.Name)
		}
		for _, p := range b.Props {
			if err := p.validate(); err != nil {
				return fmt.Errorf("gen: bundle %s: %w", b.Name, err)
			}
		}
	}
	return nil
}

func (p *Prop) validate() error {
	if p.Name == "" {
		return fmt.Errorf("property missing name")
	}
	if p.Type == "" {
		return fmt.Errorf("property %s missing type", p.Name)
	}
	switch p.Kind {
	case ProxyProp:
		if p.Ref == "" {
			return fmt.Errorf("proxy property %s requires ref", p.Name)
		}
		if p.Get != "" || p.Set != "" {
			// reference mode mutates through the referent only
			return fmt.Errorf("proxy property %s may not declare get or set", p.Name)
		}
	case GetOnlyProp:
		if p.Get == "" {
			return fmt.Errorf("getonly property %s requires get", p.Name)
		}
		if p.Ref != "" || p.Set != "" {
			return fmt.Errorf("getonly property %s may only declare get", p.Name)
		}
	case GetSetProp:
		if p.Get == "" || p.Set == "" {
			return fmt.Errorf("getset property %s requires get and set", p.Name)
		}
		if p.Ref != "" {
			return fmt.Errorf("getset property %s may not declare ref", p.Name)
		}
	default:
		return fmt.Errorf("property %s has unrecognized kind %q", p.Name, p.Kind)
	}
	return nil
}
