package gen

import (
	"bytes"
	"fmt"
	"go/format"

	"github.com/signadot/prop/debug"
)

const header = "// Code generated by propgen. DO NOT EDIT.\n\n"

// Render emits the Go source file a manifest declares. The output is
// gofmt-formatted; a formatting failure means the manifest's
// expressions are not valid Go and is reported with the raw source
// for inspection.
func Render(m *Manifest) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteString(header)
	fmt.Fprintf(buf, "package %s\n\n", m.Package)
	fmt.Fprintf(buf, "import (\n")
	fmt.Fprintf(buf, "\t%q\n", "github.com/signadot/prop")
	for _, imp := range m.Imports {
		fmt.Fprintf(buf, "\t%q\n", imp)
	}
	fmt.Fprintf(buf, ")\n\n")
	for i := range m.Bundles {
		renderBundle(buf, &m.Bundles[i])
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: render %s: %w\n%s", m.Package, err, buf.Bytes())
	}
	if debug.Gen() {
		debug.Logf("gen: rendered %d bundle(s) for package %s", len(m.Bundles), m.Package)
	}
	return src, nil
}

func renderBundle(buf *bytes.Buffer, b *Bundle) {
	fmt.Fprintf(buf, "// %s groups the synthetic fields declared over %s.\n", b.Name, b.Actual)
	fmt.Fprintf(buf, "type %s struct {\n\tActual %s\n}\n\n", b.Name, b.Actual)
	for i := range b.Props {
		renderProp(buf, b, &b.Props[i])
	}
}

func renderProp(buf *bytes.Buffer, b *Bundle, p *Prop) {
	switch p.Kind {
	case ProxyProp:
		fmt.Fprintf(buf, "// %s is a proxy field of type %s.\n", p.Name, p.Type)
		fmt.Fprintf(buf, "func (b *%s) %s() prop.Proxy[%s, prop.RefFunc[%s]] {\n",
			b.Name, p.Name, p.Type, p.Type)
		fmt.Fprintf(buf, "\ta := &b.Actual\n\t_ = a\n")
		fmt.Fprintf(buf, "\treturn prop.OfRef[%s](prop.RefFunc[%s](func() *%s { return %s }))\n",
			p.Type, p.Type, p.Type, p.Ref)
		fmt.Fprintf(buf, "}\n\n")
	case GetOnlyProp:
		fmt.Fprintf(buf, "// %s is a read-only value field of type %s.\n", p.Name, p.Type)
		fmt.Fprintf(buf, "func (b *%s) %s() prop.ReadOnly[%s, prop.GetFunc[%s]] {\n",
			b.Name, p.Name, p.Type, p.Type)
		fmt.Fprintf(buf, "\ta := &b.Actual\n\t_ = a\n")
		fmt.Fprintf(buf, "\treturn prop.OfGet[%s](prop.GetFunc[%s](func() %s { return %s }))\n",
			p.Type, p.Type, p.Type, p.Get)
		fmt.Fprintf(buf, "}\n\n")
	case GetSetProp:
		fmt.Fprintf(buf, "// %s is a read-write value field of type %s.\n", p.Name, p.Type)
		fmt.Fprintf(buf, "func (b *%s) %s() prop.Value[%s, prop.GetSet[%s]] {\n",
			b.Name, p.Name, p.Type, p.Type)
		fmt.Fprintf(buf, "\ta := &b.Actual\n\t_ = a\n")
		fmt.Fprintf(buf, "\treturn prop.Of[%s](prop.GetSet[%s]{\n", p.Type, p.Type)
		fmt.Fprintf(buf, "\t\tGetFn: func() %s { return %s },\n", p.Type, p.Get)
		fmt.Fprintf(buf, "\t\tSetFn: func(v %s) { %s },\n", p.Type, p.Set)
		fmt.Fprintf(buf, "\t})\n}\n\n")
	}
}
