package dsl

import (
	"strings"
)

// String renders the definition back to canonical DSL text. Parsing the
// result yields a structurally equal KeyDefinition, whether the receiver was
// parsed or constructed programmatically.
func (d *KeyDefinition) String() string {
	var buf strings.Builder
	for i, k := range d.Keys {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString(k.String())
	}
	return buf.String()
}

func (k *KeyName) String() string {
	return k.Name.String()
}

func (f *FunctionCall) String() string {
	var buf strings.Builder
	buf.WriteString(f.Name)
	for _, arg := range f.Args {
		buf.WriteString(":")
		if nested, ok := arg.(*FunctionCall); ok {
			buf.WriteString("[")
			buf.WriteString(nested.String())
			buf.WriteString("]")
			continue
		}
		buf.WriteString(arg.String())
	}
	return buf.String()
}

func (l *Literal) String() string {
	return l.Value
}
