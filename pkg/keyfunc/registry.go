// Package keyfunc describes the key functions the flow-key DSL recognizes.
//
// The registry is an open, data-driven table: each entry declares the shape a
// function call must have (argument count and per-position kinds), and the
// parser validates calls against it generically. Supporting a new function
// means one Register call, not new grammar code.
package keyfunc

import (
	"fmt"
	"sort"
	"strings"
)

// ArgKind declares what a single argument position accepts.
type ArgKind int

const (
	// Literal positions accept a bare token only. Brackets are a syntax
	// error here; group labels are the canonical example.
	Literal ArgKind = iota
	// KeyOrLiteral positions accept a bracketed nested function call, a
	// catalog key name, or a bare token.
	KeyOrLiteral
)

func (k ArgKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case KeyOrLiteral:
		return "key or literal"
	default:
		return fmt.Sprintf("argkind(%d)", int(k))
	}
}

// Arity declares how many arguments a function accepts: an exact count, or a
// variadic minimum.
type Arity struct {
	min      int
	variadic bool
}

// Exactly returns an Arity accepting exactly n arguments.
func Exactly(n int) Arity {
	return Arity{min: n}
}

// AtLeast returns an Arity accepting n or more arguments.
func AtLeast(n int) Arity {
	return Arity{min: n, variadic: true}
}

// Accepts reports whether a call with n arguments satisfies the arity.
func (a Arity) Accepts(n int) bool {
	if a.variadic {
		return n >= a.min
	}
	return n == a.min
}

// Min returns the minimum accepted argument count.
func (a Arity) Min() int {
	return a.min
}

func (a Arity) String() string {
	if a.variadic {
		return fmt.Sprintf("at least %d", a.min)
	}
	return fmt.Sprintf("exactly %d", a.min)
}

// Shape describes one registered key function.
type Shape struct {
	// Name is the function's DSL spelling.
	Name string
	// Arity constrains the total argument count.
	Arity Arity
	// ArgKinds declares the kind of each leading argument position.
	ArgKinds []ArgKind
	// TrailingLabels marks every position past ArgKinds as a literal
	// label. Label order is preserved by the parser and is significant.
	TrailingLabels bool
}

// Kind returns the declared kind for argument position i.
func (s Shape) Kind(i int) ArgKind {
	if i < len(s.ArgKinds) {
		return s.ArgKinds[i]
	}
	if s.TrailingLabels {
		return Literal
	}
	if n := len(s.ArgKinds); n > 0 {
		return s.ArgKinds[n-1]
	}
	return KeyOrLiteral
}

// Registration is the table of key function shapes known to a parser.
// It is mutated only while being built, and treated as read-only once handed
// to a parser, so it may be shared across any number of concurrent parses.
type Registration struct {
	shapes map[string]Shape
	docs   map[string]string
}

func NewRegistration() *Registration {
	return &Registration{
		shapes: map[string]Shape{},
		docs:   map[string]string{},
	}
}

// Register adds a function shape to the table.
func (r *Registration) Register(s Shape) {
	if s.Name == "" {
		panic("registering key function with empty name")
	}
	if _, ok := r.shapes[s.Name]; ok {
		panic("key function '" + s.Name + "' is already registered")
	}
	if len(s.ArgKinds) > s.Arity.min {
		panic("key function '" + s.Name + "' declares more argument kinds than its minimum arity")
	}
	r.shapes[s.Name] = s
}

// Document attaches usage documentation to a registered function. It's
// recommended to include the call syntax in this documentation.
func (r *Registration) Document(name, doc string) {
	r.docs[name] = doc
}

// Lookup retrieves a function shape by name.
// The second return value reports whether the name matches a known function.
func (r *Registration) Lookup(name string) (Shape, bool) {
	s, ok := r.shapes[name]
	return s, ok
}

// Names returns all registered function names in sorted order.
func (r *Registration) Names() []string {
	names := make([]string, 0, len(r.shapes))
	for name := range r.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AllDocs returns the documentation for every registered function, in
// alphabetical order by name.
func (r *Registration) AllDocs() string {
	var buf strings.Builder
	for _, name := range r.Names() {
		doc, ok := r.docs[name]
		if !ok {
			doc = fmt.Sprintf("%s (%s arguments)", name, r.shapes[name].Arity)
		}
		if !strings.HasSuffix(doc, "\n") {
			doc += "\n"
		}
		buf.WriteString(doc)
		buf.WriteString("\n")
	}
	return buf.String()
}
