package keyfunc

import "sync"

var (
	defaultOnce sync.Once
	defaultReg  *Registration
)

// Default returns the process-wide registration of builtin key functions.
// It is built once and never mutated afterward.
func Default() *Registration {
	defaultOnce.Do(func() {
		defaultReg = Builtin()
	})
	return defaultReg
}

// Builtin returns a fresh Registration seeded with the builtin key functions.
func Builtin() *Registration {
	reg := NewRegistration()

	reg.Register(Shape{
		Name:     "country",
		Arity:    Exactly(1),
		ArgKinds: []ArgKind{Literal},
	})
	reg.Document("country", `country:KEY

Resolves an address-valued key to its two letter country code.`)

	reg.Register(Shape{
		Name:     "asn",
		Arity:    Exactly(1),
		ArgKinds: []ArgKind{Literal},
	})
	reg.Document("asn", `asn:KEY

Resolves an address-valued key to its origin autonomous system number.`)

	reg.Register(Shape{
		Name:     "mask",
		Arity:    Exactly(2),
		ArgKinds: []ArgKind{KeyOrLiteral, Literal},
	})
	reg.Document("mask", `mask:KEY:BITS

Masks an address-valued key to its leading BITS bits, grouping flows by
prefix rather than by individual address.`)

	reg.Register(Shape{
		Name:           "group",
		Arity:          AtLeast(2),
		ArgKinds:       []ArgKind{KeyOrLiteral},
		TrailingLabels: true,
	})
	reg.Document("group", `group:KEY:LABEL[:LABEL ...]

Classifies the wrapped key's value into one of the named groups. The label
list is ordered and declares the buckets flows may fall into.`)

	return reg
}
