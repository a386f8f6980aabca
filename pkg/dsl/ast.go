// Package dsl parses one-line flow-key definitions into a validated AST.
//
// A key definition is a comma-separated list of keys. Each key is either a
// catalog-recognized key name, or a key function call of the form
// name:arg[:arg ...], where an argument may itself be a bracketed nested
// function call. The set of recognized key names lives in pkg/catalog, and
// the set of recognized functions in pkg/keyfunc; the grammar consults both
// but hardcodes neither.
package dsl

import (
	"github.com/saylorsolutions/flowkey/pkg/catalog"
)

type AstType int

const (
	KEY_NAME AstType = iota
	KEY_FUNCTION
	LITERAL
)

// AstNode represents a node of a parsed key definition.
type AstNode interface {
	// Offset returns the rune offset of the node's first character in the
	// parsed line.
	Offset() int
	// Text returns the source text the node was parsed from.
	Text() string
	Type() AstType
}

type ast struct {
	AstOffset int     `json:"offset"`
	AstText   string  `json:"text"`
	AstType   AstType `json:"type"`
}

func (a *ast) Offset() int {
	return a.AstOffset
}
func (a *ast) Text() string {
	return a.AstText
}
func (a *ast) Type() AstType {
	return a.AstType
}

func (a *ast) setVals(t token, typ AstType) {
	a.AstOffset = t.Off
	a.AstText = t.Text
	a.AstType = typ
}
func (a *ast) append(t token) {
	a.AstText += t.Text
}
func (a *ast) appendText(s string) {
	a.AstText += s
}

// KeyDefinition is the ordered, non-empty list of keys describing one
// flow-key configuration. Key order defines the composite grouping key's
// field order and is preserved exactly as written.
//
// A KeyDefinition owns its contents outright: nodes hold no back-references
// and are never shared between parses.
type KeyDefinition struct {
	Keys []Key `json:"keys"`
}

// Key is a single component of a key definition: a catalog key name or a key
// function call.
type Key interface {
	AstNode
	// String renders the key as canonical DSL text.
	String() string
	keyNode()
}

// Argument is a key function argument: a bare literal token, a catalog key
// name, or a bracket-delimited nested function call.
type Argument interface {
	AstNode
	// String renders the argument as canonical DSL text, without brackets.
	String() string
	argNode()
}

// KeyName is a catalog-recognized key. Name always corresponds to a catalog
// entry; unrecognized identifiers fail to parse instead of being retained.
type KeyName struct {
	ast
	Name catalog.KeyName `json:"name"`
}

func (*KeyName) keyNode() {}
func (*KeyName) argNode() {}

// FunctionCall is a key function application. Args structurally matches the
// arity and per-position kinds declared by the registry entry for Name.
type FunctionCall struct {
	ast
	Name string     `json:"function"`
	Args []Argument `json:"args"`
}

func (*FunctionCall) keyNode() {}
func (*FunctionCall) argNode() {}

// Literal is a bare token used as a function argument, such as a group label.
type Literal struct {
	ast
	Value string `json:"value"`
}

func (*Literal) argNode() {}
