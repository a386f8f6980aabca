package dsl

import (
	"strings"

	"github.com/saylorsolutions/flowkey/pkg/catalog"
	"github.com/saylorsolutions/flowkey/pkg/keyfunc"
)

// Parser parses key definition lines against a function registry. The
// registry is read-only to the parser, so a Parser is safe for concurrent
// use; each Parse call is independent and carries no state between lines.
type Parser struct {
	reg *keyfunc.Registration
}

// NewParser returns a Parser validating function calls against reg.
// A nil reg selects the builtin registry.
func NewParser(reg *keyfunc.Registration) *Parser {
	if reg == nil {
		reg = keyfunc.Default()
	}
	return &Parser{reg: reg}
}

// Parse parses one line of key definition text with the builtin function
// registry.
func Parse(text string) (*KeyDefinition, error) {
	return NewParser(nil).Parse(text)
}

// Parse parses one line of key definition text into a KeyDefinition.
//
// The line is trimmed of leading and trailing whitespace first; interior
// whitespace is not part of the grammar and fails with a SyntaxError. The
// parse is atomic: if any key in the definition is invalid the whole parse
// fails, and no partial AST is returned.
func (p *Parser) Parse(text string) (*KeyDefinition, error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return nil, ErrEmptyDefinition
	}
	l := lexString(text)
	str := l.stream()
	go func() {
		l.lex()
	}()
	def, err := p.parseDefinition(str)
	if err != nil {
		consumeTokens(l.tokens)
		return nil, err
	}
	return def, nil
}

func consumeTokens(ch <-chan token) {
	for range ch {
	}
}

func unexpected(t token, expected string) error {
	if t.Type == tErr {
		return lexError(t)
	}
	return &SyntaxError{Offset: t.Off, Expected: expected}
}

func lexError(t token) error {
	return &SyntaxError{Offset: t.Off, Expected: "identifier or separator"}
}

func (p *Parser) parseDefinition(str *tokenStream) (*KeyDefinition, error) {
	def := new(KeyDefinition)
	for {
		key, err := p.parseKey(str)
		if err != nil {
			return nil, err
		}
		def.Keys = append(def.Keys, key)

		t := str.next()
		switch t.Type {
		case tEof:
			return def, nil
		case tComma:
			if str.peek().Type == tEof {
				return nil, &SyntaxError{Offset: t.Off, Expected: "key after ','"}
			}
		default:
			return nil, unexpected(t, "',' or end of input")
		}
	}
}

// parseKey disambiguates with a fixed tie-break: an identifier immediately
// followed by ':' is always a function call, never reinterpreted as a key
// name. Only a bare identifier falls back to a catalog lookup.
func (p *Parser) parseKey(str *tokenStream) (Key, error) {
	id := str.peek()
	if id.Type != tIdentifier {
		return nil, unexpected(id, "key name or key function")
	}
	str.next()
	if str.peek().Type == tColon {
		str.pushBack(id)
		return p.parseFunctionCall(str)
	}
	return p.keyName(id)
}

func (p *Parser) keyName(id token) (*KeyName, error) {
	name, ok := catalog.Lookup(id.Text)
	if !ok {
		return nil, &UnknownKeyNameError{Name: id.Text, Offset: id.Off}
	}
	kn := new(KeyName)
	kn.setVals(id, KEY_NAME)
	kn.Name = name
	return kn, nil
}

func (p *Parser) parseFunctionCall(str *tokenStream) (*FunctionCall, error) {
	id := str.next()
	if id.Type != tIdentifier {
		return nil, unexpected(id, "function name")
	}
	if c := str.peek(); c.Type != tColon {
		return nil, unexpected(c, "':'")
	}
	shape, ok := p.reg.Lookup(id.Text)
	if !ok {
		return nil, &UnknownKeyFunctionError{Name: id.Text, Offset: id.Off}
	}

	call := new(FunctionCall)
	call.setVals(id, KEY_FUNCTION)
	call.Name = id.Text

	for str.peek().Type == tColon {
		call.append(str.next())
		arg, err := p.parseArgument(str, shape, len(call.Args))
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if nested, ok := arg.(*FunctionCall); ok {
			call.appendText("[" + nested.Text() + "]")
		} else {
			call.appendText(arg.Text())
		}
	}

	if !shape.Arity.Accepts(len(call.Args)) {
		// A surplus call points at the first argument past the accepted
		// count; a short call has no such argument to point at, so it
		// points at the call itself.
		off := call.Offset()
		if min := shape.Arity.Min(); len(call.Args) > min {
			off = call.Args[min].Offset()
		}
		return nil, &ArityMismatchError{
			Function: call.Name,
			Expected: shape.Arity.String(),
			Got:      len(call.Args),
			Offset:   off,
		}
	}
	return call, nil
}

// parseArgument parses the argument at position pos, honoring the kind the
// shape declares for it. Brackets delimit a nested function call and are only
// legal in a KeyOrLiteral position; a bare identifier in such a position
// resolves through the catalog before falling back to a literal.
func (p *Parser) parseArgument(str *tokenStream, shape keyfunc.Shape, pos int) (Argument, error) {
	t := str.next()
	switch t.Type {
	case tLbracket:
		if shape.Kind(pos) != keyfunc.KeyOrLiteral {
			return nil, &SyntaxError{Offset: t.Off, Expected: "literal argument for '" + shape.Name + "'"}
		}
		nested, err := p.parseFunctionCall(str)
		if err != nil {
			return nil, err
		}
		if rb := str.next(); rb.Type != tRbracket {
			return nil, unexpected(rb, "']'")
		}
		return nested, nil
	case tIdentifier:
		if shape.Kind(pos) == keyfunc.KeyOrLiteral {
			if name, ok := catalog.Lookup(t.Text); ok {
				kn := new(KeyName)
				kn.setVals(t, KEY_NAME)
				kn.Name = name
				return kn, nil
			}
		}
		lit := new(Literal)
		lit.setVals(t, LITERAL)
		lit.Value = t.Text
		return lit, nil
	default:
		return nil, unexpected(t, "argument")
	}
}
