package dsl

import (
	"errors"
	"fmt"
)

// Error kinds. Every parse failure unwraps to exactly one of these, so
// callers branch with errors.Is rather than matching message text.
var (
	ErrSyntax             = errors.New("syntax error")
	ErrUnknownKeyName     = errors.New("unknown key name")
	ErrUnknownKeyFunction = errors.New("unknown key function")
	ErrArityMismatch      = errors.New("wrong number of arguments")
	ErrEmptyDefinition    = errors.New("empty key definition")
)

// SyntaxError reports input that does not match the grammar, positioned at
// the rune offset of the offending text.
type SyntaxError struct {
	Offset   int
	Expected string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at offset %d: expected %s", ErrSyntax, e.Offset, e.Expected)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// UnknownKeyNameError reports a bare identifier that is not present in the
// key-name catalog.
type UnknownKeyNameError struct {
	Name   string
	Offset int
}

func (e *UnknownKeyNameError) Error() string {
	return fmt.Sprintf("%v '%s' at offset %d", ErrUnknownKeyName, e.Name, e.Offset)
}

func (e *UnknownKeyNameError) Unwrap() error {
	return ErrUnknownKeyName
}

// UnknownKeyFunctionError reports a function-call identifier that is not
// present in the function registry. Distinct from UnknownKeyNameError so a
// misspelled function is not misreported as a bad key name.
type UnknownKeyFunctionError struct {
	Name   string
	Offset int
}

func (e *UnknownKeyFunctionError) Error() string {
	return fmt.Sprintf("%v '%s' at offset %d", ErrUnknownKeyFunction, e.Name, e.Offset)
}

func (e *UnknownKeyFunctionError) Unwrap() error {
	return ErrUnknownKeyFunction
}

// ArityMismatchError reports a function call whose argument count does not
// satisfy the registered shape.
type ArityMismatchError struct {
	Function string
	Expected string
	Got      int
	Offset   int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%v for '%s' at offset %d: expected %s, got %d",
		ErrArityMismatch, e.Function, e.Offset, e.Expected, e.Got)
}

func (e *ArityMismatchError) Unwrap() error {
	return ErrArityMismatch
}
