// Package runtime wires the parser, key-name catalog, and function registry
// into a flow-key session usable from a shell or CLI.
package runtime

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/saylorsolutions/flowkey/pkg/catalog"
	"github.com/saylorsolutions/flowkey/pkg/dsl"
	"github.com/saylorsolutions/flowkey/pkg/keyfunc"
)

var (
	ErrInvalidDefinitions = errors.New("invalid definitions")
)

// Session parses key definitions against a fixed function registry. It holds
// no per-line state: every Parse call is independent, and the registry and
// catalog are read-only once the session exists.
type Session struct {
	log hclog.Logger
	reg *keyfunc.Registration
	p   *dsl.Parser
}

// NewSession returns a Session using reg to validate function calls.
// A nil reg selects the builtin registry.
func NewSession(log hclog.Logger, reg *keyfunc.Registration) *Session {
	if reg == nil {
		reg = keyfunc.Default()
	}
	return &Session{
		log: log.Named("session"),
		reg: reg,
		p:   dsl.NewParser(reg),
	}
}

// Parse parses one line of key definition text.
func (s *Session) Parse(line string) (*dsl.KeyDefinition, error) {
	return s.p.Parse(line)
}

// Render returns an indented structural rendering of a parsed definition.
func (s *Session) Render(def *dsl.KeyDefinition) (string, error) {
	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

const replHelp = `[Commands]
parse-key DEFINITION
  Parse DEFINITION and print its structure, or the parse error and offset.
keys
  List the key names the catalog recognizes.
functions
  List the registered key functions with their documentation.
help
  Print this help text.
quit | exit
  Leave the shell.

[DSL Syntax]
A key definition is one or more keys separated by commas. Order matters: it
defines the field order of the composite grouping key.

A key is either a recognized key name, or a key function call:
  FUNCTION:ARG[:ARG ...]

An argument may be a bare token or a nested function call in brackets:
  group:[country:ip6source]:trusted:bad

Run 'keys' and 'functions' for what is currently recognized.
`

// Repl reads lines from in and renders parse results to out until
// end-of-input or an explicit quit. A failed parse is reported and the loop
// continues; one bad line never ends the session.
func (s *Session) Repl(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "flowkey interactive shell. Type 'help' for commands.")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line == "quit" || line == "exit":
			return nil
		case line == "help":
			fmt.Fprint(out, replHelp)
		case line == "keys":
			for _, name := range catalog.Names() {
				fmt.Fprintln(out, name)
			}
		case line == "functions":
			fmt.Fprint(out, s.reg.AllDocs())
		case strings.HasPrefix(line, "parse-key"):
			s.parseAndPrint(out, strings.TrimSpace(strings.TrimPrefix(line, "parse-key")))
		default:
			fmt.Fprintf(out, "Unrecognized command: '%s'. Type 'help' for commands.\n", line)
		}
	}
}

func (s *Session) parseAndPrint(out io.Writer, text string) {
	def, err := s.Parse(text)
	if err != nil {
		fmt.Fprintf(out, "Invalid key definition: %v\n", err)
		return
	}
	rendered, err := s.Render(def)
	if err != nil {
		fmt.Fprintf(out, "Failed to render definition: %v\n", err)
		return
	}
	fmt.Fprintln(out, rendered)
}

// VetFile parses every line of a definitions file, logging a verdict per
// line. Blank lines and '#' comments are skipped. All lines are checked even
// if an early one fails; the returned error reports the failure count.
func (s *Session) VetFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return s.vet(filename, f)
}

func (s *Session) vet(name string, r io.Reader) error {
	var (
		scanner = bufio.NewScanner(r)
		lineNo  int
		failed  int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if skipLine(line) {
			continue
		}
		def, err := s.Parse(line)
		if err != nil {
			failed++
			s.log.Error("Invalid key definition", "file", name, "line", lineNo, "error", err)
			continue
		}
		s.log.Debug("Valid key definition", "file", name, "line", lineNo, "definition", def.String())
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d invalid definition(s) in %s", ErrInvalidDefinitions, failed, name)
	}
	return nil
}

func skipLine(line string) bool {
	return line == "" || strings.HasPrefix(line, "#")
}
