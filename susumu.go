/*
File    : susumu/susumu.go

Package susumu is the library entry point: Parse, Evaluate, Run, and
Trace tie the lexer, parser, and evaluator into the four operations
SPEC_FULL.md §6.5 names for host programs embedding the language.
*/
package susumu

import (
	"bytes"
	"io"

	"github.com/susumu-lang/susumu/config"
	"github.com/susumu-lang/susumu/eval"
	"github.com/susumu-lang/susumu/parser"
	"github.com/susumu-lang/susumu/scope"
	"github.com/susumu-lang/susumu/values"
)

// Parse lexes and parses source, returning the first parse diagnostic (if
// any) as an error. A non-nil Program is still returned alongside a parse
// error so a host can inspect the partial tree.
func Parse(source string) (*parser.Program, error) {
	p := parser.New(source)
	prog := p.Parse()
	if p.HasErrors() {
		return prog, p.Errors[0]
	}
	return prog, nil
}

// Evaluate runs an already-parsed Program against w (print/println's
// destination) under cfg, returning the result of main() when the program
// defines a main function and the value of its last top-level item otherwise.
func Evaluate(prog *parser.Program, w io.Writer, cfg config.Config) (values.Value, error) {
	ev := eval.New(w, cfg)
	return ev.Run(prog)
}

// Run parses and evaluates source in one step, the common case for a host
// program that just wants a result (spec.md §5's embedding scenario).
func Run(source string, w io.Writer, cfg config.Config) (values.Value, error) {
	prog, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return Evaluate(prog, w, cfg)
}

// TraceResult pairs a Run's outcome with the step-by-step arrow-chain
// trace recorded along the way (SPEC_FULL.md §6.2).
type TraceResult struct {
	Value  values.Value
	Output string
	Trace  []eval.TraceEntry
}

// Trace parses and evaluates source with tracing enabled, capturing both
// the program's print/println output and its arrow-chain trace.
func Trace(source string, cfg config.Config) (*TraceResult, error) {
	prog, err := Parse(source)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	ev := eval.New(&buf, cfg)
	ev.EnableTracing()
	v, err := ev.Run(prog)
	if err != nil {
		return nil, err
	}
	return &TraceResult{Value: v, Output: buf.String(), Trace: ev.TraceEntries()}, nil
}

// NewScope returns a fresh root scope, exposed for hosts that want to
// pre-populate bindings before calling Evaluate via a lower-level path.
func NewScope() *scope.Scope { return scope.New(nil) }
