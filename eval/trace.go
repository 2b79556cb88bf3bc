/*
File    : susumu/eval/trace.go

Execution tracing (SPEC_FULL.md §6.2): an append-only, non-semantic log
of arrow-chain steps, recorded only after Evaluator.EnableTracing is called.
This is the textual evaluator trace spec.md's Non-goals allow in place
of a full debugging UI: structured data a host program can render, not
a feature of the language itself.
*/
package eval

import (
	"fmt"

	"github.com/susumu-lang/susumu/parser"
	"github.com/susumu-lang/susumu/values"
)

// TraceEntry records one arrow-chain step: where it happened, which
// direction, what the operand evaluated to (for Forward: the callee, or the
// selected branch's result for an `i` step; for Backward/Mut: the
// argument/right-hand value), and the accumulator value
// immediately after the step was applied.
type TraceEntry struct {
	Position         parser.Pos
	Direction        parser.ArrowDirection
	Operand          values.Value
	AccumulatorAfter values.Value
}

func (t TraceEntry) String() string {
	dir := map[parser.ArrowDirection]string{parser.Forward: "->", parser.Backward: "<-", parser.Mut: "<~"}[t.Direction]
	return fmt.Sprintf("%d:%d %s %s => %s", t.Position.Line, t.Position.Column, dir, t.Operand.Inspect(), t.AccumulatorAfter.Inspect())
}

// EnableTracing turns on step recording; Trace accumulates across every
// arrow chain evaluated afterward until ResetTrace is called.
func (e *Evaluator) EnableTracing() { e.tracing = true }

// ResetTrace discards any recorded trace entries without disabling tracing.
func (e *Evaluator) ResetTrace() { e.trace = nil }

// TraceEntries returns every entry recorded since the last ResetTrace.
func (e *Evaluator) TraceEntries() []TraceEntry { return e.trace }

func (e *Evaluator) recordTrace(pos parser.Pos, dir parser.ArrowDirection, operand, acc values.Value) {
	if !e.tracing {
		return
	}
	e.trace = append(e.trace, TraceEntry{Position: pos, Direction: dir, Operand: operand, AccumulatorAfter: acc})
}
