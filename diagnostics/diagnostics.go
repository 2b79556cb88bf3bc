/*
File    : susumu/diagnostics/diagnostics.go

Package diagnostics defines the single error shape shared by the lexer,
parser, and evaluator (spec.md §6.3, §7): a Diagnostic carries a Kind, a
message, and a source position. This generalizes the teacher's ad hoc
`[line:column] message`-formatted errors (akashmaji946-go-mix's
`Evaluator.CreateError` and `Parser.addError`) into one exported type usable
across all three subsystems.
*/
package diagnostics

import "fmt"

// Kind enumerates the error kinds observable to tests (spec.md §7).
type Kind string

const (
	LexError        Kind = "LexError"
	ParseError      Kind = "ParseError"
	NameError       Kind = "NameError"
	TypeError       Kind = "TypeError"
	ArityError      Kind = "ArityError"
	ArithmeticError Kind = "ArithmeticError"
	MatchError      Kind = "MatchError"
	ControlError    Kind = "ControlError"
	ResourceError   Kind = "ResourceError"
)

// Diagnostic is the sole error value surfaced by parse/evaluate/run.
type Diagnostic struct {
	Kind    Kind
	Message string
	Line    int
	Column  int
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("[%d:%d] %s: %s", d.Line, d.Column, d.Kind, d.Message)
}

// New builds a Diagnostic with a formatted message.
func New(kind Kind, line, column int, format string, a ...interface{}) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: fmt.Sprintf(format, a...), Line: line, Column: column}
}
