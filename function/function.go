/*
File    : susumu/function/function.go

Package function defines the user-defined function closure value, kept in
its own package — mirroring akashmaji946-go-mix/function/function.go's
separation — because it depends on parser and scope, and values cannot
import those without an import cycle (scope already imports values).
*/
package function

import (
	"fmt"
	"strings"

	"github.com/susumu-lang/susumu/parser"
	"github.com/susumu-lang/susumu/scope"
	"github.com/susumu-lang/susumu/values"
)

// Function is a user-defined Susumu function: its declared name, parameter
// names, body block, and the scope it closed over at definition time.
type Function struct {
	Name   string
	Params []string
	Body   *parser.Block
	Env    *scope.Scope
}

func (f *Function) Kind() values.Kind    { return values.FunctionKind }
func (f *Function) String() string       { return fmt.Sprintf("function(%s)", f.Name) }
func (f *Function) CallableName() string { return f.Name }

func (f *Function) Inspect() string {
	return fmt.Sprintf("<function[%s(%s)]>", f.Name, strings.Join(f.Params, ", "))
}
