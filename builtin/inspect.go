/*
File    : susumu/builtin/inspect.go

The "inspect" domain module (SPEC_FULL.md §5): a deep structural dump
used for debugging Susumu values from within Susumu itself, grounded on
akashmaji946-go-mix's own go.mod dependency on davecgh/go-spew, which
the teacher otherwise leaves unused in its runtime.
*/
package builtin

import (
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/susumu-lang/susumu/values"
)

func init() {
	registerModule("inspect",
		&Builtin{Name: "inspect", Callback: biInspect},
	)
}

func biInspect(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("inspect", 1, len(args))
	}
	return &values.String{Value: spew.Sdump(args[0])}, nil
}
