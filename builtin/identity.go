/*
File    : susumu/builtin/identity.go

The "identity" domain module (SPEC_FULL.md §5): unique-identifier
generation, grounded on mcgru-funxy's go.mod use of google/uuid.
*/
package builtin

import (
	"io"

	"github.com/google/uuid"

	"github.com/susumu-lang/susumu/values"
)

func init() {
	registerModule("identity",
		&Builtin{Name: "uuid", Callback: biUUID},
	)
}

func biUUID(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 0 {
		return nil, arityErr("uuid", 0, len(args))
	}
	return &values.String{Value: uuid.NewString()}, nil
}
