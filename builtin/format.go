/*
File    : susumu/builtin/format.go

The "format" domain module (SPEC_FULL.md §5): human-readable number and
size formatting, grounded on mcgru-funxy's go.mod use of
dustin/go-humanize for exactly this purpose.
*/
package builtin

import (
	"io"

	"github.com/dustin/go-humanize"

	"github.com/susumu-lang/susumu/values"
)

func init() {
	registerModule("format",
		&Builtin{Name: "human_bytes", Callback: biHumanBytes},
		&Builtin{Name: "human_ordinal", Callback: biHumanOrdinal},
		&Builtin{Name: "human_comma", Callback: biHumanComma},
	)
}

func biHumanBytes(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("human_bytes", 1, len(args))
	}
	n, err := asNumber("human_bytes", args[0])
	if err != nil {
		return nil, err
	}
	return &values.String{Value: humanize.Bytes(uint64(n))}, nil
}

func biHumanOrdinal(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("human_ordinal", 1, len(args))
	}
	n, err := asNumber("human_ordinal", args[0])
	if err != nil {
		return nil, err
	}
	return &values.String{Value: humanize.Ordinal(int(n))}, nil
}

func biHumanComma(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("human_comma", 1, len(args))
	}
	n, err := asNumber("human_comma", args[0])
	if err != nil {
		return nil, err
	}
	return &values.String{Value: humanize.Comma(int64(n))}, nil
}
