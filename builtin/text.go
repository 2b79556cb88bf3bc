/*
File    : susumu/builtin/text.go

The "text" domain module (SPEC_FULL.md §5): locale-aware text case
folding, grounded on CWBudde-go-dws's go.mod promotion of
golang.org/x/text for title-casing beyond what strings.ToTitle offers.
*/
package builtin

import (
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/susumu-lang/susumu/values"
)

var titleCaser = cases.Title(language.English)
var foldCaser = cases.Fold()

func init() {
	registerModule("text",
		&Builtin{Name: "title_case", Callback: biTitleCase},
		&Builtin{Name: "fold_case", Callback: biFoldCase},
	)
}

func biTitleCase(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("title_case", 1, len(args))
	}
	s, err := asString("title_case", args[0])
	if err != nil {
		return nil, err
	}
	return &values.String{Value: titleCaser.String(s)}, nil
}

func biFoldCase(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("fold_case", 1, len(args))
	}
	s, err := asString("fold_case", args[0])
	if err != nil {
		return nil, err
	}
	return &values.String{Value: foldCaser.String(s)}, nil
}
