/*
File    : susumu/builtin/json.go

The "json" domain module (SPEC_FULL.md §5): encode/decode Susumu values as
JSON text. Grounded on CWBudde-go-dws's use of tidwall/gjson (read) and
tidwall/sjson (write) for schemaless JSON manipulation rather than
encoding/json's struct-tag-driven model, which fits Susumu's untyped
Object/Array values poorly.
*/
package builtin

import (
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/susumu-lang/susumu/diagnostics"
	"github.com/susumu-lang/susumu/values"
)

func init() {
	registerModule("json",
		&Builtin{Name: "json_encode", Callback: biJSONEncode},
		&Builtin{Name: "json_decode", Callback: biJSONDecode},
	)
}

func biJSONEncode(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("json_encode", 1, len(args))
	}
	root := ""
	if _, ok := args[0].(*values.Object); !ok {
		root = "v"
	}
	doc, err := encodeInto("{}", root, args[0])
	if err != nil {
		return nil, typeErr("json_encode", err.Error())
	}
	if _, ok := args[0].(*values.Object); ok {
		return &values.String{Value: doc}, nil
	}
	// Non-object top-level values are wrapped at "v" during encodeInto, so
	// unwrap that single field back out for the returned document.
	return &values.String{Value: gjson.Parse(doc).Get("v").Raw}, nil
}

// encodeInto writes v into doc at path (root path is ""), returning the
// updated document text.
func encodeInto(doc string, path string, v values.Value) (string, error) {
	switch val := v.(type) {
	case *values.Number:
		return sjsonSet(doc, path, val.Value)
	case *values.String:
		return sjsonSet(doc, path, val.Value)
	case *values.Bool:
		return sjsonSet(doc, path, val.Value)
	case *values.Null:
		return sjsonSet(doc, path, nil)
	case *values.Array:
		cur := doc
		var err error
		for i, e := range val.Elements {
			cur, err = encodeInto(cur, fmt.Sprintf("%s.%d", path, i), e)
			if err != nil {
				return "", err
			}
		}
		if len(val.Elements) == 0 {
			cur, err = sjson.SetRaw(cur, trimLeadingDot(path), "[]")
		}
		return cur, err
	case *values.Object:
		cur := doc
		var err error
		for _, k := range val.Keys {
			cur, err = encodeInto(cur, joinPath(path, k), val.Pairs[k])
			if err != nil {
				return "", err
			}
		}
		if len(val.Keys) == 0 && path != "" {
			cur, err = sjson.SetRaw(cur, trimLeadingDot(path), "{}")
		}
		return cur, err
	default:
		return "", fmt.Errorf("cannot encode %s as JSON", v.Kind())
	}
}

func sjsonSet(doc, path string, v interface{}) (string, error) {
	if path == "" {
		return sjson.Set(doc, "v", v)
	}
	return sjson.Set(doc, trimLeadingDot(path), v)
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func trimLeadingDot(path string) string {
	if len(path) > 0 && path[0] == '.' {
		return path[1:]
	}
	return path
}

func biJSONDecode(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("json_decode", 1, len(args))
	}
	text, err := asString("json_decode", args[0])
	if err != nil {
		return nil, err
	}
	if !gjson.Valid(text) {
		return nil, diagnostics.New(diagnostics.TypeError, 0, 0, "json_decode: invalid JSON")
	}
	return decodeResult(gjson.Parse(text)), nil
}

func decodeResult(r gjson.Result) values.Value {
	switch r.Type {
	case gjson.Null:
		return values.NullValue
	case gjson.False:
		return &values.Bool{Value: false}
	case gjson.True:
		return &values.Bool{Value: true}
	case gjson.Number:
		return &values.Number{Value: r.Num}
	case gjson.String:
		return &values.String{Value: r.Str}
	}
	if r.IsArray() {
		elements := make([]values.Value, 0)
		for _, e := range r.Array() {
			elements = append(elements, decodeResult(e))
		}
		return &values.Array{Elements: elements}
	}
	if r.IsObject() {
		obj := values.NewObject()
		r.ForEach(func(key, value gjson.Result) bool {
			obj.Set(key.String(), decodeResult(value))
			return true
		})
		return obj
	}
	return values.NullValue
}
