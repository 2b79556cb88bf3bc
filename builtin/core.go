/*
File    : susumu/builtin/core.go

The required builtin set from spec.md §4.5 plus the array/string/object
helpers SPEC_FULL.md §4.5 adds, grounded on akashmaji946-go-mix's
std/arrays.go, std/strings.go and std/common.go (argument-count checks,
one function per file-of-concern). Builtins report diagnostics with
Line/Column left at 0; the evaluator stamps the call-site position when
it surfaces the error (see eval's finalize and evalCall).
*/
package builtin

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/susumu-lang/susumu/diagnostics"
	"github.com/susumu-lang/susumu/values"
)

func arityErr(name string, want int, got int) error {
	return diagnostics.New(diagnostics.ArityError, 0, 0, "%s expects %d argument(s), got %d", name, want, got)
}

func typeErr(name string, msg string) error {
	return diagnostics.New(diagnostics.TypeError, 0, 0, "%s: %s", name, msg)
}

func asNumber(name string, v values.Value) (float64, error) {
	n, ok := v.(*values.Number)
	if !ok {
		return 0, typeErr(name, fmt.Sprintf("expected number, got %s", v.Kind()))
	}
	return n.Value, nil
}

func asString(name string, v values.Value) (string, error) {
	s, ok := v.(*values.String)
	if !ok {
		return "", typeErr(name, fmt.Sprintf("expected string, got %s", v.Kind()))
	}
	return s.Value, nil
}

func asArray(name string, v values.Value) (*values.Array, error) {
	a, ok := v.(*values.Array)
	if !ok {
		return nil, typeErr(name, fmt.Sprintf("expected array, got %s", v.Kind()))
	}
	return a, nil
}

func asObject(name string, v values.Value) (*values.Object, error) {
	o, ok := v.(*values.Object)
	if !ok {
		return nil, typeErr(name, fmt.Sprintf("expected object, got %s", v.Kind()))
	}
	return o, nil
}

func boolVal(b bool) *values.Bool { return &values.Bool{Value: b} }
func numVal(f float64) *values.Number { return &values.Number{Value: f} }

func init() {
	register(
		&Builtin{Name: "add", Callback: biAdd},
		&Builtin{Name: "subtract", Callback: biSubtract},
		&Builtin{Name: "multiply", Callback: biMultiply},
		&Builtin{Name: "divide", Callback: biDivide},
		&Builtin{Name: "print", Callback: biPrint},
		&Builtin{Name: "println", Callback: biPrintln},
		&Builtin{Name: "length", Callback: biLength},
		&Builtin{Name: "first", Callback: biFirst},
		&Builtin{Name: "last", Callback: biLast},
		&Builtin{Name: "to_string", Callback: biToString},
		&Builtin{Name: "to_number", Callback: biToNumber},
		&Builtin{Name: "type_of", Callback: biTypeOf},
		&Builtin{Name: "concat", Callback: biConcat},

		&Builtin{Name: "push", Callback: biPush},
		&Builtin{Name: "pop", Callback: biPop},
		&Builtin{Name: "reverse", Callback: biReverse},
		&Builtin{Name: "contains", Callback: biContains},
		&Builtin{Name: "index_of", Callback: biIndexOf},
		&Builtin{Name: "slice", Callback: biSlice},
		&Builtin{Name: "join", Callback: biJoin},
		&Builtin{Name: "split", Callback: biSplit},
		&Builtin{Name: "upper", Callback: biUpper},
		&Builtin{Name: "lower", Callback: biLower},
		&Builtin{Name: "trim", Callback: biTrim},
		&Builtin{Name: "keys", Callback: biKeys},
		&Builtin{Name: "object_values", Callback: biObjectValues},
		&Builtin{Name: "has_key", Callback: biHasKey},
		&Builtin{Name: "range", Callback: biRange},
		&Builtin{Name: "abs", Callback: biAbs},
		&Builtin{Name: "min", Callback: biMin},
		&Builtin{Name: "max", Callback: biMax},
		&Builtin{Name: "round", Callback: biRound},
		&Builtin{Name: "floor", Callback: biFloor},
		&Builtin{Name: "ceil", Callback: biCeil},
	)
}

// biAdd is variadic under convergence (spec.md §4.5): `5 -> add <- 3 <- 2`
// sums all three, not just the first two.
func biAdd(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) < 2 {
		return nil, arityErr("add", 2, len(args))
	}
	sum := 0.0
	for _, a := range args {
		n, err := asNumber("add", a)
		if err != nil {
			return nil, err
		}
		sum += n
	}
	return numVal(sum), nil
}

func biSubtract(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("subtract", 2, len(args))
	}
	a, err := asNumber("subtract", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asNumber("subtract", args[1])
	if err != nil {
		return nil, err
	}
	return numVal(a - b), nil
}

// biMultiply is variadic under convergence, same as biAdd.
func biMultiply(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) < 2 {
		return nil, arityErr("multiply", 2, len(args))
	}
	product := 1.0
	for _, a := range args {
		n, err := asNumber("multiply", a)
		if err != nil {
			return nil, err
		}
		product *= n
	}
	return numVal(product), nil
}

func biDivide(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("divide", 2, len(args))
	}
	a, err := asNumber("divide", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asNumber("divide", args[1])
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, diagnostics.New(diagnostics.ArithmeticError, 0, 0, "division by zero")
	}
	return numVal(a / b), nil
}

func biPrint(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	fmt.Fprint(w, strings.Join(parts, " "))
	return values.NullValue, nil
}

func biPrintln(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
	return values.NullValue, nil
}

func biLength(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("length", 1, len(args))
	}
	switch v := args[0].(type) {
	case *values.Array:
		return numVal(float64(len(v.Elements))), nil
	case *values.String:
		return numVal(float64(len([]rune(v.Value)))), nil
	case *values.Object:
		return numVal(float64(len(v.Keys))), nil
	case *values.Tuple:
		return numVal(float64(len(v.Elements))), nil
	default:
		return nil, typeErr("length", fmt.Sprintf("no length for %s", v.Kind()))
	}
}

func biFirst(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("first", 1, len(args))
	}
	a, err := asArray("first", args[0])
	if err != nil {
		return nil, err
	}
	if len(a.Elements) == 0 {
		return values.NullValue, nil
	}
	return a.Elements[0], nil
}

func biLast(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("last", 1, len(args))
	}
	a, err := asArray("last", args[0])
	if err != nil {
		return nil, err
	}
	if len(a.Elements) == 0 {
		return values.NullValue, nil
	}
	return a.Elements[len(a.Elements)-1], nil
}

func biToString(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("to_string", 1, len(args))
	}
	return &values.String{Value: args[0].String()}, nil
}

func biToNumber(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("to_number", 1, len(args))
	}
	s, err := asString("to_number", args[0])
	if err != nil {
		return nil, err
	}
	var f float64
	if _, scanErr := fmt.Sscanf(strings.TrimSpace(s), "%g", &f); scanErr != nil {
		return nil, typeErr("to_number", fmt.Sprintf("cannot parse %q as a number", s))
	}
	return numVal(f), nil
}

func biTypeOf(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("type_of", 1, len(args))
	}
	return &values.String{Value: string(args[0].Kind())}, nil
}

func biConcat(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) == 0 {
		return nil, arityErr("concat", 1, 0)
	}
	if _, ok := args[0].(*values.String); ok {
		var sb strings.Builder
		for _, a := range args {
			s, err := asString("concat", a)
			if err != nil {
				return nil, err
			}
			sb.WriteString(s)
		}
		return &values.String{Value: sb.String()}, nil
	}
	elements := make([]values.Value, 0)
	for _, a := range args {
		arr, err := asArray("concat", a)
		if err != nil {
			return nil, err
		}
		elements = append(elements, arr.Elements...)
	}
	return &values.Array{Elements: elements}, nil
}

func biPush(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("push", 2, len(args))
	}
	a, err := asArray("push", args[0])
	if err != nil {
		return nil, err
	}
	elements := append(append([]values.Value{}, a.Elements...), args[1])
	return &values.Array{Elements: elements}, nil
}

func biPop(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("pop", 1, len(args))
	}
	a, err := asArray("pop", args[0])
	if err != nil {
		return nil, err
	}
	if len(a.Elements) == 0 {
		return &values.Tuple{Elements: []values.Value{&values.Array{Elements: []values.Value{}}, values.NullValue}}, nil
	}
	rest := append([]values.Value{}, a.Elements[:len(a.Elements)-1]...)
	last := a.Elements[len(a.Elements)-1]
	return &values.Tuple{Elements: []values.Value{&values.Array{Elements: rest}, last}}, nil
}

func biReverse(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("reverse", 1, len(args))
	}
	switch v := args[0].(type) {
	case *values.Array:
		out := make([]values.Value, len(v.Elements))
		for i, e := range v.Elements {
			out[len(out)-1-i] = e
		}
		return &values.Array{Elements: out}, nil
	case *values.String:
		runes := []rune(v.Value)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return &values.String{Value: string(runes)}, nil
	default:
		return nil, typeErr("reverse", fmt.Sprintf("cannot reverse %s", v.Kind()))
	}
}

func biContains(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("contains", 2, len(args))
	}
	switch v := args[0].(type) {
	case *values.Array:
		for _, e := range v.Elements {
			if e.String() == args[1].String() && e.Kind() == args[1].Kind() {
				return boolVal(true), nil
			}
		}
		return boolVal(false), nil
	case *values.String:
		needle, err := asString("contains", args[1])
		if err != nil {
			return nil, err
		}
		return boolVal(strings.Contains(v.Value, needle)), nil
	default:
		return nil, typeErr("contains", fmt.Sprintf("cannot search %s", v.Kind()))
	}
}

func biIndexOf(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("index_of", 2, len(args))
	}
	a, err := asArray("index_of", args[0])
	if err != nil {
		return nil, err
	}
	for i, e := range a.Elements {
		if e.String() == args[1].String() && e.Kind() == args[1].Kind() {
			return numVal(float64(i)), nil
		}
	}
	return numVal(-1), nil
}

func biSlice(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 3 {
		return nil, arityErr("slice", 3, len(args))
	}
	a, err := asArray("slice", args[0])
	if err != nil {
		return nil, err
	}
	start, err := asNumber("slice", args[1])
	if err != nil {
		return nil, err
	}
	end, err := asNumber("slice", args[2])
	if err != nil {
		return nil, err
	}
	s, e := int(start), int(end)
	if s < 0 {
		s = 0
	}
	if e > len(a.Elements) {
		e = len(a.Elements)
	}
	if s > e {
		return &values.Array{Elements: []values.Value{}}, nil
	}
	out := append([]values.Value{}, a.Elements[s:e]...)
	return &values.Array{Elements: out}, nil
}

func biJoin(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("join", 2, len(args))
	}
	a, err := asArray("join", args[0])
	if err != nil {
		return nil, err
	}
	sep, err := asString("join", args[1])
	if err != nil {
		return nil, err
	}
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return &values.String{Value: strings.Join(parts, sep)}, nil
}

func biSplit(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("split", 2, len(args))
	}
	s, err := asString("split", args[0])
	if err != nil {
		return nil, err
	}
	sep, err := asString("split", args[1])
	if err != nil {
		return nil, err
	}
	parts := strings.Split(s, sep)
	elements := make([]values.Value, len(parts))
	for i, p := range parts {
		elements[i] = &values.String{Value: p}
	}
	return &values.Array{Elements: elements}, nil
}

func biUpper(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("upper", 1, len(args))
	}
	s, err := asString("upper", args[0])
	if err != nil {
		return nil, err
	}
	return &values.String{Value: strings.ToUpper(s)}, nil
}

func biLower(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("lower", 1, len(args))
	}
	s, err := asString("lower", args[0])
	if err != nil {
		return nil, err
	}
	return &values.String{Value: strings.ToLower(s)}, nil
}

func biTrim(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("trim", 1, len(args))
	}
	s, err := asString("trim", args[0])
	if err != nil {
		return nil, err
	}
	return &values.String{Value: strings.TrimSpace(s)}, nil
}

func biKeys(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("keys", 1, len(args))
	}
	o, err := asObject("keys", args[0])
	if err != nil {
		return nil, err
	}
	elements := make([]values.Value, len(o.Keys))
	for i, k := range o.Keys {
		elements[i] = &values.String{Value: k}
	}
	return &values.Array{Elements: elements}, nil
}

func biObjectValues(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("object_values", 1, len(args))
	}
	o, err := asObject("object_values", args[0])
	if err != nil {
		return nil, err
	}
	elements := make([]values.Value, len(o.Keys))
	for i, k := range o.Keys {
		elements[i] = o.Pairs[k]
	}
	return &values.Array{Elements: elements}, nil
}

func biHasKey(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("has_key", 2, len(args))
	}
	o, err := asObject("has_key", args[0])
	if err != nil {
		return nil, err
	}
	k, err := asString("has_key", args[1])
	if err != nil {
		return nil, err
	}
	_, ok := o.Get(k)
	return boolVal(ok), nil
}

func biRange(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("range", 2, len(args))
	}
	start, err := asNumber("range", args[0])
	if err != nil {
		return nil, err
	}
	end, err := asNumber("range", args[1])
	if err != nil {
		return nil, err
	}
	elements := make([]values.Value, 0)
	for i := int(start); i < int(end); i++ {
		elements = append(elements, numVal(float64(i)))
	}
	return &values.Array{Elements: elements}, nil
}

func biAbs(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("abs", 1, len(args))
	}
	n, err := asNumber("abs", args[0])
	if err != nil {
		return nil, err
	}
	return numVal(math.Abs(n)), nil
}

func biMin(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) == 0 {
		return nil, arityErr("min", 1, 0)
	}
	nums, err := numbersOf("min", args)
	if err != nil {
		return nil, err
	}
	sort.Float64s(nums)
	return numVal(nums[0]), nil
}

func biMax(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) == 0 {
		return nil, arityErr("max", 1, 0)
	}
	nums, err := numbersOf("max", args)
	if err != nil {
		return nil, err
	}
	sort.Float64s(nums)
	return numVal(nums[len(nums)-1]), nil
}

func numbersOf(name string, args []values.Value) ([]float64, error) {
	nums := make([]float64, len(args))
	for i, a := range args {
		n, err := asNumber(name, a)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}

func biRound(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("round", 1, len(args))
	}
	n, err := asNumber("round", args[0])
	if err != nil {
		return nil, err
	}
	return numVal(math.Round(n)), nil
}

func biFloor(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("floor", 1, len(args))
	}
	n, err := asNumber("floor", args[0])
	if err != nil {
		return nil, err
	}
	return numVal(math.Floor(n)), nil
}

func biCeil(rt Runtime, w io.Writer, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("ceil", 1, len(args))
	}
	n, err := asNumber("ceil", args[0])
	if err != nil {
		return nil, err
	}
	return numVal(math.Ceil(n)), nil
}
