/*
File    : susumu/builtin/builtin.go

Package builtin implements Susumu's fixed built-in function table
(spec.md §4.5, §6.4) plus the domain modules added by SPEC_FULL.md §5.
Grounded on akashmaji946-go-mix/std/builtins.go's Builtin{Name, Callback}
struct and global-slice-plus-init() registration idiom. Convergence
support (spec.md §4.3.2) needs no separate struct field: a convergent
builtin's Callback simply accepts a variable-length args slice (add,
multiply, concat, min, max), the same shape as any other.
*/
package builtin

import (
	"io"

	"github.com/susumu-lang/susumu/values"
)

// Runtime is the callback hook back into the evaluator, mirroring the
// teacher's std.Runtime interface: builtins that need to invoke a Susumu
// function value (e.g. a future higher-order builtin) go through this
// instead of importing eval directly, which would create a cycle.
type Runtime interface {
	CallFunction(fn values.Value, args []values.Value) (values.Value, error)
}

// CallbackFunc is the native implementation of one builtin.
type CallbackFunc func(rt Runtime, w io.Writer, args []values.Value) (values.Value, error)

// Builtin is one entry of the fixed built-in table. Variadic/convergence
// support (spec.md §4.3.2, §4.5 — e.g. `add`/`multiply` folding over every
// argument a run of `<-` steps converges into the call) is just a property
// of how Callback handles args, not a separate declared flag: each
// callback validates its own arity directly (exact count for fixed-arity
// builtins, a minimum for the variadic ones), except print/println, which
// accept any number of arguments.
type Builtin struct {
	Name     string
	Callback CallbackFunc
}

func (b *Builtin) Kind() values.Kind    { return values.BuiltinKind }
func (b *Builtin) String() string       { return "builtin(" + b.Name + ")" }
func (b *Builtin) Inspect() string      { return "<builtin[" + b.Name + "]>" }
func (b *Builtin) CallableName() string { return b.Name }

// registry accumulates every registered builtin across core.go and the
// domain-module files below, each contributing via its own init().
var registry = make([]*Builtin, 0)

func register(entries ...*Builtin) {
	registry = append(registry, entries...)
}

// ModuleNames lists the toggleable domain modules (SPEC_FULL.md §5).
var ModuleNames = []string{"json", "format", "identity", "text", "inspect"}

// moduleOf tags which builtins belong to which optional domain module so
// Table can filter them out when disabled (config.Config.Modules).
var moduleOf = make(map[string]string)

func registerModule(module string, entries ...*Builtin) {
	for _, e := range entries {
		moduleOf[e.Name] = module
	}
	register(entries...)
}

// Table returns name->Builtin for every registered builtin whose module
// (if any) is enabled. A nil or empty enabledModules disables no module —
// config.Config{} (the zero value) means "all modules enabled" per
// SPEC_FULL.md §6.3.
func Table(enabledModules map[string]bool) map[string]*Builtin {
	out := make(map[string]*Builtin, len(registry))
	for _, b := range registry {
		if mod, ok := moduleOf[b.Name]; ok {
			if enabledModules != nil {
				if enabled, set := enabledModules[mod]; set && !enabled {
					continue
				}
			}
		}
		out[b.Name] = b
	}
	return out
}
