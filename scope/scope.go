/*
File    : susumu/scope/scope.go

Package scope implements Susumu's environment chain (spec.md §3.4): a
parent-pointing chain of frames mapping name to Binding. Lookup walks the
chain; Bind only ever touches the current frame; Assign updates the frame
that originally defined the name, enforcing the `mut` flag along the way
(spec.md §9's resolution of the mut/immutability open question).
*/
package scope

import "github.com/susumu-lang/susumu/values"

// Binding pairs a bound value with whether it may be reassigned.
type Binding struct {
	Value   values.Value
	Mutable bool
}

// Scope is one frame of the environment chain.
type Scope struct {
	vars   map[string]*Binding
	Parent *Scope
}

// New creates a Scope with the given parent (nil for the root scope).
func New(parent *Scope) *Scope {
	return &Scope{vars: make(map[string]*Binding), Parent: parent}
}

// LookUp searches this scope and its ancestors for varName.
func (s *Scope) LookUp(varName string) (values.Value, bool) {
	if b, ok := s.vars[varName]; ok {
		return b.Value, true
	}
	if s.Parent != nil {
		return s.Parent.LookUp(varName)
	}
	return nil, false
}

// Bind creates (or overwrites) a binding in the CURRENT scope only, marking
// it mutable per the `mut` flag. It returns whether the name already existed
// in this scope (redeclaration).
func (s *Scope) Bind(varName string, val values.Value, mutable bool) bool {
	_, existed := s.vars[varName]
	s.vars[varName] = &Binding{Value: val, Mutable: mutable}
	return existed
}

// AssignResult enumerates why Assign did or didn't succeed.
type AssignResult int

const (
	Assigned AssignResult = iota
	Undefined
	Immutable
)

// Assign updates varName in the frame where it was originally bound. It
// never creates a new binding — use Bind for that. Reassigning an immutable
// binding is reported as Immutable rather than silently allowed.
func (s *Scope) Assign(varName string, val values.Value) AssignResult {
	if b, ok := s.vars[varName]; ok {
		if !b.Mutable {
			return Immutable
		}
		b.Value = val
		return Assigned
	}
	if s.Parent != nil {
		return s.Parent.Assign(varName, val)
	}
	return Undefined
}

// Copy returns a shallow snapshot of this scope sharing the same parent.
// Function definitions do not use it: they capture their defining scope
// directly.
func (s *Scope) Copy() *Scope {
	cp := New(s.Parent)
	for k, v := range s.vars {
		binding := *v
		cp.vars[k] = &binding
	}
	return cp
}
