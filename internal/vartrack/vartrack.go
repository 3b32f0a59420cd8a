// Package vartrack implements the Variable Tracker (C3, spec.md §4.3): a
// static offset->assignment map, registered before Reset by the source
// mapper, and a dynamic name->current-value map refreshed during stepping.
//
// Grounded on _teacher_ref/core/vm/logger.go's StructLog capture idiom (peek
// the stack, swallow failures, record a snapshot) retargeted from a
// per-step trace to a persistent name-keyed map.
package vartrack

import (
	"github.com/SignatureToken/neo-debugger-tools/internal/abi"
	"github.com/SignatureToken/neo-debugger-tools/internal/stackitem"
)

// Assignment is a static offset->name/type binding, registered before Reset.
type Assignment struct {
	Name         string
	DeclaredType abi.DeclaredType
}

// Variable is the dynamic value recorded for a tracked name.
type Variable struct {
	Value stackitem.Item
	Type  abi.DeclaredType
}

// StackPeeker is the minimal VM collaborator the tracker needs: peek n
// items deep into the evaluation stack without popping.
type StackPeeker interface {
	Peek(n int) (stackitem.Item, bool)
}

// Tracker holds the two maps spec.md §3 names: assignments (static) and
// variables (dynamic).
type Tracker struct {
	assignments map[uint32]Assignment
	variables   map[string]Variable
}

// New returns an empty Tracker.
func New() *Tracker {
	return &Tracker{
		assignments: make(map[uint32]Assignment),
		variables:   make(map[string]Variable),
	}
}

// RegisterAssignment records a static offset->name/type binding. Called
// before Reset by the source mapper collaborator (spec.md §4.3).
func (t *Tracker) RegisterAssignment(offset uint32, name string, declaredType abi.DeclaredType) {
	t.assignments[offset] = Assignment{Name: name, DeclaredType: declaredType}
}

// AssignmentAt reports the assignment registered at offset, if any.
func (t *Tracker) AssignmentAt(offset uint32) (Assignment, bool) {
	a, ok := t.assignments[offset]
	return a, ok
}

// SeedEntryPointInputs is called immediately after Reset: for each ABI
// entry-point input at index i, peek depth i into the evaluation stack and
// record a variable. Unknown-declared-type inputs inherit the previous
// session's recorded type for the same name, if any (spec.md §9 — this
// inheritance only reaches values still in variables; the facade's Reset
// clears variables before seeding, so through the facade it only sees an
// earlier input of the same call, never a previous session).
// Stops silently on the first peek failure — short argument lists are
// tolerated, not an error (spec.md §4.3).
func (t *Tracker) SeedEntryPointInputs(inputs []abi.Parameter, stack StackPeeker) {
	for i, in := range inputs {
		v, ok := stack.Peek(i)
		if !ok {
			return
		}
		declared := in.DeclaredType
		if declared == abi.Unknown {
			if prev, ok := t.variables[in.Name]; ok && prev.Type != abi.Unknown {
				declared = prev.Type
			}
		}
		t.variables[in.Name] = Variable{Value: v, Type: declared}
	}
}

// RefreshAt is called between steps: if offset matches a registered
// assignment, peek top-of-stack and record the variable. Peek failures are
// swallowed (spec.md §4.3).
func (t *Tracker) RefreshAt(offset uint32, stack StackPeeker) {
	a, ok := t.assignments[offset]
	if !ok {
		return
	}
	v, ok := stack.Peek(0)
	if !ok {
		return
	}
	t.variables[a.Name] = Variable{Value: v, Type: a.DeclaredType}
}

// GetVariable returns the current value recorded for name, if any.
func (t *Tracker) GetVariable(name string) (Variable, bool) {
	v, ok := t.variables[name]
	return v, ok
}

// ClearAssignments empties both maps (used when the caller wants a fully
// cold tracker, distinct from the per-Reset variable clear the facade does).
func (t *Tracker) ClearAssignments() {
	t.assignments = make(map[uint32]Assignment)
	t.variables = make(map[string]Variable)
}

// ClearVariables empties only the dynamic map, preserving registered
// assignments — called by the facade during Reset, before entry-point
// seeding.
func (t *Tracker) ClearVariables() {
	t.variables = make(map[string]Variable)
}
