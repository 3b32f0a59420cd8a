// Package breakpoints implements the Breakpoint Set (C4, spec.md §4.4): a
// local set of script offsets, re-registered with the underlying VM on
// every Reset since breakpoint state does not survive VM reconstruction.
package breakpoints

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Registrar is the VM collaborator breakpoints are pushed into.
type Registrar interface {
	AddBreakPoint(offset int)
	RemoveBreakPoint(offset int)
}

// Set holds the debugger-side record of breakpoint offsets, independent of
// whatever VM instance is currently loaded.
type Set struct {
	offsets mapset.Set[uint32]
}

// New returns an empty breakpoint Set.
func New() *Set {
	return &Set{offsets: mapset.NewThreadUnsafeSet[uint32]()}
}

// SetBreakpoint inserts or removes offset depending on enabled. No
// deduplication beyond set semantics, no offset-bounds validation (spec.md
// §4.4) — an out-of-range breakpoint simply never matches during stepping.
func (s *Set) SetBreakpoint(offset uint32, enabled bool) {
	if enabled {
		s.offsets.Add(offset)
	} else {
		s.offsets.Remove(offset)
	}
}

// Contains reports whether offset is a registered breakpoint.
func (s *Set) Contains(offset uint32) bool {
	return s.offsets.Contains(offset)
}

// Offsets returns the registered offsets in no particular order.
func (s *Set) Offsets() []uint32 {
	return s.offsets.ToSlice()
}

// RegisterAll pushes every offset in the set into vm — called on every
// Reset, since the VM's own breakpoint table is wiped by reconstruction.
func (s *Set) RegisterAll(vm Registrar) {
	for _, o := range s.offsets.ToSlice() {
		vm.AddBreakPoint(int(o))
	}
}
