package breakpoints

import "testing"

type fakeRegistrar struct {
	added []int
}

func (f *fakeRegistrar) AddBreakPoint(o int)    { f.added = append(f.added, o) }
func (f *fakeRegistrar) RemoveBreakPoint(o int) {}

func TestSetBreakpointInsertAndRemove(t *testing.T) {
	s := New()
	s.SetBreakpoint(5, true)
	if !s.Contains(5) {
		t.Fatal("expected offset 5 to be a breakpoint")
	}
	s.SetBreakpoint(5, false)
	if s.Contains(5) {
		t.Fatal("expected offset 5 to be removed")
	}
}

func TestSetBreakpointNoDedupBeyondSetSemantics(t *testing.T) {
	s := New()
	s.SetBreakpoint(1, true)
	s.SetBreakpoint(1, true)
	if len(s.Offsets()) != 1 {
		t.Fatalf("offsets = %v, want exactly one entry", s.Offsets())
	}
}

func TestRegisterAllPushesEveryOffset(t *testing.T) {
	s := New()
	s.SetBreakpoint(1, true)
	s.SetBreakpoint(2, true)
	r := &fakeRegistrar{}
	s.RegisterAll(r)
	if len(r.added) != 2 {
		t.Fatalf("registered %d offsets, want 2", len(r.added))
	}
}
