package vartrack

import (
	"math/big"
	"testing"

	"github.com/SignatureToken/neo-debugger-tools/internal/abi"
	"github.com/SignatureToken/neo-debugger-tools/internal/stackitem"
)

type fakeStack struct {
	items []stackitem.Item
}

func (f fakeStack) Peek(n int) (stackitem.Item, bool) {
	idx := len(f.items) - 1 - n
	if idx < 0 || idx >= len(f.items) {
		return stackitem.Item{}, false
	}
	return f.items[idx], true
}

func TestSeedEntryPointInputs(t *testing.T) {
	tr := New()
	stack := fakeStack{items: []stackitem.Item{stackitem.NewInteger(big.NewInt(5))}}
	tr.SeedEntryPointInputs([]abi.Parameter{{Name: "n", DeclaredType: "Integer"}}, stack)

	v, ok := tr.GetVariable("n")
	if !ok {
		t.Fatal("expected variable n to be seeded")
	}
	i, _ := v.Value.Integer()
	if i.Cmp(big.NewInt(5)) != 0 {
		t.Fatalf("n = %s, want 5", i)
	}
}

func TestSeedEntryPointInputsStopsOnFirstPeekFailure(t *testing.T) {
	tr := New()
	stack := fakeStack{items: []stackitem.Item{stackitem.NewInteger(big.NewInt(1))}}
	tr.SeedEntryPointInputs([]abi.Parameter{
		{Name: "a", DeclaredType: "Integer"},
		{Name: "b", DeclaredType: "Integer"},
	}, stack)

	if _, ok := tr.GetVariable("a"); !ok {
		t.Fatal("expected a to be seeded")
	}
	if _, ok := tr.GetVariable("b"); ok {
		t.Fatal("expected b to be absent: short argument list tolerated")
	}
}

func TestUnknownTypeInheritsPriorSessionType(t *testing.T) {
	tr := New()
	stack := fakeStack{items: []stackitem.Item{stackitem.NewInteger(big.NewInt(1))}}
	tr.SeedEntryPointInputs([]abi.Parameter{{Name: "x", DeclaredType: "Integer"}}, stack)

	// A later seed for the same name, declared Unknown, inherits the
	// previously recorded type.
	tr.SeedEntryPointInputs([]abi.Parameter{{Name: "x", DeclaredType: abi.Unknown}}, stack)

	v, _ := tr.GetVariable("x")
	if v.Type != "Integer" {
		t.Fatalf("type = %q, want inherited %q", v.Type, "Integer")
	}
}

func TestRefreshAtMatchesRegisteredOffset(t *testing.T) {
	tr := New()
	tr.RegisterAssignment(7, "result", "Integer")
	stack := fakeStack{items: []stackitem.Item{stackitem.NewInteger(big.NewInt(42))}}

	tr.RefreshAt(7, stack)
	v, ok := tr.GetVariable("result")
	if !ok {
		t.Fatal("expected result to be recorded")
	}
	i, _ := v.Value.Integer()
	if i.Cmp(big.NewInt(42)) != 0 {
		t.Fatalf("result = %s, want 42", i)
	}
}

func TestRefreshAtIgnoresUnregisteredOffset(t *testing.T) {
	tr := New()
	stack := fakeStack{items: []stackitem.Item{stackitem.NewInteger(big.NewInt(1))}}
	tr.RefreshAt(99, stack)
	if len(tr.variables) != 0 {
		t.Fatal("expected no variable recorded for an unregistered offset")
	}
}

func TestClearVariablesPreservesAssignments(t *testing.T) {
	tr := New()
	tr.RegisterAssignment(3, "v", "Integer")
	stack := fakeStack{items: []stackitem.Item{stackitem.NewInteger(big.NewInt(9))}}
	tr.RefreshAt(3, stack)

	tr.ClearVariables()
	if _, ok := tr.GetVariable("v"); ok {
		t.Fatal("expected variables cleared")
	}
	if _, ok := tr.AssignmentAt(3); !ok {
		t.Fatal("expected assignment to survive ClearVariables")
	}
}
