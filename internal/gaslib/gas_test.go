package gaslib

import (
	"testing"

	"github.com/shopspring/decimal"
)

type fakeMeter struct{ n int }

func (f fakeMeter) LastStoragePayloadBytes() int { return f.n }

func TestCostClasses(t *testing.T) {
	table := NewTable(fakeMeter{})
	cases := []struct {
		name  string
		class OpClass
		want  decimal.Decimal
	}{
		{"push", ClassPush, costZero},
		{"nop", ClassNop, costZero},
		{"checksig", ClassCheckSig, costTenth},
		{"calllike", ClassCallLike, costHundredth},
		{"hash256like", ClassHash256Like, costTwoHundredth},
		{"other", ClassOther, costThousandth},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := table.Cost(c.class, "")
			if !got.Equal(c.want) {
				t.Fatalf("Cost(%v) = %s, want %s", c.class, got, c.want)
			}
		})
	}
}

func TestStorageUnknownSyscallIsZero(t *testing.T) {
	table := NewTable(fakeMeter{n: 2048})
	got := table.Cost(ClassSyscall, "Neo.Nonexistent.Syscall")
	if !got.Equal(costZero) {
		t.Fatalf("unknown syscall cost = %s, want 0", got)
	}
}

func TestStoragePutScalesByPayload(t *testing.T) {
	table := NewTable(fakeMeter{n: 2048})
	got := table.Cost(ClassSyscall, "Neo.Storage.Put")
	want := decimal.New(2, 0)
	if !got.Equal(want) {
		t.Fatalf("Storage.Put(2048) = %s, want %s", got, want)
	}
}

func TestStoragePutClampsToOne(t *testing.T) {
	table := NewTable(fakeMeter{n: 100})
	got := table.Cost(ClassSyscall, "Neo.Storage.Put")
	want := decimal.New(1, 0)
	if !got.Equal(want) {
		t.Fatalf("Storage.Put(100) = %s, want %s (clamped)", got, want)
	}
}

func TestStoragePutWithoutMeterUsesBaseCost(t *testing.T) {
	table := &Table{Syscalls: DefaultSyscallCosts()}
	got := table.Cost(ClassSyscall, "Neo.Storage.Put")
	want := decimal.New(1, 0)
	if !got.Equal(want) {
		t.Fatalf("Storage.Put with nil meter = %s, want base cost %s", got, want)
	}
}
