// Package gaslib prices opcode execution, implementing the Gas Cost Table
// (C2, spec.md §4.2).
//
// Grounded on _teacher_ref/core/vm/gas_table.go's shape: a base cost keyed
// by opcode, plus a dynamic-gas hook for the operations whose price depends
// on the size of data they touch (there, memory expansion; here, a
// Storage.Put payload). NEO gas is fractional (spec.md §3 "decimal"), unlike
// the teacher's integer wei, so costs are expressed in
// github.com/shopspring/decimal rather than *big.Int/uint64.
package gaslib

import "github.com/shopspring/decimal"

// decimal.New(mantissa, exp) means mantissa * 10^exp.
var (
	costZero         = decimal.Zero
	costTenth        = decimal.New(1, -1) // 0.1
	costHundredth    = decimal.New(1, -2) // 0.01
	costTwoHundredth = decimal.New(2, -2) // 0.02
	costThousandth   = decimal.New(1, -3) // 0.001
)

// SyscallTable maps a syscall name to its base gas cost, looked up when the
// just-executed opcode was SYSCALL (spec.md §4.2). Unknown names cost zero.
type SyscallTable map[string]decimal.Decimal

// DefaultSyscallCosts is a representative subset of the NEO syscall price
// list; callers may supply their own table via Table.Syscalls.
func DefaultSyscallCosts() SyscallTable {
	return SyscallTable{
		"Neo.Runtime.CheckWitness":   costTwoHundredth,
		"Neo.Runtime.Notify":         costThousandth,
		"Neo.Runtime.Log":            costThousandth,
		"Neo.Storage.GetContext":     costThousandth,
		"Neo.Storage.Get":            costThousandth,
		"Neo.Storage.Put":            decimal.New(1, 0),
		"Neo.Storage.Delete":         decimal.New(1, 0),
		"Neo.Blockchain.GetHeight":   costThousandth,
		"Neo.Blockchain.GetHeader":   costTwoHundredth,
		"Neo.Blockchain.GetContract": costHundredth,
		"Neo.Contract.Create":        decimal.New(500, 0),
	}
}

// StorageMeter exposes the size, in bytes, of the payload most recently
// written by a storage syscall (spec.md §6's "Storage collaborator").
type StorageMeter interface {
	LastStoragePayloadBytes() int
}

// Table prices individual opcode executions.
type Table struct {
	Syscalls SyscallTable
	Storage  StorageMeter
}

// NewTable constructs a Table with the default syscall price list.
func NewTable(storage StorageMeter) *Table {
	return &Table{Syscalls: DefaultSyscallCosts(), Storage: storage}
}

// storagePutSuffix is matched against syscall names ending in this (spec.md
// §4.2): any trigger/namespace whose Storage.Put variant should scale with
// payload size.
const storagePutSuffix = "Storage.Put"

// Cost computes the gas charged for having just executed an opcode. class
// is the opcode's pricing class as the caller classified it, and
// syscallName names the syscall when class is ClassSyscall (taking the class
// rather than the opcode keeps this package free of the opcode enum).
func (t *Table) Cost(class OpClass, syscallName string) decimal.Decimal {
	switch class {
	case ClassPush, ClassNop:
		return costZero
	case ClassCheckSig:
		return costTenth
	case ClassCallLike, ClassSha:
		return costHundredth
	case ClassHash256Like:
		return costTwoHundredth
	case ClassSyscall:
		return t.syscallCost(syscallName)
	default:
		return costThousandth
	}
}

func (t *Table) syscallCost(name string) decimal.Decimal {
	base, ok := t.Syscalls[name]
	if !ok {
		return costZero
	}
	if !hasSuffix(name, storagePutSuffix) {
		return base
	}
	if t.Storage == nil {
		return base
	}
	payload := t.Storage.LastStoragePayloadBytes()
	scaled := base.Mul(decimal.NewFromInt(int64(payload))).Div(decimal.NewFromInt(1024))
	if scaled.LessThan(decimal.New(1, 0)) {
		return decimal.New(1, 0)
	}
	return scaled
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

// OpClass buckets opcodes into the pricing classes spec.md §4.2 names. It is
// independent of internal/neovm's concrete OpCode enum; the stepping engine
// (pkg/debugger), which already depends on both packages, does the
// opcode->class classification and calls Table.Cost with the result.
type OpClass int

const (
	ClassOther OpClass = iota
	ClassPush
	ClassNop
	ClassCheckSig
	ClassCallLike
	ClassSha
	ClassHash256Like
	ClassSyscall
)
