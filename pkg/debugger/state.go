package debugger

import (
	"github.com/shopspring/decimal"

	"github.com/SignatureToken/neo-debugger-tools/internal/neovm"
)

// StateKind is one of the DebuggerState kinds spec.md §3 names.
type StateKind int

const (
	StateInvalid StateKind = iota
	StateReset
	StateRunning
	StateBreak
	StateFinished
	StateException
)

func (k StateKind) String() string {
	switch k {
	case StateReset:
		return "Reset"
	case StateRunning:
		return "Running"
	case StateBreak:
		return "Break"
	case StateFinished:
		return "Finished"
	case StateException:
		return "Exception"
	default:
		return "Invalid"
	}
}

// DebuggerState carries the last known offset alongside its kind (spec.md
// §3).
type DebuggerState struct {
	Kind   StateKind
	Offset uint32
}

// Trigger is the VM execution mode (spec.md §3).
type Trigger int

const (
	TriggerApplication Trigger = iota
	TriggerVerification
)

// StepInfo is emitted once per successfully executed instruction (spec.md
// §3).
type StepInfo struct {
	BytecodeSlice []byte
	Offset        uint32
	Opcode        neovm.OpCode
	GasCost       decimal.Decimal
	SyscallName   string
}
