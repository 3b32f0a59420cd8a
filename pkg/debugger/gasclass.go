package debugger

import (
	"github.com/SignatureToken/neo-debugger-tools/internal/gaslib"
	"github.com/SignatureToken/neo-debugger-tools/internal/neovm"
)

// classify maps an executed opcode to the pricing class spec.md §4.2's
// table names. This is the one place internal/gaslib's opcode-agnostic
// OpClass and internal/neovm's concrete OpCode enum meet.
func classify(op neovm.OpCode) gaslib.OpClass {
	switch {
	case op.IsPush(), op == neovm.PUSH0, op == neovm.PUSHM1,
		op >= neovm.PUSHBYTES1 && op <= neovm.PUSHBYTES75,
		op == neovm.PUSHDATA1, op == neovm.PUSHDATA2, op == neovm.PUSHDATA4:
		return gaslib.ClassPush
	case op == neovm.NOP:
		return gaslib.ClassNop
	case op == neovm.CHECKSIG, op == neovm.CHECKMULTISIG:
		return gaslib.ClassCheckSig
	case op == neovm.APPCALL, op == neovm.TAILCALL, op == neovm.SHA256, op == neovm.SHA1:
		return gaslib.ClassCallLike
	case op == neovm.HASH256, op == neovm.HASH160:
		return gaslib.ClassHash256Like
	case op == neovm.SYSCALL:
		return gaslib.ClassSyscall
	default:
		return gaslib.ClassOther
	}
}
