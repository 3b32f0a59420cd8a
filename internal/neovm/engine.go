// Package neovm is the concrete stack VM engine that plays the role of
// spec.md §6's upstream "VM engine" collaborator. spec.md §1 calls the
// opcode interpreter an external, out-of-scope dependency ("assumed to
// exist"); this package provides a minimal, self-contained one so the rest
// of the module is runnable, without claiming full NEO-VM opcode parity —
// see DESIGN.md.
//
// Shape grounded on _teacher_ref/core/vm/interpreter.go (a Run loop that
// fetches one opcode, checks its gas/stack requirements, executes it, and
// loops) and, for the NEO-specific framing (an InvocationStack of call
// frames, a four-value Vmstate, a step() that performs exactly one opcode),
// on other_examples/nspcc-dev-neo-go__vm.go (reference only).
package neovm

import (
	"fmt"

	"github.com/SignatureToken/neo-debugger-tools/internal/stackitem"
)

// State mirrors the VM status flags spec.md §6 lists: NONE, HALT, FAULT,
// BREAK.
type State int

const (
	StateNone State = iota
	StateHalt
	StateFault
	StateBreak
)

func (s State) String() string {
	switch s {
	case StateHalt:
		return "HALT"
	case StateFault:
		return "FAULT"
	case StateBreak:
		return "BREAK"
	default:
		return "NONE"
	}
}

// WitnessMode selects how CHECKSIG/CHECKMULTISIG resolve (spec.md §3).
type WitnessMode int

const (
	WitnessDefault WitnessMode = iota
	WitnessAlwaysTrue
	WitnessAlwaysFalse
)

// InvokerContext abstracts the "Runtime.invokerKeys" global the source reads
// from (spec.md §9): given a message and a candidate signature/pubkey pair,
// can it verify? A default implementation lives in internal/invoker.
type InvokerContext interface {
	VerifySignature(message, signature, pubkey []byte) bool
}

// SyscallFunc implements one named syscall against the engine's stacks.
type SyscallFunc func(e *Engine) error

// Engine is the VM engine collaborator: it owns the instruction pointer (via
// its current Context), the evaluation stack, the alt stack, and the
// call-frame chain, exclusively, for one emulator session (spec.md §3).
type Engine struct {
	invocation []*Context
	eval       *Stack
	alt        *Stack

	state State

	breakpoints map[int]bool
	lastBreakIP int

	witness WitnessMode
	invoker InvokerContext
	message []byte
	syscall map[string]SyscallFunc

	lastOpcode   OpCode
	lastSyscall  string

	// sessionToken carries the owning Emulator's opaque identity (spec.md
	// §4.7's reverse-navigation requirement: given a VM engine handle,
	// reach the emulator it belongs to). neovm has no dependency on
	// pkg/debugger and never resolves this itself — it just stores and
	// returns the string the facade hands it.
	sessionToken string
}

// NewEngine constructs an Engine with no script loaded yet.
func NewEngine(invoker InvokerContext, syscalls map[string]SyscallFunc) *Engine {
	return &Engine{
		eval:        newStack(),
		alt:         newStack(),
		breakpoints: make(map[int]bool),
		lastBreakIP: -1,
		invoker:     invoker,
		syscall:     syscalls,
	}
}

// LoadScript pushes script as a new call frame on top of the invocation
// stack. Contract and prelude scripts are both loaded this way — the
// prelude is loaded after the contract (spec.md §4.1) so it ends up on top
// and thus becomes the current context.
func (e *Engine) LoadScript(script []byte) *Context {
	ctx := NewContext(script)
	e.invocation = append(e.invocation, ctx)
	return ctx
}

// CurrentContext returns the top of the invocation stack, or nil if empty.
func (e *Engine) CurrentContext() *Context {
	if len(e.invocation) == 0 {
		return nil
	}
	return e.invocation[len(e.invocation)-1]
}

// InvocationDepth returns the number of call frames currently on the
// invocation stack, used by the stepping engine to detect when execution
// has returned from the prelude into the contract (spec.md §4.5 step 1).
func (e *Engine) InvocationDepth() int { return len(e.invocation) }

// EvaluationStack returns the shared evaluation stack.
func (e *Engine) EvaluationStack() *Stack { return e.eval }

// AltStack returns the shared alt stack.
func (e *Engine) AltStack() *Stack { return e.alt }

// State returns the current VM status flag.
func (e *Engine) State() State { return e.state }

// ClearState resets a BREAK status back to NONE, matching spec.md §4.5's
// "zero the VM's break flag so subsequent Step can resume" — performed by
// the stepping engine (C5), not by the VM itself, after it has observed and
// reported the break.
func (e *Engine) ClearState() {
	if e.state == StateBreak {
		e.state = StateNone
	}
}

// SetWitnessMode overrides how CHECKSIG/CHECKMULTISIG resolve.
func (e *Engine) SetWitnessMode(m WitnessMode) { e.witness = m }

// SetMessage sets the signed data CHECKSIG/CHECKMULTISIG verify candidate
// signatures against in Default witness_mode — the script container's hash
// (spec.md §9's transaction/blockchain collaborator), not anything popped
// off the evaluation stack.
func (e *Engine) SetMessage(message []byte) { e.message = message }

// SetSessionToken attaches the owning Emulator's session token so that a
// bare Engine handle can be walked back to the Emulator it belongs to
// (spec.md §4.7). Set once by the facade right after NewEngine.
func (e *Engine) SetSessionToken(token string) { e.sessionToken = token }

// SessionToken returns the token set by SetSessionToken, or "" if none.
func (e *Engine) SessionToken() string { return e.sessionToken }

// AddBreakPoint registers offset o as a script offset at which StepInto
// must halt before executing (spec.md §4.4/§6).
func (e *Engine) AddBreakPoint(o int) { e.breakpoints[o] = true }

// RemoveBreakPoint un-registers offset o.
func (e *Engine) RemoveBreakPoint(o int) { delete(e.breakpoints, o) }

// LastOpcode is the opcode most recently executed by StepInto.
func (e *Engine) LastOpcode() OpCode { return e.lastOpcode }

// LastSyscall is the syscall name most recently dispatched via SYSCALL, or
// empty if the last opcode was not a SYSCALL.
func (e *Engine) LastSyscall() string { return e.lastSyscall }

// StepInto executes exactly one opcode, unless the current instruction
// offset is a registered breakpoint that hasn't yet been "consumed" by a
// prior break — in which case it halts in BREAK without advancing, per
// spec.md §4.4/§4.5 scenario 3. Halting at HALT/FAULT makes StepInto a
// no-op, matching the absorbing states of spec.md §4.5.
func (e *Engine) StepInto() error {
	if e.state == StateHalt || e.state == StateFault {
		return nil
	}
	ctx := e.CurrentContext()
	if ctx == nil {
		e.state = StateHalt
		return nil
	}

	if e.breakpoints[ctx.IP] && ctx.IP != e.lastBreakIP {
		e.lastBreakIP = ctx.IP
		e.state = StateBreak
		return nil
	}
	e.lastBreakIP = -1

	return e.advance(ctx)
}

// StepIntoSkippingBreakpoints behaves like StepInto but never halts in
// BREAK. Breakpoint offsets are a single flat keyspace shared by every
// loaded call frame, not scoped per script, so checking them while running
// through the prelude's own frame (spec.md §4.5 step 1's bootstrap, which
// must never stop) could spuriously match a breakpoint set at the contract's
// entry offset — the most common breakpoint of all — before the contract
// has even started. The stepping engine's bootstrap phase uses this instead
// of StepInto for exactly that reason.
func (e *Engine) StepIntoSkippingBreakpoints() error {
	if e.state == StateHalt || e.state == StateFault {
		return nil
	}
	ctx := e.CurrentContext()
	if ctx == nil {
		e.state = StateHalt
		return nil
	}
	return e.advance(ctx)
}

func (e *Engine) advance(ctx *Context) error {
	op, operand := ctx.Next()
	e.lastOpcode = op
	e.lastSyscall = ""

	if err := e.safeExecute(op, operand, ctx); err != nil {
		e.state = StateFault
		return err
	}
	return nil
}

// safeExecute runs execute and converts an out-of-range stack access on
// malformed bytecode (too few operands for the opcode) into a StackUnderflowError
// instead of letting the panic escape — a script that underflows the stack
// is a FAULT, not a programming bug in the engine.
func (e *Engine) safeExecute(op OpCode, operand []byte, ctx *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = StackUnderflowError{Need: 1, Have: 0}
		}
	}()
	return e.execute(op, operand, ctx)
}

func (e *Engine) execute(op OpCode, operand []byte, ctx *Context) error {
	switch {
	case op == PUSH0:
		e.eval.Push(stackitem.NewByteArray(nil))
	case op >= PUSHBYTES1 && op <= PUSHBYTES75, op == PUSHDATA1, op == PUSHDATA2, op == PUSHDATA4:
		e.eval.Push(stackitem.NewByteArray(operand))
	case op == PUSHM1:
		e.eval.Push(stackitem.NewInteger(bigFromInt64(-1)))
	case op.IsPush():
		e.eval.Push(stackitem.NewInteger(bigFromInt64(int64(op) - int64(PUSH1) + 1)))
	case op == NOP:
		// no-op
	case op == RET:
		return e.execRet()
	case op == JMP, op == JMPIF, op == JMPIFNOT:
		return e.execJump(op, ctx)
	case op == CALL:
		return e.execCall(ctx)
	case op == APPCALL, op == TAILCALL:
		return e.execAppCall(op, operand, ctx)
	case op == SYSCALL:
		return e.execSyscall(operand)
	case op == TOALTSTACK:
		e.alt.Push(e.mustPop())
	case op == FROMALTSTACK:
		e.eval.Push(e.alt.Pop())
	case op == DEPTH:
		e.eval.Push(stackitem.NewInteger(bigFromInt64(int64(e.eval.Len()))))
	case op == DROP:
		e.mustPop()
	case op == DUP:
		v, ok := e.eval.Peek(0)
		if !ok {
			return StackUnderflowError{Need: 1, Have: 0}
		}
		e.eval.Push(v)
	case op == SWAP:
		a, b := e.mustPop(), e.mustPop()
		e.eval.Push(a)
		e.eval.Push(b)
	case op == THROW:
		return fmt.Errorf("neovm: THROW at offset %d", ctx.IP)
	case op == THROWIFNOT:
		v := e.mustPop()
		if !v.AsBool() {
			return fmt.Errorf("neovm: THROWIFNOT failed at offset %d", ctx.IP)
		}
	case op == EQUAL:
		return e.execEqual()
	case op == ADD, op == SUB, op == MUL, op == DIV, op == MOD:
		return e.execArith(op)
	case op == SHA1:
		return e.execHash(sha1Sum)
	case op == SHA256:
		return e.execHash(sha256Sum)
	case op == HASH160:
		return e.execHash(hash160)
	case op == HASH256:
		return e.execHash(hash256)
	case op == CHECKSIG:
		return e.execCheckSig()
	case op == CHECKMULTISIG:
		return e.execCheckMultiSig()
	case op == PACK:
		return e.execPack()
	case op == UNPACK:
		return e.execUnpack()
	case op == NEWARRAY:
		return e.execNewArray()
	case op == ARRAYSIZE:
		return e.execArraySize()
	default:
		return UnknownOpcodeError{Op: op}
	}
	return nil
}

func (e *Engine) mustPop() stackitem.Item {
	return e.eval.Pop()
}

func (e *Engine) execRet() error {
	e.invocation = e.invocation[:len(e.invocation)-1]
	if len(e.invocation) == 0 {
		e.state = StateHalt
	}
	return nil
}

func (e *Engine) execJump(op OpCode, ctx *Context) error {
	lo, hi := byte(0), byte(0)
	if ctx.IP < len(ctx.Script) {
		lo = ctx.Script[ctx.IP]
	}
	if ctx.IP+1 < len(ctx.Script) {
		hi = ctx.Script[ctx.IP+1]
	}
	target := ctx.IP + int(int16(uint16(lo)|uint16(hi)<<8))
	ctx.IP += 2

	cond := true
	if op != JMP {
		v := e.mustPop()
		cond = v.AsBool()
		if op == JMPIFNOT {
			cond = !cond
		}
	}
	if !cond {
		return nil
	}
	if target < 0 || target > len(ctx.Script) {
		return InvalidJumpError{Target: target}
	}
	ctx.IP = target
	return nil
}

func (e *Engine) execCall(ctx *Context) error {
	lo, hi := byte(0), byte(0)
	if ctx.IP < len(ctx.Script) {
		lo = ctx.Script[ctx.IP]
	}
	if ctx.IP+1 < len(ctx.Script) {
		hi = ctx.Script[ctx.IP+1]
	}
	target := ctx.IP + int(int16(uint16(lo)|uint16(hi)<<8))
	ctx.IP += 2 // caller resumes here once the callee RETs

	if target < 0 || target > len(ctx.Script) {
		return InvalidJumpError{Target: target}
	}
	newCtx := NewContext(ctx.Script)
	newCtx.IP = target
	e.invocation = append(e.invocation, newCtx)
	return nil
}

func (e *Engine) execAppCall(op OpCode, target []byte, ctx *Context) error {
	// A real engine resolves `target` (a script hash) against contract
	// storage; the debugger core treats APPCALL/TAILCALL as opaque (spec.md
	// §4.2 prices them at a flat 0.01 and otherwise leaves resolution to the
	// Blockchain collaborator), so we only account for the call here.
	if op == TAILCALL {
		return e.execRet()
	}
	return nil
}

func (e *Engine) execSyscall(name []byte) error {
	e.lastSyscall = string(name)
	if fn, ok := e.syscall[e.lastSyscall]; ok {
		return fn(e)
	}
	return nil
}

func (e *Engine) execEqual() error {
	b, a := e.mustPop(), e.mustPop()
	ab, aok := a.Bytes()
	bb, bok := b.Bytes()
	if aok && bok {
		e.eval.Push(stackitem.NewBoolean(string(ab) == string(bb)))
		return nil
	}
	ai, aok := a.AsInteger()
	bi, bok := b.AsInteger()
	if aok && bok {
		e.eval.Push(stackitem.NewBoolean(ai.Cmp(bi) == 0))
		return nil
	}
	e.eval.Push(stackitem.NewBoolean(false))
	return nil
}

func (e *Engine) execArith(op OpCode) error {
	b, a := e.mustPop(), e.mustPop()
	ai, aok := a.AsInteger()
	bi, bok := b.AsInteger()
	if !aok || !bok {
		return fmt.Errorf("neovm: %s requires two integers", op)
	}
	result := new(bigInt).Set(ai)
	switch op {
	case ADD:
		result.Add(ai, bi)
	case SUB:
		result.Sub(ai, bi)
	case MUL:
		result.Mul(ai, bi)
	case DIV:
		if bi.Sign() == 0 {
			return fmt.Errorf("neovm: division by zero")
		}
		result.Div(ai, bi)
	case MOD:
		if bi.Sign() == 0 {
			return fmt.Errorf("neovm: division by zero")
		}
		result.Mod(ai, bi)
	}
	e.eval.Push(stackitem.NewInteger(result))
	return nil
}

func (e *Engine) execHash(fn func([]byte) []byte) error {
	v := e.mustPop()
	b, ok := v.Bytes()
	if !ok {
		return fmt.Errorf("neovm: hash opcode requires a byte array operand")
	}
	e.eval.Push(stackitem.NewByteArray(fn(b)))
	return nil
}

func (e *Engine) execCheckSig() error {
	pubkey, sig := e.mustPop(), e.mustPop()
	pk, _ := pubkey.Bytes()
	sg, _ := sig.Bytes()
	e.eval.Push(stackitem.NewBoolean(e.verify(sg, pk)))
	return nil
}

func (e *Engine) execCheckMultiSig() error {
	pubkeysItem := e.mustPop()
	pubkeys, _ := pubkeysItem.Array()
	sigsItem := e.mustPop()
	sigs, _ := sigsItem.Array()

	ok := true
	for _, s := range sigs {
		matched := false
		sg, _ := s.Bytes()
		for _, p := range pubkeys {
			pk, _ := p.Bytes()
			if e.verify(sg, pk) {
				matched = true
				break
			}
		}
		if !matched {
			ok = false
			break
		}
	}
	e.eval.Push(stackitem.NewBoolean(ok))
	return nil
}

func (e *Engine) verify(sig, pubkey []byte) bool {
	switch e.witness {
	case WitnessAlwaysTrue:
		return true
	case WitnessAlwaysFalse:
		return false
	default:
		if e.invoker == nil {
			return false
		}
		return e.invoker.VerifySignature(e.message, sig, pubkey)
	}
}

func (e *Engine) execPack() error {
	countItem := e.mustPop()
	countBig, ok := countItem.AsInteger()
	if !ok {
		return fmt.Errorf("neovm: PACK requires an integer count")
	}
	n := int(countBig.Int64())
	if n < 0 || n > e.eval.Len() {
		return StackUnderflowError{Need: n, Have: e.eval.Len()}
	}
	items := make([]stackitem.Item, n)
	for i := 0; i < n; i++ {
		items[i] = e.mustPop()
	}
	e.eval.Push(stackitem.NewArray(items))
	return nil
}

func (e *Engine) execUnpack() error {
	arrItem := e.mustPop()
	arr, ok := arrItem.Array()
	if !ok {
		return fmt.Errorf("neovm: UNPACK requires an array")
	}
	for i := len(arr) - 1; i >= 0; i-- {
		e.eval.Push(arr[i])
	}
	e.eval.Push(stackitem.NewInteger(bigFromInt64(int64(len(arr)))))
	return nil
}

func (e *Engine) execNewArray() error {
	countItem := e.mustPop()
	countBig, ok := countItem.AsInteger()
	if !ok {
		return fmt.Errorf("neovm: NEWARRAY requires an integer count")
	}
	n := int(countBig.Int64())
	items := make([]stackitem.Item, n)
	for i := range items {
		items[i] = stackitem.NewBoolean(false)
	}
	e.eval.Push(stackitem.NewArray(items))
	return nil
}

func (e *Engine) execArraySize() error {
	v := e.mustPop()
	if arr, ok := v.Array(); ok {
		e.eval.Push(stackitem.NewInteger(bigFromInt64(int64(len(arr)))))
		return nil
	}
	if b, ok := v.Bytes(); ok {
		e.eval.Push(stackitem.NewInteger(bigFromInt64(int64(len(b)))))
		return nil
	}
	return fmt.Errorf("neovm: ARRAYSIZE requires an array or byte array")
}
