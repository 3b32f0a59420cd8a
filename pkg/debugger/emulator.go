// Package debugger implements the Stepping Engine (C5) and Emulator Facade
// (C7) of spec.md §4.5/§4.7: the state machine that drives a VM engine one
// instruction at a time under debugger control, and the public contract a
// debugger UI drives it through.
//
// Grounded on _teacher_ref/core/vm/interpreter.go's Run loop (pre-execution
// check -> execute -> post-execution tracer callback, looped) generalized
// from "run to completion" into "run exactly one step, report status,
// return control to the caller".
package debugger

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/SignatureToken/neo-debugger-tools/internal/abi"
	"github.com/SignatureToken/neo-debugger-tools/internal/breakpoints"
	"github.com/SignatureToken/neo-debugger-tools/internal/common"
	"github.com/SignatureToken/neo-debugger-tools/internal/gaslib"
	"github.com/SignatureToken/neo-debugger-tools/internal/neovm"
	"github.com/SignatureToken/neo-debugger-tools/internal/paramtree"
	"github.com/SignatureToken/neo-debugger-tools/internal/stackitem"
	"github.com/SignatureToken/neo-debugger-tools/internal/txharness"
	"github.com/SignatureToken/neo-debugger-tools/internal/vartrack"
	"github.com/SignatureToken/neo-debugger-tools/internal/xlog"
)

// Account is the executing account bound by SetExecutingAccount: bytecode
// plus the script hash it's addressed by.
type Account struct {
	Bytecode   []byte
	ScriptHash common.ScriptHash
}

const defaultStepHistory = 256

// Emulator is the facade spec.md §4.7 describes: one instance per debug
// session, exclusively owning a VM engine, its breakpoints, variables, and
// gas counters (spec.md §5 "Shared resources").
type Emulator struct {
	token SessionToken

	chain   txharness.Blockchain
	invoker neovm.InvokerContext
	storage *storageMeter
	gas     *gaslib.Table

	account    *Account
	engine     *neovm.Engine
	harness    *txharness.Harness
	vars       *vartrack.Tracker
	bps        *breakpoints.Set
	entryPoint abi.EntryPoint

	witness WitnessMode
	trigger Trigger
	timestamp uint32

	usedGas          decimal.Decimal
	usedOpcodeCount  uint64
	state            DebuggerState
	onStep           func(StepInfo)
	recentSteps      []StepInfo
	stepHistoryLimit int

	// bootstrapped tracks whether the prelude context-skip and entry-point
	// seeding (spec.md §4.5 step 1) has run for the current Reset. Reset now
	// runs it eagerly (spec.md §8 Scenario 2), so Step must not re-run it on
	// the first call.
	bootstrapped bool

	// contractScriptHash is the bound account's script hash, copied when
	// Reset loads the contract; txharness rewrites any
	// placeholder output hash to this value during Reset (spec.md §4.6).
	contractScriptHash common.ScriptHash
}

// WitnessMode mirrors internal/neovm.WitnessMode at the facade boundary so
// callers of this package don't need to import internal/neovm directly.
type WitnessMode = neovm.WitnessMode

const (
	WitnessDefault    = neovm.WitnessDefault
	WitnessAlwaysTrue = neovm.WitnessAlwaysTrue
	WitnessAlwaysFalse = neovm.WitnessAlwaysFalse
)

// New constructs an Emulator bound to a Blockchain collaborator and an
// InvokerContext (spec.md §9's injected-collaborator abstraction over the
// source's process-wide globals). stepHistory is the RecentSteps() ring
// buffer capacity; 0 selects a sensible default.
func New(chain txharness.Blockchain, invoker neovm.InvokerContext, stepHistory int) *Emulator {
	if stepHistory <= 0 {
		stepHistory = defaultStepHistory
	}
	meter := &storageMeter{}
	e := &Emulator{
		chain:            chain,
		invoker:          invoker,
		storage:          meter,
		gas:              gaslib.NewTable(meter),
		harness:          txharness.New(chain),
		vars:             vartrack.New(),
		bps:              breakpoints.New(),
		state:            DebuggerState{Kind: StateInvalid},
		stepHistoryLimit: stepHistory,
	}
	e.token = newSessionToken()
	registerSession(e.token, e)
	return e
}

// Token returns the session token resolving back to this Emulator via
// EmulatorFor (spec.md §9's cyclic-ownership strategy).
func (e *Emulator) Token() SessionToken { return e.token }

// SetExecutingAccount binds contract_bytecode (spec.md §4.7).
func (e *Emulator) SetExecutingAccount(acc Account) {
	e.account = &acc
}

// ExecutingAccount returns the bound account, if any (SPEC_FULL.md
// supplement to §4.7).
func (e *Emulator) ExecutingAccount() (Account, bool) {
	if e.account == nil {
		return Account{}, false
	}
	return *e.account, true
}

// SetBreakpoint inserts or removes offset from the local breakpoint set
// (spec.md §4.4/§4.7).
func (e *Emulator) SetBreakpoint(offset uint32, enabled bool) {
	e.bps.SetBreakpoint(offset, enabled)
}

// RegisterAssignment records a static offset->name/type binding for the
// variable tracker, before Reset (spec.md §4.3).
func (e *Emulator) RegisterAssignment(offset uint32, name string, declaredType abi.DeclaredType) {
	e.vars.RegisterAssignment(offset, name, declaredType)
}

// SetWitnessMode overrides signature-check resolution for debugging
// (spec.md §3).
func (e *Emulator) SetWitnessMode(m WitnessMode) { e.witness = m }

// SetTrigger sets the declared VM execution mode (spec.md §3).
func (e *Emulator) SetTrigger(t Trigger) { e.trigger = t }

// SetTimestamp sets the simulated block timestamp (spec.md §3).
func (e *Emulator) SetTimestamp(ts uint32) { e.timestamp = ts }

// OnStep registers the single-subscriber observer invoked after each
// successful step (spec.md §4.7/§9).
func (e *Emulator) OnStep(fn func(StepInfo)) { e.onStep = fn }

// RecentSteps returns the bounded history of StepInfo records accumulated
// since the last Reset (SPEC_FULL.md supplement), oldest first.
func (e *Emulator) RecentSteps() []StepInfo {
	out := make([]StepInfo, len(e.recentSteps))
	copy(out, e.recentSteps)
	return out
}

// State returns the last DebuggerState observed.
func (e *Emulator) State() DebuggerState { return e.state }

// SetTransaction is a thin pass-through to the transaction harness (C6),
// exposed because Reset needs a transaction already in place to bind the
// simulated block context before loading scripts.
func (e *Emulator) SetTransaction(assetID common.ScriptHash, amount *big.Int, destination, invokerAddress common.ScriptHash) {
	e.harness.SetTransaction(assetID, amount, destination, invokerAddress)
}

// Reset rebuilds the VM, loads the contract and prelude scripts, and seeds
// entry-point variables (spec.md §3 Lifecycle, §4.5 step 1). Idempotent
// when already in Reset state in the sense that it always fully rebuilds —
// there is no partial-reset path to short-circuit.
func (e *Emulator) Reset(inputs []paramtree.Node, entryPoint abi.EntryPoint) error {
	if e.account == nil {
		return errors.WithStack(ErrBytecodeMissing{})
	}

	prelude, err := paramtree.Lower(inputs)
	if err != nil {
		return errors.Wrap(err, "debugger: Reset: lowering parameters")
	}
	e.entryPoint = entryPoint

	e.storage.lastPut = 0
	syscalls := storageSyscalls(e.storage)
	e.engine = neovm.NewEngine(e.invoker, syscalls)
	e.engine.SetWitnessMode(e.witness)
	e.engine.SetSessionToken(string(e.token))

	e.engine.LoadScript(e.account.Bytecode)
	e.contractScriptHash = e.account.ScriptHash
	e.harness.RewriteCurrentHash(txharness.CurrentHashPlaceholder, e.contractScriptHash)
	e.engine.LoadScript(prelude)

	// Captured after RewriteCurrentHash so the signed message reflects the
	// transaction's final hashes, not the pre-rewrite placeholder.
	e.engine.SetMessage(e.harness.Message())

	e.bps.RegisterAll(e.engine)

	e.usedGas = decimal.Zero
	e.usedOpcodeCount = 0
	e.recentSteps = nil
	e.vars.ClearVariables()

	e.state = DebuggerState{Kind: StateReset}
	xlog.Debug("debugger: reset", "account", e.account.ScriptHash.Hex(), "prelude_len", len(prelude))

	e.harness.ClearCurrentTransaction()

	// spec.md §8 Scenario 2 observes get_variable("n") immediately after
	// Reset, before any Step — so the prelude context-skip and entry-point
	// seeding (spec.md §4.5 step 1) run here rather than waiting for the
	// first Step call.
	e.bootstrap()
	e.bootstrapped = true

	return nil
}

// Step implements spec.md §4.5's single-step procedure.
func (e *Emulator) Step() DebuggerState {
	if e.state.Kind == StateFinished || e.state.Kind == StateException {
		return e.state
	}

	if !e.bootstrapped {
		e.bootstrap()
		e.bootstrapped = true
	}
	if e.runnable() {
		e.stepOnce()
	}

	return e.finishStep()
}

// bootstrap implements spec.md §4.5 step 1: clear VM state to NONE, capture
// the current invocation depth, advance with StepIntoSkippingBreakpoints
// until the prelude's frame has been popped (the whole prelude runs here),
// then seed entry-point variables.
func (e *Emulator) bootstrap() {
	e.engine.ClearState()
	startDepth := e.engine.InvocationDepth()
	for e.runnable() && e.engine.InvocationDepth() >= startDepth {
		_ = e.engine.StepIntoSkippingBreakpoints()
		if !e.runnable() {
			break
		}
	}
	e.vars.SeedEntryPointInputs(e.entryPoint.Inputs, e.engine.EvaluationStack())
}

func (e *Emulator) runnable() bool {
	s := e.engine.State()
	return s != neovm.StateHalt && s != neovm.StateFault && s != neovm.StateBreak
}

// stepOnce executes exactly one StepInto and performs the gas accounting
// and variable-refresh bookkeeping of spec.md §4.5 steps 2-3. This is the
// one "real step" that happens on every Step() call that finds the VM
// runnable, except that a StepInto stopping on a breakpoint executes no
// instruction and is not accounted; the bootstrap's own
// context-skipping StepInto calls (spec.md §4.5 step 1) go directly through
// the engine and are not accounted here.
func (e *Emulator) stepOnce() {
	ctx := e.engine.CurrentContext()
	var offsetBefore int
	if ctx != nil {
		offsetBefore = ctx.IP
	}

	err := e.engine.StepInto()

	// A StepInto that stops on a breakpoint executes nothing, so there is
	// nothing to charge, count or report for it.
	if e.engine.State() == neovm.StateBreak {
		return
	}

	if ctx != nil && e.engine.State() == neovm.StateNone {
		e.vars.RefreshAt(uint32(ctx.IP), e.engine.EvaluationStack())
	}

	offset := offsetBefore
	op := e.engine.LastOpcode()
	syscallName := e.engine.LastSyscall()
	cost := e.gas.Cost(classify(op), syscallName)
	e.usedGas = e.usedGas.Add(cost)
	e.usedOpcodeCount++

	info := StepInfo{
		Offset:      uint32(offset),
		Opcode:      op,
		GasCost:     cost,
		SyscallName: syscallName,
	}
	if ctx != nil {
		info.BytecodeSlice = ctx.Script
	}
	e.recordStep(info)

	if err != nil {
		xlog.Warn("debugger: introspection failure swallowed", "offset", offset, "state", e.engine.State().String())
	}
}

func (e *Emulator) recordStep(info StepInfo) {
	e.recentSteps = append(e.recentSteps, info)
	if len(e.recentSteps) > e.stepHistoryLimit {
		e.recentSteps = e.recentSteps[len(e.recentSteps)-e.stepHistoryLimit:]
	}
	if e.onStep != nil {
		e.onStep(info)
	}
}

// finishStep implements spec.md §4.5 step 4: read VM status flags in
// priority order and translate to a DebuggerState, clearing BREAK on the
// VM so a subsequent Step can resume past it.
func (e *Emulator) finishStep() DebuggerState {
	offset := uint32(0)
	if ctx := e.engine.CurrentContext(); ctx != nil {
		offset = uint32(ctx.IP)
	}

	switch e.engine.State() {
	case neovm.StateFault:
		e.state = DebuggerState{Kind: StateException, Offset: offset}
	case neovm.StateBreak:
		e.state = DebuggerState{Kind: StateBreak, Offset: offset}
		e.engine.ClearState()
	case neovm.StateHalt:
		e.state = DebuggerState{Kind: StateFinished, Offset: offset}
	default:
		e.state = DebuggerState{Kind: StateRunning, Offset: offset}
	}
	return e.state
}

// Run repeats Step until the returned state is not Running (spec.md §4.5).
func (e *Emulator) Run() DebuggerState {
	for {
		s := e.Step()
		if s.Kind != StateRunning {
			return s
		}
	}
}

// GetOutput peeks the top of the evaluation stack, valid once Finished
// (spec.md §4.7).
func (e *Emulator) GetOutput() (stackitem.Item, bool) {
	if e.engine == nil {
		return stackitem.Unknown(), false
	}
	return e.engine.EvaluationStack().Peek(0)
}

// EvaluationStack returns a forward-order snapshot of the evaluation stack
// (spec.md §4.7's "lazy, restartable sequence" realized as a plain slice,
// since the core has no streaming requirement beyond re-readability).
func (e *Emulator) EvaluationStack() []stackitem.Item {
	if e.engine == nil {
		return nil
	}
	return e.engine.EvaluationStack().Items()
}

// AltStack returns a forward-order snapshot of the alt stack.
func (e *Emulator) AltStack() []stackitem.Item {
	if e.engine == nil {
		return nil
	}
	return e.engine.AltStack().Items()
}

// ExecutingBytecode returns the current call frame's script, or false if
// no VM is loaded (spec.md §4.7).
func (e *Emulator) ExecutingBytecode() ([]byte, bool) {
	if e.engine == nil {
		return nil, false
	}
	ctx := e.engine.CurrentContext()
	if ctx == nil {
		return nil, false
	}
	return ctx.Script, true
}

// GetVariable looks up the current value recorded for name (spec.md §4.7).
func (e *Emulator) GetVariable(name string) (vartrack.Variable, bool) {
	return e.vars.GetVariable(name)
}

// UsedGas returns the cumulative gas charged this session.
func (e *Emulator) UsedGas() decimal.Decimal { return e.usedGas }

// UsedOpcodeCount returns the number of opcodes executed this session.
func (e *Emulator) UsedOpcodeCount() uint64 { return e.usedOpcodeCount }

// Close releases the session token registry entry. Not called
// automatically — the registry holds a strong reference, so an Emulator
// remains resolvable via EmulatorFor (and is not garbage collected) until
// Close is called.
func (e *Emulator) Close() {
	unregisterSession(e.token)
}
