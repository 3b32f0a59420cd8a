package debugger

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/SignatureToken/neo-debugger-tools/internal/abi"
	"github.com/SignatureToken/neo-debugger-tools/internal/common"
	"github.com/SignatureToken/neo-debugger-tools/internal/neovm"
	"github.com/SignatureToken/neo-debugger-tools/internal/paramtree"
	"github.com/SignatureToken/neo-debugger-tools/internal/txharness"
)

type fakeChain struct {
	block *txharness.Block
}

func (c *fakeChain) CurrentBlock() *txharness.Block  { return c.block }
func (c *fakeChain) GenerateBlock() *txharness.Block { c.block = &txharness.Block{}; return c.block }
func (c *fakeChain) ConfirmBlock(b *txharness.Block) { c.block = b }

type alwaysVerify struct{}

func (alwaysVerify) VerifySignature(message, sig, pubkey []byte) bool { return true }

func newTestEmulator(t *testing.T, bytecode []byte) *Emulator {
	t.Helper()
	e := New(&fakeChain{}, alwaysVerify{}, 0)
	e.SetExecutingAccount(Account{Bytecode: bytecode, ScriptHash: common.HexToScriptHash("0x01")})
	return e
}

// Scenario 1: empty-args entry, contract is a single PUSH1 byte — running
// off the end synthesizes the implicit RET (neovm.Context.Next's
// documented behavior).
func TestScenarioEmptyArgsEntry(t *testing.T) {
	e := newTestEmulator(t, []byte{byte(neovm.PUSH1)})
	require.NoError(t, e.Reset(nil, abi.EntryPoint{}))

	state := e.Run()
	require.Equal(t, StateFinished, state.Kind)

	out, ok := e.GetOutput()
	require.True(t, ok)
	i, ok := out.Integer()
	require.True(t, ok)
	require.Equal(t, int64(1), i.Int64())

	require.True(t, e.UsedGas().Equal(decimal.New(1, -3)))
}

// Scenario 2: single integer arg is visible via GetVariable immediately
// after Reset's entry-point seeding.
func TestScenarioSingleIntegerArgSeeding(t *testing.T) {
	e := newTestEmulator(t, []byte{byte(neovm.PUSH1)})
	entry := abi.EntryPoint{Name: "add1", Inputs: []abi.Parameter{{Name: "n", DeclaredType: "Integer"}}}

	require.NoError(t, e.Reset([]paramtree.Node{{Kind: paramtree.KindNumeric, Value: "5"}}, entry))

	v, ok := e.GetVariable("n")
	require.True(t, ok)
	n, ok := v.Value.AsInteger()
	require.True(t, ok)
	require.Equal(t, int64(5), n.Int64())
}

// Scenario 3: a breakpoint produces exactly one Break, and a subsequent Run
// resumes past it.
func TestScenarioBreakpointHitThenResume(t *testing.T) {
	// contract: NOP(0), NOP(1), NOP(2), RET(3) — break at offset 2.
	e := newTestEmulator(t, []byte{byte(neovm.NOP), byte(neovm.NOP), byte(neovm.NOP), byte(neovm.RET)})
	// Breakpoints must be set before Reset: RegisterAll pushes the current
	// set into the VM engine as part of rebuilding it.
	e.SetBreakpoint(2, true)
	require.NoError(t, e.Reset(nil, abi.EntryPoint{}))

	state := e.Run()
	require.Equal(t, StateBreak, state.Kind)
	require.Equal(t, uint32(2), state.Offset)

	state = e.Run()
	require.Equal(t, StateFinished, state.Kind)
}

// Scenario 5: a fault is sticky until the next Reset.
func TestScenarioFaultIsAbsorbing(t *testing.T) {
	e := newTestEmulator(t, []byte{byte(neovm.THROW)})
	require.NoError(t, e.Reset(nil, abi.EntryPoint{}))

	state := e.Run()
	require.Equal(t, StateException, state.Kind)

	again := e.Step()
	require.Equal(t, state, again)
}

func TestUsedGasNeverDecreasesAndResetsToZero(t *testing.T) {
	e := newTestEmulator(t, []byte{byte(neovm.NOP), byte(neovm.NOP), byte(neovm.RET)})
	require.NoError(t, e.Reset(nil, abi.EntryPoint{}))
	require.True(t, e.UsedGas().IsZero())

	prev := decimal.Zero
	for {
		s := e.Step()
		require.True(t, e.UsedGas().GreaterThanOrEqual(prev))
		prev = e.UsedGas()
		if s.Kind != StateRunning {
			break
		}
	}

	require.NoError(t, e.Reset(nil, abi.EntryPoint{}))
	require.True(t, e.UsedGas().IsZero())
}

func TestUsedOpcodeCountMatchesOnStepInvocations(t *testing.T) {
	e := newTestEmulator(t, []byte{byte(neovm.NOP), byte(neovm.NOP), byte(neovm.RET)})
	require.NoError(t, e.Reset(nil, abi.EntryPoint{}))

	var onStepCount uint64
	e.OnStep(func(StepInfo) { onStepCount++ })

	e.Run()
	require.Equal(t, e.UsedOpcodeCount(), onStepCount)
}

// EmulatorForEngine must resolve a bare VM-engine handle back to the
// Emulator that owns it (spec.md §4.7's reverse-navigation extension).
func TestEmulatorForEngineResolvesBackToOwningEmulator(t *testing.T) {
	e := newTestEmulator(t, []byte{byte(neovm.RET)})
	require.NoError(t, e.Reset(nil, abi.EntryPoint{}))

	got := EmulatorForEngine(e.engine)
	require.Same(t, e, got)
}

func TestEmulatorForEngineNilHandle(t *testing.T) {
	require.Nil(t, EmulatorForEngine(nil))
}

type recordingInvoker struct {
	gotMessage []byte
}

func (r *recordingInvoker) VerifySignature(message, sig, pubkey []byte) bool {
	r.gotMessage = message
	return true
}

// Reset must plumb the current transaction's hash into the engine as the
// CHECKSIG/CHECKMULTISIG signed message (spec.md §9's script container),
// rather than leaving CHECKSIG to compare a pubkey against itself.
func TestResetWiresTransactionHashAsCheckSigMessage(t *testing.T) {
	inv := &recordingInvoker{}
	e := New(&fakeChain{}, inv, 0)
	sig := []byte{0x01}
	pubkey := []byte{0x02}
	script := []byte{
		byte(neovm.PUSHBYTES1), sig[0],
		byte(neovm.PUSHBYTES1), pubkey[0],
		byte(neovm.CHECKSIG),
	}
	e.SetExecutingAccount(Account{Bytecode: script, ScriptHash: common.HexToScriptHash("0x01")})

	asset := common.HexToScriptHash("0x10")
	dest := common.HexToScriptHash("0x20")
	tx := e.harness.SetTransaction(asset, big.NewInt(5), dest, common.ZeroScriptHash)
	require.NoError(t, e.Reset(nil, abi.EntryPoint{}))

	e.Run()
	require.Equal(t, tx.Hash(), inv.gotMessage)
}

func TestResetWithNoTransactionSetsNilMessage(t *testing.T) {
	inv := &recordingInvoker{}
	e := New(&fakeChain{}, inv, 0)
	script := []byte{
		byte(neovm.PUSHBYTES1), 0x01,
		byte(neovm.PUSHBYTES1), 0x02,
		byte(neovm.CHECKSIG),
	}
	e.SetExecutingAccount(Account{Bytecode: script, ScriptHash: common.HexToScriptHash("0x01")})
	require.NoError(t, e.Reset(nil, abi.EntryPoint{}))

	e.Run()
	require.Nil(t, inv.gotMessage)
}

func TestStoragePutGasScalesWithPayload(t *testing.T) {
	e := New(&fakeChain{}, alwaysVerify{}, 0)
	// script: push a context, a key, then a 2048-byte value (so value ends
	// up on top, the order Storage.Put's handler pops in), then SYSCALL
	// "Neo.Storage.Put".
	payload := make([]byte, 2048)
	script := []byte{byte(neovm.PUSH1), byte(neovm.PUSH1)} // context, key placeholders
	script = append(script, byte(neovm.PUSHDATA2), byte(2048&0xFF), byte(2048>>8))
	script = append(script, payload...)
	name := "Neo.Storage.Put"
	script = append(script, byte(neovm.SYSCALL), byte(len(name)))
	script = append(script, []byte(name)...)
	script = append(script, byte(neovm.RET))

	e.SetExecutingAccount(Account{Bytecode: script, ScriptHash: common.HexToScriptHash("0x01")})
	require.NoError(t, e.Reset(nil, abi.EntryPoint{}))

	e.Run()
	require.True(t, e.UsedGas().GreaterThanOrEqual(decimal.New(2, 0)))
}
