package neovm

import (
	"math/big"
	"testing"
)

func TestPushAndRetHaltsWhenInvocationEmpty(t *testing.T) {
	e := NewEngine(nil, nil)
	e.LoadScript([]byte{byte(PUSH1)})
	if err := e.StepInto(); err != nil {
		t.Fatal(err)
	}
	if err := e.StepInto(); err != nil { // runs off the end -> synthetic RET
		t.Fatal(err)
	}
	if e.State() != StateHalt {
		t.Fatalf("state = %v, want HALT", e.State())
	}
	v, ok := e.EvaluationStack().Peek(0)
	if !ok {
		t.Fatal("expected a value on the stack")
	}
	i, _ := v.Integer()
	if i.Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("top of stack = %s, want 1", i)
	}
}

func TestBreakpointFiresExactlyOnceThenResumes(t *testing.T) {
	e := NewEngine(nil, nil)
	e.LoadScript([]byte{byte(NOP), byte(NOP), byte(RET)})
	e.AddBreakPoint(1)

	if err := e.StepInto(); err != nil { // offset 0: NOP
		t.Fatal(err)
	}
	if err := e.StepInto(); err != nil { // offset 1: breakpoint, does not execute
		t.Fatal(err)
	}
	if e.State() != StateBreak {
		t.Fatalf("state = %v, want BREAK", e.State())
	}

	e.ClearState()
	if err := e.StepInto(); err != nil { // offset 1: now executes NOP
		t.Fatal(err)
	}
	if e.State() == StateBreak {
		t.Fatal("breakpoint fired a second time without re-arming")
	}
}

func TestThrowFaults(t *testing.T) {
	e := NewEngine(nil, nil)
	e.LoadScript([]byte{byte(THROW)})
	if err := e.StepInto(); err == nil {
		t.Fatal("expected THROW to return an error")
	}
	if e.State() != StateFault {
		t.Fatalf("state = %v, want FAULT", e.State())
	}
}

func TestArithmeticAdd(t *testing.T) {
	e := NewEngine(nil, nil)
	e.LoadScript([]byte{byte(PUSH3), byte(PUSH4), byte(ADD)})
	for i := 0; i < 3; i++ {
		if err := e.StepInto(); err != nil {
			t.Fatal(err)
		}
	}
	v, _ := e.EvaluationStack().Peek(0)
	i, _ := v.Integer()
	if i.Cmp(big.NewInt(7)) != 0 {
		t.Fatalf("result = %s, want 7", i)
	}
}

func TestPackProducesArrayInForwardOrder(t *testing.T) {
	e := NewEngine(nil, nil)
	// push 30, 20, 10 (reverse index order), then length 3, then PACK.
	script := []byte{
		byte(PUSHBYTES1), 30,
		byte(PUSHBYTES1), 20,
		byte(PUSH10),
		byte(PUSH3),
		byte(PACK),
	}
	e.LoadScript(script)
	for !e.CurrentContext().AtEnd() {
		if err := e.StepInto(); err != nil {
			t.Fatal(err)
		}
	}
	v, ok := e.EvaluationStack().Peek(0)
	if !ok {
		t.Fatal("expected an array on the stack")
	}
	arr, ok := v.Array()
	if !ok {
		t.Fatal("expected top of stack to be an array")
	}
	if len(arr) != 3 {
		t.Fatalf("array length = %d, want 3", len(arr))
	}
	want := []int64{10, 20, 30}
	for i, item := range arr {
		n, _ := item.AsInteger()
		if n.Int64() != want[i] {
			t.Fatalf("arr[%d] = %s, want %d", i, n, want[i])
		}
	}
}

type recordingInvoker struct {
	gotMessage, gotSig, gotPubkey []byte
	result                        bool
}

func (r *recordingInvoker) VerifySignature(message, sig, pubkey []byte) bool {
	r.gotMessage, r.gotSig, r.gotPubkey = message, sig, pubkey
	return r.result
}

// CHECKSIG must check the candidate signature against the message configured
// via SetMessage, not against the pubkey operand popped off the stack.
func TestCheckSigVerifiesAgainstConfiguredMessageNotPubkey(t *testing.T) {
	inv := &recordingInvoker{result: true}
	e := NewEngine(inv, nil)
	e.SetMessage([]byte("the transaction hash"))

	sig := []byte{0xAA}
	pubkey := []byte{0xBB}
	script := []byte{
		byte(PUSHBYTES1), sig[0],
		byte(PUSHBYTES1), pubkey[0],
		byte(CHECKSIG),
	}
	e.LoadScript(script)
	for i := 0; i < 3; i++ {
		if err := e.StepInto(); err != nil {
			t.Fatal(err)
		}
	}

	if string(inv.gotMessage) != "the transaction hash" {
		t.Fatalf("invoker saw message %q, want the configured message", inv.gotMessage)
	}
	if string(inv.gotPubkey) == string(inv.gotMessage) {
		t.Fatal("pubkey must never be passed as the message")
	}

	v, ok := e.EvaluationStack().Peek(0)
	if !ok || !v.AsBool() {
		t.Fatal("expected CHECKSIG to push true")
	}
}

// A breakpoint at the current offset must not stop StepIntoSkippingBreakpoints
// — the stepping engine's bootstrap phase relies on this to run through the
// prelude's own call frame without ever landing in BREAK.
func TestStepIntoSkippingBreakpointsIgnoresBreakpoints(t *testing.T) {
	e := NewEngine(nil, nil)
	e.LoadScript([]byte{byte(NOP), byte(RET)})
	e.AddBreakPoint(0)

	if err := e.StepIntoSkippingBreakpoints(); err != nil {
		t.Fatal(err)
	}
	if e.State() == StateBreak {
		t.Fatal("StepIntoSkippingBreakpoints must never halt in BREAK")
	}
	if e.CurrentContext().IP != 1 {
		t.Fatalf("IP = %d, want 1 (NOP executed)", e.CurrentContext().IP)
	}
}

func TestCallAndReturn(t *testing.T) {
	e := NewEngine(nil, nil)
	// offset 0: CALL, 1-2: rel16 target (relative to IP=1, right after the
	// CALL opcode byte, before the operand is consumed), 3: RET (caller
	// tail, resumed after the callee returns); callee begins at offset 5:
	// PUSH5, RET. target = 1 + 4 = 5.
	prog := []byte{byte(CALL), 4, 0, byte(RET), 0, byte(PUSH5), byte(RET)}
	e.LoadScript(prog)

	for e.State() == StateNone {
		ctx := e.CurrentContext()
		if ctx == nil {
			break
		}
		if err := e.StepInto(); err != nil {
			t.Fatal(err)
		}
		if e.InvocationDepth() == 0 {
			break
		}
	}
	if e.State() != StateHalt {
		t.Fatalf("state = %v, want HALT", e.State())
	}
}
