package txharness

import (
	"math/big"
	"testing"

	"github.com/SignatureToken/neo-debugger-tools/internal/common"
)

type fakeChain struct {
	block     *Block
	confirmed []*Block
}

func (c *fakeChain) CurrentBlock() *Block  { return c.block }
func (c *fakeChain) GenerateBlock() *Block { b := &Block{}; c.block = b; return b }
func (c *fakeChain) ConfirmBlock(b *Block) { c.confirmed = append(c.confirmed, b) }

func TestSetTransactionBuildsTwoOutputs(t *testing.T) {
	chain := &fakeChain{}
	h := New(chain)
	asset := common.HexToScriptHash("0x01")
	dest := common.HexToScriptHash("0x02")

	tx := h.SetTransaction(asset, big.NewInt(5), dest, common.ZeroScriptHash)
	if len(tx.Outputs) != 2 {
		t.Fatalf("outputs = %d, want 2", len(tx.Outputs))
	}
	if tx.Outputs[0].Amount.Cmp(big.NewInt(5)) != 0 {
		t.Fatalf("first output amount = %s, want 5", tx.Outputs[0].Amount)
	}

	// second output = 10*5*1e8 - 5
	want := new(big.Int).Mul(big.NewInt(5), amountScale)
	want.Sub(want, big.NewInt(5))
	if tx.Outputs[1].Amount.Cmp(want) != 0 {
		t.Fatalf("second output amount = %s, want %s", tx.Outputs[1].Amount, want)
	}
	if len(chain.confirmed) != 1 {
		t.Fatalf("expected block to be confirmed exactly once, got %d", len(chain.confirmed))
	}
}

// The placeholder formula is preserved verbatim, including its ability to go
// negative, which happens for a negative amount (spec.md §9) — no guard, no
// error.
func TestSetTransactionSecondOutputCanGoNegative(t *testing.T) {
	chain := &fakeChain{}
	h := New(chain)
	asset := common.HexToScriptHash("0x01")
	dest := common.HexToScriptHash("0x02")

	amount := new(big.Int).Neg(big.NewInt(1))
	tx := h.SetTransaction(asset, amount, dest, common.ZeroScriptHash)

	if tx.Outputs[1].Amount.Sign() >= 0 {
		t.Fatalf("expected second output amount to be negative, got %s", tx.Outputs[1].Amount)
	}
}

func TestSetTransactionDefaultsSourceToZeroHash(t *testing.T) {
	chain := &fakeChain{}
	h := New(chain)
	tx := h.SetTransaction(common.ZeroScriptHash, big.NewInt(1), common.ZeroScriptHash, common.ZeroScriptHash)
	if tx.Source != common.ZeroScriptHash {
		t.Fatalf("source = %s, want zero hash default", tx.Source)
	}
}

func TestRewriteCurrentHashReplacesPlaceholder(t *testing.T) {
	chain := &fakeChain{}
	h := New(chain)
	actual := common.HexToScriptHash("0xAABBCC")
	h.SetTransaction(CurrentHashPlaceholder, big.NewInt(1), CurrentHashPlaceholder, common.ZeroScriptHash)

	h.RewriteCurrentHash(CurrentHashPlaceholder, actual)

	tx := h.CurrentTransaction()
	for _, out := range tx.Outputs {
		if out.Destination == CurrentHashPlaceholder || out.AssetID == CurrentHashPlaceholder {
			t.Fatalf("placeholder hash was not rewritten: %+v", out)
		}
	}
}

func TestClearCurrentTransactionGoesNilButCopySurvives(t *testing.T) {
	chain := &fakeChain{}
	h := New(chain)
	tx := h.SetTransaction(common.ZeroScriptHash, big.NewInt(1), common.ZeroScriptHash, common.ZeroScriptHash)

	h.ClearCurrentTransaction()
	if h.CurrentTransaction() != nil {
		t.Fatal("expected harness's current transaction to be nil after clearing")
	}
	// The transaction object returned by SetTransaction remains valid
	// independently of the harness's own bookkeeping field (spec.md §9).
	if tx == nil || len(tx.Outputs) != 2 {
		t.Fatal("expected the previously returned transaction to remain intact")
	}
}

func TestMessageIsNilWithoutATransaction(t *testing.T) {
	h := New(&fakeChain{})
	if h.Message() != nil {
		t.Fatal("expected Message() to be nil with no current transaction")
	}
}

func TestMessageTracksCurrentTransactionHash(t *testing.T) {
	chain := &fakeChain{}
	h := New(chain)
	tx := h.SetTransaction(common.HexToScriptHash("0x01"), big.NewInt(5), common.HexToScriptHash("0x02"), common.ZeroScriptHash)

	got := h.Message()
	if got == nil {
		t.Fatal("expected a non-nil message once a transaction is set")
	}
	if string(got) != string(tx.Hash()) {
		t.Fatal("Message() did not match the current transaction's hash")
	}

	h.ClearCurrentTransaction()
	if h.Message() != nil {
		t.Fatal("expected Message() to go nil once the transaction is cleared")
	}
}

func TestTransactionHashIsDeterministicAndSensitiveToAmount(t *testing.T) {
	asset := common.HexToScriptHash("0x01")
	dest := common.HexToScriptHash("0x02")

	a := &Transaction{AssetID: asset, Destination: dest, Amount: big.NewInt(5)}
	b := &Transaction{AssetID: asset, Destination: dest, Amount: big.NewInt(5)}
	if string(a.Hash()) != string(b.Hash()) {
		t.Fatal("expected identical transactions to hash identically")
	}

	c := &Transaction{AssetID: asset, Destination: dest, Amount: big.NewInt(6)}
	if string(a.Hash()) == string(c.Hash()) {
		t.Fatal("expected a different amount to change the hash")
	}
}
