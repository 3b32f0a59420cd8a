// Package txharness implements the Transaction Harness (C6, spec.md §4.6):
// construction of the synthetic transaction, outputs, and block context a
// contract script executes against.
//
// Grounded on _teacher_ref/core/types/transaction.go's Transaction/TxOut
// shape (an ordered list of outputs, each an asset reference, amount, and
// destination hash) and params/protocol_params.go's convention of naming
// magic constants rather than inlining them.
package txharness

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"github.com/SignatureToken/neo-debugger-tools/internal/common"
)

// CurrentHashPlaceholder stands in for "whatever script hash the executing
// contract turns out to have" when a transaction is built before that
// contract is known — e.g. a debug session configured before an account is
// bound. Reset rewrites any output carrying this sentinel to the real
// script hash once the contract loads (spec.md §4.6).
var CurrentHashPlaceholder = common.BytesToScriptHash([]byte("neo-debugger-tools/current-hash"))

// amountScale is the placeholder multiplier from spec.md §4.6/§9: the
// second output's amount is computed as 10*amount*1e8 - amount, standing in
// for a virtual balance not yet drawn from a ledger. big.Int, not a
// fixed-width unsigned type, because the formula is signed by construction —
// it is preserved verbatim including its ability to go negative (see
// DESIGN.md), which an unsigned type cannot represent without inventing a
// guard spec.md §9 says the source never had.
var amountScale = big.NewInt(1000000000) // 10 * 1e8

// TxOut is one transaction output.
type TxOut struct {
	AssetID     common.ScriptHash
	Amount      *big.Int
	Destination common.ScriptHash
}

// Transaction is the synthetic transaction the harness builds for one
// Reset. It carries two outputs: the real transfer and a placeholder
// change output back to the invoking source.
type Transaction struct {
	AssetID     common.ScriptHash
	Amount      *big.Int
	Destination common.ScriptHash
	Source      common.ScriptHash
	Outputs     []TxOut
}

// Hash is the signed data CHECKSIG/CHECKMULTISIG verify candidate
// signatures against when witness_mode is Default (spec.md §9's "script
// container"): double SHA256 over a deterministic field concatenation, the
// same digest shape as the real NEO transaction hash (double SHA256 of the
// serialized transaction) without implementing full wire serialization,
// which is out of scope here.
func (tx *Transaction) Hash() []byte {
	var buf []byte
	buf = append(buf, tx.AssetID[:]...)
	buf = append(buf, tx.Destination[:]...)
	buf = append(buf, tx.Source[:]...)
	buf = append(buf, amountBytes(tx.Amount)...)
	for _, out := range tx.Outputs {
		buf = append(buf, out.AssetID[:]...)
		buf = append(buf, out.Destination[:]...)
		buf = append(buf, amountBytes(out.Amount)...)
	}
	first := sha256.Sum256(buf)
	second := sha256.Sum256(first[:])
	return second[:]
}

func amountBytes(v *big.Int) []byte {
	if v == nil {
		return nil
	}
	b := v.Bytes()
	var sign [1]byte
	if v.Sign() < 0 {
		sign[0] = 1
	}
	length := make([]byte, 4)
	binary.BigEndian.PutUint32(length, uint32(len(b)))
	return append(append(sign[:], length...), b...)
}

// Block is the synthetic block context a transaction is confirmed into.
type Block struct {
	Transactions []*Transaction
}

// Blockchain is the upstream collaborator spec.md §6 names: current_block,
// generate_block, confirm_block.
type Blockchain interface {
	CurrentBlock() *Block
	GenerateBlock() *Block
	ConfirmBlock(*Block)
}

// Harness builds and confirms the synthetic transaction for one session.
type Harness struct {
	chain Blockchain
	// currentTransaction mirrors spec.md §9's observation: the source
	// clears its transaction field to nil at the end of Reset, even though
	// the VM retains a pointer to the transaction object itself. Preserved
	// rather than "fixed": the harness's own bookkeeping field goes nil,
	// while any *Transaction already handed to the VM remains valid.
	currentTransaction *Transaction
	// currentHashPlaceholder records the placeholder value last passed to
	// RewriteCurrentHash (spec.md §4.6's "current hash" placeholder).
	currentHashPlaceholder common.ScriptHash
}

// New constructs a Harness bound to a Blockchain collaborator.
func New(chain Blockchain) *Harness {
	return &Harness{chain: chain}
}

// SetTransaction constructs a new block and a transaction with two outputs:
// (assetID, amount, destination) and (assetID, 10*amount*1e8 - amount,
// source). source derives from invokerAddress, or a 20-zero-byte default if
// invokerAddress is the zero value. The second output's amount is
// amount*(1e9-1), so it goes negative for a negative amount — preserved
// verbatim from the source,
// which never guards against it (spec.md §9) — rather than erroring or
// clamping. The block is confirmed before SetTransaction returns.
func (h *Harness) SetTransaction(assetID common.ScriptHash, amount *big.Int, destination, invokerAddress common.ScriptHash) *Transaction {
	source := invokerAddress
	if source.IsZero() {
		source = common.ZeroScriptHash
	}

	first := new(big.Int).Mul(amount, amountScale)
	second := new(big.Int).Sub(first, amount)

	tx := &Transaction{
		AssetID:     assetID,
		Amount:      amount,
		Destination: destination,
		Source:      source,
		Outputs: []TxOut{
			{AssetID: assetID, Amount: amount, Destination: destination},
			{AssetID: assetID, Amount: second, Destination: source},
		},
	}

	block := h.chain.GenerateBlock()
	block.Transactions = append(block.Transactions, tx)
	h.chain.ConfirmBlock(block)

	h.currentTransaction = tx
	return tx
}

// RewriteCurrentHash walks the current transaction's outputs and replaces
// any destination/asset hash equal to the emulator's "current hash"
// placeholder with the contract's actual script hash, once it is known —
// called during Reset after the contract script loads (spec.md §4.6).
func (h *Harness) RewriteCurrentHash(placeholder, actual common.ScriptHash) {
	h.currentHashPlaceholder = placeholder
	if h.currentTransaction == nil {
		return
	}
	for i := range h.currentTransaction.Outputs {
		out := &h.currentTransaction.Outputs[i]
		if out.Destination == placeholder {
			out.Destination = actual
		}
		if out.AssetID == placeholder {
			out.AssetID = actual
		}
	}
}

// ClearCurrentTransaction is called at the end of Reset: the harness's own
// reference goes nil (spec.md §9), while any copy already handed to the VM
// continues to exist independently.
func (h *Harness) ClearCurrentTransaction() {
	h.currentTransaction = nil
}

// CurrentTransaction returns the transaction built by the most recent
// SetTransaction, or nil if it has since been cleared by Reset.
func (h *Harness) CurrentTransaction() *Transaction {
	return h.currentTransaction
}

// Message returns the current transaction's hash — the script container's
// signed data CHECKSIG/CHECKMULTISIG verify against (spec.md §9) — or nil if
// no transaction has been set.
func (h *Harness) Message() []byte {
	if h.currentTransaction == nil {
		return nil
	}
	return h.currentTransaction.Hash()
}
