// Package invoker provides the default InvokerContext implementation the
// VM engine's CHECKSIG/CHECKMULTISIG opcodes call into when witness_mode is
// Default (spec.md §9's abstraction over the source's process-wide
// "Runtime.invokerKeys" global).
//
// Grounded on the teacher's use of secp256k1 signature verification
// throughout accounts/abi and core/types — NEO uses the same curve for
// transaction witnesses, so github.com/btcsuite/btcd/btcec/v2 supplies the
// verification primitive.
package invoker

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// Keys is a default InvokerContext backed by a fixed set of keys the
// debugger front-end registers as "the current invoker" — standing in for
// the source's global Runtime.invokerKeys lookup (spec.md §9).
type Keys struct {
	pubkeys []*btcec.PublicKey
}

// New constructs a Keys context with no registered keys; until one is
// added, VerifySignature fails for every call that passes an empty pubkey.
func New() *Keys {
	return &Keys{}
}

// AddPublicKey registers a compressed secp256k1 public key as belonging to
// the current invoker.
func (k *Keys) AddPublicKey(compressed []byte) error {
	pk, err := btcec.ParsePubKey(compressed)
	if err != nil {
		return err
	}
	k.pubkeys = append(k.pubkeys, pk)
	return nil
}

// VerifySignature implements neovm.InvokerContext: it checks sig against
// message using pubkey directly (CHECKSIG/CHECKMULTISIG both pass an
// explicit candidate pubkey already popped off the stack), ignoring the
// registered key set unless pubkey is empty, in which case it falls back to
// any registered key — this lets a debugger session either drive
// CHECKSIG with an explicit pubkey argument from the script, or rely on the
// registered "current invoker" identity when the script omits one.
func (k *Keys) VerifySignature(message, sig, pubkey []byte) bool {
	candidates := k.pubkeys
	if len(pubkey) > 0 {
		pk, err := btcec.ParsePubKey(pubkey)
		if err != nil {
			return false
		}
		candidates = []*btcec.PublicKey{pk}
	}
	parsedSig, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	for _, pk := range candidates {
		if parsedSig.Verify(message, pk) {
			return true
		}
	}
	return false
}
