// Package common provides the small fixed-size value types shared across the
// debugger core, mirroring the teacher's common.Hash/common.Address pattern
// (see _teacher_ref/common/types_template.go) hand-instantiated for NEO's
// 20-byte script hash instead of generated per-width.
package common

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcutil/base58"
)

// ScriptHashLength is the width, in bytes, of a NEO script hash.
const ScriptHashLength = 20

// ScriptHash is the 20-byte identifier derived from a contract's bytecode, or
// from a verification script for an ordinary account.
type ScriptHash [ScriptHashLength]byte

// ZeroScriptHash is the 20-zero-byte default used when no invoker address is
// known (spec.md §4.6).
var ZeroScriptHash = ScriptHash{}

// BytesToScriptHash converts b to a ScriptHash, right-aligning as
// common.BytesToHash does: if b is longer than 20 bytes, the left-most bytes
// are dropped; if shorter, it is zero-padded on the left.
func BytesToScriptHash(b []byte) ScriptHash {
	var h ScriptHash
	h.SetBytes(b)
	return h
}

// HexToScriptHash decodes a hex string (with or without "0x") into a
// ScriptHash.
func HexToScriptHash(s string) ScriptHash {
	s = strings.TrimPrefix(s, "0x")
	b, _ := hex.DecodeString(s)
	return BytesToScriptHash(b)
}

// SetBytes sets the hash to the value of b, right-aligned.
func (h *ScriptHash) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-ScriptHashLength:]
	}
	copy(h[ScriptHashLength-len(b):], b)
}

// Bytes returns the raw 20 bytes of the hash.
func (h ScriptHash) Bytes() []byte { return h[:] }

// Hex returns the "0x"-prefixed hex encoding of the hash.
func (h ScriptHash) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

// IsZero reports whether h is the all-zero default hash.
func (h ScriptHash) IsZero() bool { return h == ZeroScriptHash }

// addressVersion is the NEO mainnet address-version byte prepended before
// base58check encoding.
const addressVersion = 0x17

// Address renders h as a NEO-style base58check address: a version byte
// followed by the script hash, followed by a 4-byte checksum, all base58
// encoded. This is purely a debugger-facing display helper; the emulator
// never round-trips an address back into a ScriptHash.
func (h ScriptHash) Address() string {
	return base58.CheckEncode(h[:], addressVersion)
}

// String implements fmt.Stringer.
func (h ScriptHash) String() string { return h.Hex() }
