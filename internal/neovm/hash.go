package neovm

import (
	"crypto/sha1"
	"crypto/sha256"

	"github.com/SignatureToken/neo-debugger-tools/internal/common"
	"golang.org/x/crypto/ripemd160"
)

// hash160 is SHA256 followed by RIPEMD160, the NEO script-hash and the
// HASH160 opcode's digest.
func hash160(b []byte) []byte {
	sum := sha256.Sum256(b)
	r := ripemd160.New()
	r.Write(sum[:])
	return r.Sum(nil)
}

// hash256 is double SHA256, the HASH256 opcode's digest.
func hash256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

func sha1Sum(b []byte) []byte {
	sum := sha1.Sum(b)
	return sum[:]
}

func sha256Sum(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}

func scriptHashOf(script []byte) common.ScriptHash {
	return common.BytesToScriptHash(hash160(script))
}
