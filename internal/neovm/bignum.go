package neovm

import "math/big"

// bigInt is an alias kept local to this package so arithmetic opcode
// handlers read as domain code rather than math/big call sites.
type bigInt = big.Int

func bigFromInt64(v int64) *big.Int { return big.NewInt(v) }
