// Package stackitem implements the tagged sum type that flows across the
// evaluation and alt stacks (spec.md §3 "stack_item") and the converted
// parameter values the argument marshaller produces (spec.md §4.1).
//
// This mirrors the teacher's own stack cell (_teacher_ref/core/vm/stack.go
// held *big.Int; the EVM has only one stack cell type, a 256-bit word) but
// NEO's stack is dynamically typed, so Item is a small discriminated union
// instead of a single numeric type.
package stackitem

import "math/big"

// Kind discriminates the variant held by an Item.
type Kind int

const (
	KindUnknown Kind = iota
	KindBoolean
	KindInteger
	KindByteArray
	KindString
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "Boolean"
	case KindInteger:
		return "Integer"
	case KindByteArray:
		return "ByteArray"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	default:
		return "Unknown"
	}
}

// Item is a single stack-resident value: exactly one of its accessors is
// meaningful, selected by Kind.
type Item struct {
	kind  Kind
	b     bool
	i     *big.Int
	bytes []byte
	s     string
	arr   []Item
}

// Unknown returns the genuine "don't know what this is" variant, used when a
// stack peek fails or a type can't be determined — it is not a sentinel for
// an error, it is itself a valid, documented variant (spec.md §3).
func Unknown() Item { return Item{kind: KindUnknown} }

// NewBoolean wraps a boolean.
func NewBoolean(v bool) Item { return Item{kind: KindBoolean, b: v} }

// NewInteger wraps an arbitrary-precision integer. NEO integers are not
// width-bounded, so big.Int is used rather than a fixed-width type.
func NewInteger(v *big.Int) Item {
	if v == nil {
		v = new(big.Int)
	}
	return Item{kind: KindInteger, i: new(big.Int).Set(v)}
}

// NewByteArray wraps a raw byte slice.
func NewByteArray(v []byte) Item {
	cp := make([]byte, len(v))
	copy(cp, v)
	return Item{kind: KindByteArray, bytes: cp}
}

// NewString wraps a UTF-8 string.
func NewString(v string) Item { return Item{kind: KindString, s: v} }

// NewArray wraps an ordered list of items.
func NewArray(v []Item) Item {
	cp := make([]Item, len(v))
	copy(cp, v)
	return Item{kind: KindArray, arr: cp}
}

// Kind reports which variant this Item holds.
func (it Item) Kind() Kind { return it.kind }

// Boolean returns the boolean value and whether it is the held variant.
func (it Item) Boolean() (bool, bool) { return it.b, it.kind == KindBoolean }

// Integer returns the integer value and whether it is the held variant.
func (it Item) Integer() (*big.Int, bool) { return it.i, it.kind == KindInteger }

// Bytes returns the byte-array value and whether it is the held variant.
func (it Item) Bytes() ([]byte, bool) { return it.bytes, it.kind == KindByteArray }

// Str returns the string value and whether it is the held variant.
func (it Item) Str() (string, bool) { return it.s, it.kind == KindString }

// Array returns the array value and whether it is the held variant.
func (it Item) Array() ([]Item, bool) { return it.arr, it.kind == KindArray }

// AsInteger coerces a ByteArray to the integer it encodes (little-endian
// two's complement, NEO's own convention for numeric literals that don't
// fit a single PUSH1..PUSH16 opcode) in addition to returning a genuine
// Integer variant directly.
func (it Item) AsInteger() (*big.Int, bool) {
	switch it.kind {
	case KindInteger:
		return it.i, true
	case KindByteArray:
		return bytesToSignedBigInt(it.bytes), true
	default:
		return nil, false
	}
}

func bytesToSignedBigInt(b []byte) *big.Int {
	if len(b) == 0 {
		return big.NewInt(0)
	}
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	v := new(big.Int).SetBytes(be)
	if be[0]&0x80 != 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(len(be)*8)))
	}
	return v
}

// AsBool coerces any variant to a boolean the way NEO's VM does when a
// non-boolean value is evaluated in a boolean context: zero/empty is false,
// anything else is true.
func (it Item) AsBool() bool {
	switch it.kind {
	case KindBoolean:
		return it.b
	case KindInteger:
		return it.i != nil && it.i.Sign() != 0
	case KindByteArray:
		for _, b := range it.bytes {
			if b != 0 {
				return true
			}
		}
		return false
	case KindString:
		return it.s != ""
	case KindArray:
		return len(it.arr) > 0
	default:
		return false
	}
}
