// Package paramtree implements the Argument Marshaller (C1, spec.md §4.1):
// a ParamTree, a ConvertArgument function that lowers one tree node into a
// typed "converted" value, and a Lower function that emits the reverse-order
// stack-loading prelude script spec.md §4.1 describes.
//
// Grounded on _teacher_ref/accounts/abi/argument.go's Pack (walk an ordered,
// typed argument list and serialize each one according to its Type), here
// retargeted from ABI-encoded bytes to a sequence of VM push opcodes.
package paramtree

import (
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"

	"github.com/SignatureToken/neo-debugger-tools/internal/neovm"
)

// Kind discriminates a ParamTree leaf/branch.
type Kind int

const (
	KindNumeric Kind = iota
	KindBoolean
	KindNull
	KindString
	KindComposite
)

// Node is one element of the language-agnostic parameter tree the facade
// receives (spec.md §6's ParamTree).
type Node struct {
	Kind     Kind
	Value    string
	Children []Node
}

// convKind discriminates the intermediate value ConvertArgument produces.
type convKind int

const (
	convByteArray convKind = iota
	convList
	convBigInt
	convBool
	convNull
	convString
)

// Converted is the language-agnostic value ConvertArgument lowers a Node
// into, before it is turned into push opcodes by Lower.
type Converted struct {
	kind  convKind
	bytes []byte
	list  []Converted
	big   *big.Int
	bval  bool
	str   string
}

// ConvertArgument implements the conversion rules of spec.md §4.1.
func ConvertArgument(n Node) Converted {
	switch n.Kind {
	case KindComposite:
		if allByteRange(n.Children) {
			b := make([]byte, len(n.Children))
			for i, c := range n.Children {
				v, _ := strconv.ParseInt(c.Value, 10, 32)
				b[i] = byte(v)
			}
			return Converted{kind: convByteArray, bytes: b}
		}
		list := make([]Converted, len(n.Children))
		for i, c := range n.Children {
			list[i] = ConvertArgument(c)
		}
		return Converted{kind: convList, list: list}
	case KindNumeric:
		v, ok := new(big.Int).SetString(n.Value, 10)
		if !ok {
			v = big.NewInt(0)
		}
		return Converted{kind: convBigInt, big: v}
	case KindBoolean:
		return Converted{kind: convBool, bval: strings.EqualFold(n.Value, "true")}
	case KindNull:
		return Converted{kind: convNull}
	case KindString:
		if n.Value == "" {
			return Converted{kind: convNull}
		}
		if strings.HasPrefix(n.Value, "0x") {
			return Converted{kind: convByteArray, bytes: decodeHex(n.Value[2:])}
		}
		return Converted{kind: convString, str: n.Value}
	default:
		return Converted{kind: convNull}
	}
}

// allByteRange reports whether every child is a Numeric leaf parseable as an
// integer in [0, 255] — the composite-becomes-byte[] rule of spec.md §4.1.
func allByteRange(children []Node) bool {
	if len(children) == 0 {
		return false
	}
	for _, c := range children {
		if c.Kind != KindNumeric {
			return false
		}
		v, err := strconv.ParseInt(c.Value, 10, 32)
		if err != nil || v < 0 || v > 255 {
			return false
		}
	}
	return true
}

// decodeHex decodes an even-length hex string outright; an odd-length string
// is left-padded with a zero nibble first (spec.md §9's documented, resolved
// open question — this is the one place that padding happens, never applied
// silently elsewhere).
func decodeHex(s string) []byte {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil
	}
	return b
}

// ErrUnsupportedParamKind is returned by Lower/emit when a Converted value
// has no emission rule (spec.md §7's UnsupportedParamKind).
type ErrUnsupportedParamKind struct {
	Kind convKind
}

func (e ErrUnsupportedParamKind) Error() string {
	return "paramtree: unsupported converted param kind"
}

// Lower converts an ordered list of ParamTree children (the ABI-ordered
// argument list) into the prelude script: each argument is converted, the
// converted values are collected in child order, and then emitted by
// popping that collection — producing reverse emission, so the first
// argument lands on top of the evaluation stack (spec.md §4.1).
func Lower(children []Node) ([]byte, error) {
	converted := make([]Converted, len(children))
	for i, c := range children {
		converted[i] = ConvertArgument(c)
	}

	var script []byte
	for i := len(converted) - 1; i >= 0; i-- {
		b, err := emit(converted[i])
		if err != nil {
			return nil, err
		}
		script = append(script, b...)
	}
	return script, nil
}

func emit(v Converted) ([]byte, error) {
	switch v.kind {
	case convByteArray:
		var out []byte
		for i := len(v.bytes) - 1; i >= 0; i-- {
			out = append(out, pushInteger(big.NewInt(int64(v.bytes[i])))...)
		}
		out = append(out, pushInteger(big.NewInt(int64(len(v.bytes))))...)
		out = append(out, byte(neovm.PACK))
		return out, nil
	case convList:
		var out []byte
		for _, elem := range v.list {
			b, err := emit(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, b...)
		}
		out = append(out, pushInteger(big.NewInt(int64(len(v.list))))...)
		out = append(out, byte(neovm.PACK))
		return out, nil
	case convNull:
		return pushEmptyString(), nil
	case convString:
		return pushBytes([]byte(v.str)), nil
	case convBool:
		if v.bval {
			return []byte{byte(neovm.PUSH1)}, nil
		}
		return []byte{byte(neovm.PUSH0)}, nil
	case convBigInt:
		return pushInteger(v.big), nil
	default:
		return nil, ErrUnsupportedParamKind{Kind: v.kind}
	}
}

func pushEmptyString() []byte { return []byte{byte(neovm.PUSH0)} }

// pushInteger emits the VM's typed integer push: PUSHM1/PUSH0..PUSH16 for
// the small range the NEO VM has dedicated opcodes for, else a minimal
// little-endian two's-complement PUSHDATA.
func pushInteger(v *big.Int) []byte {
	if v.Cmp(big.NewInt(-1)) == 0 {
		return []byte{byte(neovm.PUSHM1)}
	}
	if v.Sign() >= 0 && v.Cmp(big.NewInt(16)) <= 0 {
		if v.Sign() == 0 {
			return []byte{byte(neovm.PUSH0)}
		}
		return []byte{byte(neovm.PUSH1) + byte(v.Int64()) - 1}
	}
	return pushBytes(signedLittleEndian(v))
}

func signedLittleEndian(v *big.Int) []byte {
	neg := v.Sign() < 0
	abs := new(big.Int).Abs(v)
	be := abs.Bytes()
	// Ensure the high bit of the most significant byte correctly encodes
	// sign once reversed to little-endian; pad with a zero byte if the
	// natural encoding of a positive value would otherwise look negative.
	if len(be) == 0 {
		be = []byte{0}
	}
	if !neg && be[0]&0x80 != 0 {
		be = append([]byte{0}, be...)
	}
	if neg {
		n := new(big.Int).Lsh(big.NewInt(1), uint(len(be)*8))
		n.Sub(n, abs)
		be = n.Bytes()
		if len(be) > 0 && be[0]&0x80 == 0 {
			be = append([]byte{0xFF}, be...)
		}
	}
	le := make([]byte, len(be))
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	return le
}

func pushBytes(b []byte) []byte {
	n := len(b)
	switch {
	case n == 0:
		return []byte{byte(neovm.PUSH0)}
	case n <= int(neovm.PUSHBYTES75):
		out := make([]byte, 0, 1+n)
		out = append(out, byte(n))
		return append(out, b...)
	case n <= 0xFF:
		out := []byte{byte(neovm.PUSHDATA1), byte(n)}
		return append(out, b...)
	case n <= 0xFFFF:
		out := []byte{byte(neovm.PUSHDATA2), byte(n), byte(n >> 8)}
		return append(out, b...)
	default:
		out := []byte{byte(neovm.PUSHDATA4), byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)}
		return append(out, b...)
	}
}
