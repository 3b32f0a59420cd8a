package paramtree

import (
	"bytes"
	"testing"

	"github.com/SignatureToken/neo-debugger-tools/internal/neovm"
)

func numeric(v string) Node { return Node{Kind: KindNumeric, Value: v} }

func TestConvertArgumentByteRangeComposite(t *testing.T) {
	n := Node{Kind: KindComposite, Children: []Node{numeric("10"), numeric("20"), numeric("30")}}
	c := ConvertArgument(n)
	if c.kind != convByteArray {
		t.Fatalf("expected byte array conversion, got kind %d", c.kind)
	}
	want := []byte{10, 20, 30}
	if !bytes.Equal(c.bytes, want) {
		t.Fatalf("bytes = %v, want %v", c.bytes, want)
	}
}

func TestConvertArgumentNonByteRangeCompositeIsList(t *testing.T) {
	n := Node{Kind: KindComposite, Children: []Node{numeric("10"), numeric("999")}}
	c := ConvertArgument(n)
	if c.kind != convList {
		t.Fatalf("expected list conversion, got kind %d", c.kind)
	}
	if len(c.list) != 2 {
		t.Fatalf("list length = %d, want 2", len(c.list))
	}
}

func TestConvertArgumentHexString(t *testing.T) {
	c := ConvertArgument(Node{Kind: KindString, Value: "0xA1B2"})
	if c.kind != convByteArray {
		t.Fatalf("expected byte array, got kind %d", c.kind)
	}
	if !bytes.Equal(c.bytes, []byte{0xA1, 0xB2}) {
		t.Fatalf("bytes = %x", c.bytes)
	}
}

func TestConvertArgumentOddLengthHexIsLeftPadded(t *testing.T) {
	c := ConvertArgument(Node{Kind: KindString, Value: "0x1"})
	if !bytes.Equal(c.bytes, []byte{0x01}) {
		t.Fatalf("bytes = %x, want 01", c.bytes)
	}
}

func TestConvertArgumentBooleanCaseInsensitive(t *testing.T) {
	c := ConvertArgument(Node{Kind: KindBoolean, Value: "TRUE"})
	if !c.bval {
		t.Fatal("expected true")
	}
	c = ConvertArgument(Node{Kind: KindBoolean, Value: "no"})
	if c.bval {
		t.Fatal("expected false")
	}
}

func TestConvertArgumentUnparseableNumericIsZero(t *testing.T) {
	c := ConvertArgument(numeric("not-a-number"))
	if c.big.Sign() != 0 {
		t.Fatalf("expected 0, got %s", c.big)
	}
}

// TestByteArrayEmissionOrder verifies scenario 6: a byte-range composite
// [10, 20, 30] emits pushes in reverse index order, then length, then PACK.
func TestByteArrayEmissionOrder(t *testing.T) {
	script, err := Lower([]Node{
		{Kind: KindComposite, Children: []Node{numeric("10"), numeric("20"), numeric("30")}},
	})
	if err != nil {
		t.Fatal(err)
	}
	// 30 and 20 exceed PUSH16's small-int range (only 0..16 get a dedicated
	// opcode), so those pushes are PUSHBYTES1 + the literal byte; 10 fits
	// PUSH16's range and gets its own dedicated opcode.
	expect := []byte{
		byte(neovm.PUSHBYTES1), 30,
		byte(neovm.PUSHBYTES1), 20,
		byte(neovm.PUSH10),
		byte(neovm.PUSH3), // length 3
		byte(neovm.PACK),
	}

	if !bytes.Equal(script, expect) {
		t.Fatalf("script = %x, want %x", script, expect)
	}
}

func TestLowerIsPureFunctionOfInput(t *testing.T) {
	nodes := []Node{numeric("5"), {Kind: KindBoolean, Value: "true"}}
	a, err := Lower(nodes)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Lower(nodes)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("Lower is not pure: %x != %x", a, b)
	}
}

func TestLowerReverseEmissionOrder(t *testing.T) {
	// Two numeric args: ABI order [5, 7]; reverse emission means 7 is pushed
	// before 5, so 5 ends on top of stack.
	script, err := Lower([]Node{numeric("5"), numeric("7")})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{byte(neovm.PUSH7), byte(neovm.PUSH5)}
	if !bytes.Equal(script, want) {
		t.Fatalf("script = %x, want %x", script, want)
	}
}
