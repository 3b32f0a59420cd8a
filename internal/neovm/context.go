package neovm

import "github.com/SignatureToken/neo-debugger-tools/internal/common"

// Context is a single call frame: one loaded script and its instruction
// pointer. Grounded on other_examples/nspcc-dev-neo-go__vm.go's
// stack.Context/stack.Invocation shape (reference only, not copied) and on
// _teacher_ref/core/vm/contract.go's Code+ip pairing.
type Context struct {
	Script     []byte
	IP         int
	scriptHash common.ScriptHash
}

// NewContext loads script as a new call frame at instruction pointer zero.
func NewContext(script []byte) *Context {
	return &Context{Script: script, scriptHash: scriptHashOf(script)}
}

// ScriptHash returns the script hash of the loaded script.
func (c *Context) ScriptHash() common.ScriptHash { return c.scriptHash }

// AtEnd reports whether the instruction pointer has run off the end of the
// script, which RET treats as "pop this frame".
func (c *Context) AtEnd() bool { return c.IP >= len(c.Script) }

// Next reads and advances past one opcode, along with any inline operand
// bytes PUSHBYTES1..75/PUSHDATA1/2/4 carry and SYSCALL's one-byte
// length-prefixed name. It never errors: running past
// the end of the script is reported by AtEnd, matching the NEO VM behavior
// noted in the reference implementation ("in the NEO-VM specs this is
// ignored and we return the RET opcode").
func (c *Context) Next() (OpCode, []byte) {
	if c.AtEnd() {
		return RET, nil
	}
	op := OpCode(c.Script[c.IP])
	c.IP++
	switch {
	case op >= PUSHBYTES1 && op <= PUSHBYTES75:
		n := int(op)
		operand := c.readOperand(n)
		return op, operand
	case op == PUSHDATA1:
		n := int(c.readByte())
		return op, c.readOperand(n)
	case op == PUSHDATA2:
		n := int(c.readUint16())
		return op, c.readOperand(n)
	case op == PUSHDATA4:
		n := int(c.readUint32())
		return op, c.readOperand(n)
	case op == SYSCALL:
		n := int(c.readByte())
		return op, c.readOperand(n)
	default:
		return op, nil
	}
}

func (c *Context) readByte() byte {
	if c.AtEnd() {
		return 0
	}
	b := c.Script[c.IP]
	c.IP++
	return b
}

func (c *Context) readUint16() int {
	lo, hi := c.readByte(), c.readByte()
	return int(lo) | int(hi)<<8
}

func (c *Context) readUint32() int {
	b0, b1, b2, b3 := c.readByte(), c.readByte(), c.readByte(), c.readByte()
	return int(b0) | int(b1)<<8 | int(b2)<<16 | int(b3)<<24
}

func (c *Context) readOperand(n int) []byte {
	end := c.IP + n
	if end > len(c.Script) {
		end = len(c.Script)
	}
	out := c.Script[c.IP:end]
	c.IP = end
	return out
}
