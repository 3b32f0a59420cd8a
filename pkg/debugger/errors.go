package debugger

import "fmt"

// ErrBytecodeMissing is returned by Reset when it is called before
// SetExecutingAccount has bound contract bytecode (spec.md §7).
type ErrBytecodeMissing struct{}

func (ErrBytecodeMissing) Error() string {
	return "debugger: Reset called before an executing account was set"
}

// ErrVMFault carries the last known offset at which the VM faulted
// (spec.md §7's VmFault, surfaced through DebuggerState.Exception rather
// than returned directly from Step/Run).
type ErrVMFault struct {
	Offset uint32
	Cause  error
}

func (e ErrVMFault) Error() string {
	return fmt.Sprintf("debugger: VM fault at offset %d: %v", e.Offset, e.Cause)
}

func (e ErrVMFault) Unwrap() error { return e.Cause }
