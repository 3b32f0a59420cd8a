package debugger

import (
	"fmt"

	"github.com/SignatureToken/neo-debugger-tools/internal/neovm"
)

// storageMeter implements gaslib.StorageMeter: the size, in bytes, of the
// payload most recently written by a storage syscall (spec.md §6's
// "Storage collaborator"). Wired as a syscall handler below rather than a
// real key/value store, since persistence is explicitly out of scope
// (spec.md §1).
type storageMeter struct {
	lastPut int
}

func (s *storageMeter) LastStoragePayloadBytes() int { return s.lastPut }

// storageSyscalls returns the syscall handler table entries that feed
// storageMeter: Neo.Storage.Put pops (context, key, value) and records the
// value's length; everything else about the real storage semantics (actual
// persistence, GetContext handles) is left to the Blockchain/Storage
// collaborators this module doesn't own.
func storageSyscalls(meter *storageMeter) map[string]neovm.SyscallFunc {
	put := func(e *neovm.Engine) error {
		if e.EvaluationStack().Len() < 3 {
			return fmt.Errorf("neovm: Storage.Put requires 3 stack arguments")
		}
		value := e.EvaluationStack().Pop()
		_ = e.EvaluationStack().Pop() // key
		_ = e.EvaluationStack().Pop() // storage context
		b, _ := value.Bytes()
		meter.lastPut = len(b)
		return nil
	}
	return map[string]neovm.SyscallFunc{
		"Neo.Storage.Put":   put,
		"System.Storage.Put": put,
	}
}
