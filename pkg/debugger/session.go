package debugger

import (
	"github.com/google/uuid"

	"github.com/SignatureToken/neo-debugger-tools/internal/neovm"
)

// sessionRegistry resolves the cyclic VM-engine<->emulator ownership spec.md
// §9 flags: given a VM handle, reach the owning Emulator. Rather than a
// direct back-pointer baked into the VM engine (which would make
// internal/neovm depend on pkg/debugger), each Emulator is assigned a
// stable token at construction and registers itself in a package-level map;
// collaborators that need to navigate back (e.g. a syscall handler wanting
// ExecutingAccount) carry the token, not a pointer. The map holds ordinary
// (strong) pointers: an entry stays until Close removes it.
var sessionRegistry = struct {
	m map[string]*Emulator
}{m: make(map[string]*Emulator)}

// SessionToken identifies one Emulator instance across the process.
type SessionToken string

func newSessionToken() SessionToken {
	return SessionToken(uuid.NewString())
}

func registerSession(tok SessionToken, e *Emulator) {
	sessionRegistry.m[string(tok)] = e
}

func unregisterSession(tok SessionToken) {
	delete(sessionRegistry.m, string(tok))
}

// EmulatorFor resolves a session token back to its owning Emulator, or nil
// if the session has been torn down.
func EmulatorFor(tok SessionToken) *Emulator {
	return sessionRegistry.m[string(tok)]
}

// EmulatorForEngine completes spec.md §4.7's reverse-navigation extension:
// given a bare VM engine handle (e.g. one a syscall handler receives), walk
// back to the Emulator that owns it via the token Reset stamps onto the
// engine with SetSessionToken. Returns nil if engine is nil, carries no
// token, or its session has been torn down.
func EmulatorForEngine(engine *neovm.Engine) *Emulator {
	if engine == nil {
		return nil
	}
	return EmulatorFor(SessionToken(engine.SessionToken()))
}
