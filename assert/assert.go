package assert

import "github.com/oomph-ac/robobattle/oerror"

// IsTrue panics with a BattleError built from message and args if ok is false. It guards internal
// invariants only; nothing a controller does should be able to trip it.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
