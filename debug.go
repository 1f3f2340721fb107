package lattice

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set Editor debug flag so that graph
// operations (which lack an Editor pointer) can check it cheaply. Only valid
// with a single Editor; multiple Editors with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, structural
// invariants are re-checked after destructive operations and deferred-write
// activity is logged to stderr.
func (e *Editor) SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugLogFlush prints deferred-mutation activity for one turn.
func debugLogFlush(ran, pending int) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[lattice] flush: ran %d deferred mutation(s), %d still pending\n", ran, pending)
}

// debugMaxChildCount guards against runaway edge creation.
const debugMaxChildCount = 1000

// debugCheckChildCount warns on stderr if a container has an implausible
// number of children.
func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[lattice] warning: node %d has %d children (threshold %d)\n",
			n.Handle, len(n.children), debugMaxChildCount)
	}
}

// debugCheckNoDangling panics if any child list references a handle that is
// no longer in the arena. A failure here is a logic defect in delete
// scrubbing, not an expected race.
func debugCheckNoDangling(e *Editor) {
	for _, h := range e.graph.Handles() {
		for _, c := range e.graph.Node(h).Children() {
			if e.graph.Node(c) == nil {
				panic(fmt.Sprintf("lattice debug: node %d references deleted child %d", h, c))
			}
		}
	}
}

// debugPanic aborts on an internal lookup that was expected to succeed.
// Unlike the silent no-ops on the interaction path, this class of failure
// indicates the arena and the gesture state have diverged.
func debugPanic(format string, args ...any) {
	panic("lattice: " + fmt.Sprintf(format, args...))
}
