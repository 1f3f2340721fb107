package lattice

// Guard serializes read and write spans over shared editor state on a
// cooperative scheduler. There are no true parallel threads here — "held"
// means a logical access span is currently open, for example a render read
// in progress when a window-level release handler fires, or a mutation
// triggered from inside another mutation's callback.
//
// A write performed through Attempt either runs immediately (the common
// case) or, when the state is already held, is deferred one turn and retried
// by Flush. Each pending attempt is retried at most once per turn, with no
// bound on the number of turns, so a conflicting write is never dropped and
// never partially applied.
type Guard struct {
	held    bool
	pending []func()

	// deferred counts attempts that could not run immediately; surfaced in
	// debug stats.
	deferred int
}

// Attempt runs fn now if the state is free, holding the guard for the
// duration of the call. If the state is already held the attempt is queued
// and retried on the next Flush. fn must be self-contained: when it finally
// runs, it runs exactly once, as one atomic unit.
func (g *Guard) Attempt(fn func()) {
	if g.held {
		g.pending = append(g.pending, fn)
		g.deferred++
		return
	}
	g.held = true
	fn()
	g.held = false
}

// Inspect runs fn as a read span: the guard is held so that any write
// attempted from inside fn (or from a handler interleaved with it) is
// deferred rather than tearing the state mid-read. The previous hold is
// restored on exit, so a read span nested inside another open span does not
// release the outer hold early.
func (g *Guard) Inspect(fn func()) {
	prev := g.held
	g.held = true
	fn()
	g.held = prev
}

// Flush retries pending attempts in arrival order. Called once per
// scheduling turn (the input adapter calls it at the start of every frame).
// Attempts that still cannot run — the guard was re-held mid-flush — stay
// queued for the next turn. Returns the number of attempts that ran.
func (g *Guard) Flush() int {
	if len(g.pending) == 0 {
		return 0
	}
	batch := g.pending
	g.pending = nil
	ran := 0
	for i, fn := range batch {
		if g.held {
			g.pending = append(g.pending, batch[i:]...)
			break
		}
		g.held = true
		fn()
		g.held = false
		ran++
	}
	return ran
}

// Pending returns the number of attempts waiting for the next turn.
func (g *Guard) Pending() int {
	return len(g.pending)
}

// Held reports whether an access span is currently open.
func (g *Guard) Held() bool {
	return g.held
}
