package dpllsat

// Propagator drives unit propagation to a fixed point or a conflict.
// It holds no state of its own beyond references to the clause store,
// watch index, and assignment it operates over.
type Propagator struct {
	store  *ClauseStore
	watch  *WatchIndex
	assign *Assignment

	queue []Literal // reused across calls to avoid reallocating
}

func newPropagator(store *ClauseStore, watch *WatchIndex, assign *Assignment) *Propagator {
	return &Propagator{store: store, watch: watch, assign: assign}
}

// Propagate extends the current assignment by unit propagation until
// no more implications follow, or reports a conflict. On conflict it
// returns immediately, leaving whatever partial propagation happened
// in place (the caller is expected to backtrack, which undoes it).
func (p *Propagator) Propagate() bool {
	a := p.assign

	// Step 1: seed the queue with the negation of every literal
	// implied by trail entries since the last cursor position.
	p.queue = p.queue[:0]
	for _, v := range a.trail[a.cursor:] {
		val := a.values[v]
		var implied Literal
		if val == True {
			implied = Literal(v)
		} else {
			implied = Literal(-v)
		}
		p.queue = append(p.queue, implied.Negate())
	}
	a.cursor = len(a.trail)

	for len(p.queue) > 0 {
		f := p.queue[0]
		p.queue = p.queue[1:]

		if !p.propagateFalseLiteral(f) {
			return false
		}
		// propagateFalseLiteral may have grown the trail (units it
		// discovered); fold those into the queue too, so a single
		// Propagate call drains everything reachable from the
		// original seed, not just one layer.
		for _, v := range a.trail[a.cursor:] {
			val := a.values[v]
			var implied Literal
			if val == True {
				implied = Literal(v)
			} else {
				implied = Literal(-v)
			}
			p.queue = append(p.queue, implied.Negate())
		}
		a.cursor = len(a.trail)
	}
	return true
}

// propagateFalseLiteral scans every clause watching f (which has just
// become false) and either finds each a new watch, detects it is
// already satisfied, discovers a unit implication, or reports a
// conflict. It iterates a snapshot of the watcher list while building
// the surviving list in place over the live list's backing array.
func (p *Propagator) propagateFalseLiteral(f Literal) bool {
	store, watch, a := p.store, p.watch, p.assign

	live := watch.Watchers(f)
	snapshot := append([]int32(nil), live...)
	remaining := live[:0]

	conflict := false
	for i, c := range snapshot {
		if !watch.watches(c, f) {
			// Stale snapshot entry (already moved away by an earlier
			// iteration in this same pass); drop it.
			continue
		}
		other := watch.otherWatch(c, f)
		if a.Value(other) == True {
			remaining = append(remaining, c)
			continue
		}

		start, end := store.Offsets[c], store.Offsets[c+1]
		w1, w2 := watch.w1[c], watch.w2[c]
		moved := false
		for k := start; k < end; k++ {
			if k == w1 || k == w2 {
				continue
			}
			r := store.Lits[k]
			if a.Value(r) != False {
				watch.moveWatch(c, f, k)
				moved = true
				break
			}
		}
		if moved {
			continue
		}

		remaining = append(remaining, c)
		if a.Value(other) == False {
			// The remaining, not-yet-visited snapshot entries are
			// still live watchers of f; they were never examined so
			// they cannot have moved. Preserve them before bailing.
			remaining = append(remaining, snapshot[i+1:]...)
			conflict = true
			break
		}
		// other is Unassigned: the clause is unit.
		if !a.Assign(other) {
			remaining = append(remaining, snapshot[i+1:]...)
			conflict = true
			break
		}
	}
	watch.setWatchers(f, remaining)
	return !conflict
}
