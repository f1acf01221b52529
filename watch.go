package dpllsat

// WatchIndex is the two-watched-literal index built once over a
// ClauseStore. w1/w2 are absolute indices into the store's shared
// Lits buffer; watchers lists clause indices keyed by litIndex.
type WatchIndex struct {
	store *ClauseStore

	w1, w2   []int32
	watchers [][]int32 // indexed by litIndex(l, store.NumVars)

	// UnitLiterals holds the literal of every length-1 clause, in
	// clause order. Longer clauses are watched normally; length-0
	// clauses get no watchers at all.
	UnitLiterals []Literal
}

// NewWatchIndex builds the watched-literal index for store: length >= 2
// clauses watch their first two literals; length-1 clauses watch
// their single literal twice
// (harmless, since that literal is seeded true before search begins
// and so is never the false literal driving propagation); length-0
// clauses get no watchers.
func NewWatchIndex(store *ClauseStore) *WatchIndex {
	n := store.NumClauses()
	wi := &WatchIndex{
		store:    store,
		w1:       make([]int32, n),
		w2:       make([]int32, n),
		watchers: make([][]int32, 2*store.NumVars+1),
	}
	for c := 0; c < n; c++ {
		start := store.Offsets[c]
		length := store.ClauseLen(c)
		switch {
		case length == 0:
			// no watchers
		case length == 1:
			wi.w1[c] = start
			wi.w2[c] = start
			lit := store.Lits[start]
			wi.addWatcher(lit, int32(c))
			wi.addWatcher(lit, int32(c))
			wi.UnitLiterals = append(wi.UnitLiterals, lit)
		default:
			wi.w1[c] = start
			wi.w2[c] = start + 1
			wi.addWatcher(store.Lits[start], int32(c))
			wi.addWatcher(store.Lits[start+1], int32(c))
		}
	}
	return wi
}

func (wi *WatchIndex) idx(l Literal) int {
	return litIndex(l, wi.store.NumVars)
}

func (wi *WatchIndex) addWatcher(l Literal, c int32) {
	i := wi.idx(l)
	wi.watchers[i] = append(wi.watchers[i], c)
}

// Watchers returns the clause indices currently watching l. Callers
// that mutate the index while iterating must snapshot this slice
// first (see Propagator.propagateFalseLiteral).
func (wi *WatchIndex) Watchers(l Literal) []int32 {
	return wi.watchers[wi.idx(l)]
}

// setWatchers replaces the live watcher list for l. Used by the
// propagator after it finishes rebuilding the survivors for a literal
// it just finished processing.
func (wi *WatchIndex) setWatchers(l Literal, cs []int32) {
	wi.watchers[wi.idx(l)] = cs
}

// otherWatch returns the watched literal of clause c that is not f,
// assuming f is one of c's two watched literals.
func (wi *WatchIndex) otherWatch(c int32, f Literal) Literal {
	store := wi.store
	if store.Lits[wi.w1[c]] == f {
		return store.Lits[wi.w2[c]]
	}
	return store.Lits[wi.w1[c]]
}

// watches reports whether f is currently one of clause c's two
// watched positions.
func (wi *WatchIndex) watches(c int32, f Literal) bool {
	store := wi.store
	return store.Lits[wi.w1[c]] == f || store.Lits[wi.w2[c]] == f
}

// moveWatch repositions the watch on clause c that was on f so that
// it instead points at absolute position k. The watcher-list removal
// from f's list is the
// caller's responsibility (the propagator rebuilds f's list in one
// pass rather than splicing out single entries); moveWatch only
// updates w1/w2 and appends c to the new position's watcher list.
func (wi *WatchIndex) moveWatch(c int32, f Literal, k int32) {
	if wi.store.Lits[wi.w1[c]] == f {
		wi.w1[c] = k
	} else {
		wi.w2[c] = k
	}
	wi.addWatcher(wi.store.Lits[k], c)
}
