//go:build sat_debug

package dpllsat

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
)

// Building with -tags sat_debug compiles in the invariant assertions
// and state dump below. Neither is reachable from a normal build, and
// neither runs automatically even in a sat_debug build: callers (test
// helpers, or a hand-instrumented Propagate/Solve) invoke them
// explicitly at whatever point they want to inspect.

func (s *Solver) debugDumpState(label string) {
	fmt.Fprintf(os.Stderr, "=== %s ===\n", label)
	pretty.Println(s.assign.values)
}

// checkInvariants panics if a clause's two watch positions have
// collapsed onto the same position (only legal for length-1 clauses,
// which intentionally watch their sole literal twice) or if a watched
// literal is missing from its own watcher list. It is O(clauses) and
// is only ever called from debug-tagged test helpers, never from the
// hot search loop even in a sat_debug build.
func (wi *WatchIndex) checkInvariants() {
	store := wi.store
	for c := 0; c < store.NumClauses(); c++ {
		length := store.ClauseLen(c)
		if length >= 2 && wi.w1[c] == wi.w2[c] {
			panic(fmt.Sprintf("watch invariant W1 violated on clause %d", c))
		}
		if length == 0 {
			continue
		}
		for _, pos := range [2]int32{wi.w1[c], wi.w2[c]} {
			lit := store.Lits[pos]
			found := false
			for _, wc := range wi.Watchers(lit) {
				if int(wc) == c {
					found = true
					break
				}
			}
			if !found {
				panic(fmt.Sprintf("watcher-list inconsistency: clause %d watches %v but is not in its watcher list", c, lit))
			}
		}
	}
}
