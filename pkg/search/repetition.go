package search

import "github.com/seekerror/fianco/pkg/board"

// RepetitionTracker is a path-local multiset of position hashes along the current
// search path, per spec §3. It is reset at the start of every top-level iterative
// deepening iteration (spec §4.8) and must be symmetrically incremented/decremented on
// every entry/return of a search invocation (spec §4.7 step 2, §8 "Repetition balance").
type RepetitionTracker map[board.ZobristHash]int

// NewRepetitionTracker starts a tracker with the root position already counted once.
func NewRepetitionTracker(root board.ZobristHash) RepetitionTracker {
	return RepetitionTracker{root: 1}
}

// Enter increments the count for hash and returns the resulting count.
func (r RepetitionTracker) Enter(hash board.ZobristHash) int {
	r[hash]++
	return r[hash]
}

// Leave decrements the count for hash, removing the key once it reaches zero so that an
// empty tracker truly reports size zero, per spec §8's repetition-balance invariant.
func (r RepetitionTracker) Leave(hash board.ZobristHash) {
	r[hash]--
	if r[hash] <= 0 {
		delete(r, hash)
	}
}
