package cerny

import "github.com/bits-and-blooms/bitset"

// FindSyncWord Returns a shortest synchronizing word of a: a shortest word taking the full
// state set to a single state. Automata that are not synchronizing, and the automaton with
// no states, yield NoPath.
func FindSyncWord(a *Automaton, opts ...Option) (Result, error) {
	if a == nil {
		return NoPath, ErrNilArgument
	}
	return Search(a, FullStateSet(a.StatesCount()), IsSingleton, Never, opts...)
}

// IsSynchronizing Reports whether a has a synchronizing word, using the pair criterion:
// an automaton is synchronizing iff every pair of states can be merged by some word.
// This runs in polynomial time, unlike FindSyncWord.
func IsSynchronizing(a *Automaton) bool {
	n := a.StatesCount()
	if n == 0 {
		return false
	}

	// Fixpoint from the diagonal: a pair is mergeable iff some letter
	// maps it onto a mergeable pair.
	mergeable := bitset.New(uint(n * n))
	pairIndex := func(p StatePair) uint {
		if p.First > p.Second {
			p.First, p.Second = p.Second, p.First
		}
		return uint(p.First*n + p.Second)
	}
	for s := 0; s < n; s++ {
		mergeable.Set(pairIndex(StatePair{s, s}))
	}

	for changed := true; changed; {
		changed = false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				p := StatePair{i, j}
				if mergeable.Test(pairIndex(p)) {
					continue
				}
				for _, letter := range a.letters {
					if mergeable.Test(pairIndex(letter.ApplyToPair(p))) {
						mergeable.Set(pairIndex(p))
						changed = true
						break
					}
				}
			}
		}
	}

	return mergeable.Count() == uint(n*(n+1)/2)
}
