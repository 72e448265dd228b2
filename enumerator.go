package cerny

import (
	"fmt"
	"iter"
	"math"
)

// Enumerator Walks every complete automaton with a fixed number of letters and states,
// each exactly once, in odometer order: the transition table is read as k*n digits in
// base n (letter 0 first, last state of the last letter fastest) starting from all zeros.
//
// The automaton returned by Automaton is a working buffer that Next overwrites. Callers
// that keep an automaton past the next step must Clone it, or use All.
type Enumerator struct {
	letters int
	states  int

	current *Automaton
	started bool
	done    bool
	index   uint64
}

// NewEnumerator Creates an enumerator positioned before the first automaton.
func NewEnumerator(letters, states int) (*Enumerator, error) {
	if letters < 0 || states < 0 {
		return nil, fmt.Errorf("%w: letters=%d states=%d", ErrInvalidDimensions, letters, states)
	}
	actions := make([]LetterAction, letters)
	for i := range actions {
		actions[i] = make(LetterAction, states)
	}
	return &Enumerator{
		letters: letters,
		states:  states,
		current: &Automaton{letters: actions},
	}, nil
}

// Next Advances to the next automaton. It returns false once the sequence is exhausted;
// the first call positions the enumerator on the all-zero table.
func (e *Enumerator) Next() bool {
	if e.done {
		return false
	}
	if !e.started {
		e.started = true
		return true
	}

	letter := e.letters - 1
	for letter >= 0 && !nextLetter(e.current.letters[letter]) {
		letter--
	}
	if letter < 0 {
		e.done = true
		return false
	}
	e.index++
	return true
}

// nextLetter Increments one letter's digits as a base-len(action) number, returning false
// (and leaving all digits at zero) when it wraps around.
func nextLetter(action LetterAction) bool {
	last := len(action) - 1
	i := last
	for i >= 0 && action[i] == last {
		action[i] = 0
		i--
	}
	if i < 0 {
		return false
	}
	action[i]++
	return true
}

// Automaton Returns the current automaton. The value is only valid until the next call
// to Next.
func (e *Enumerator) Automaton() *Automaton {
	return e.current
}

// Index Zero-based position of the current automaton in the sequence.
func (e *Enumerator) Index() uint64 {
	return e.index
}

// Borrowed Iterates over the remaining automata without copying. Each yielded value is
// overwritten when the loop body returns.
func (e *Enumerator) Borrowed() iter.Seq[*Automaton] {
	return func(yield func(*Automaton) bool) {
		for e.Next() {
			if !yield(e.current) {
				return
			}
		}
	}
}

// All Iterates over the remaining automata, yielding an owned copy of each.
func (e *Enumerator) All() iter.Seq[*Automaton] {
	return func(yield func(*Automaton) bool) {
		for a := range e.Borrowed() {
			if !yield(a.Clone()) {
				return
			}
		}
	}
}

// Total Returns states^(letters*states), the length of the sequence, and false if it does
// not fit in a uint64.
func Total(letters, states int) (uint64, bool) {
	if letters < 0 || states < 0 {
		return 0, false
	}
	total := uint64(1)
	for i := 0; i < letters*states; i++ {
		if total > math.MaxUint64/uint64(states) {
			return 0, false
		}
		total *= uint64(states)
	}
	return total, true
}
