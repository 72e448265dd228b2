package cerny

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// LetterAction The action of one letter: position i holds the state reached from state i.
// The length is the number of states and never changes.
type LetterAction []int

// StatePair An ordered pair of states.
type StatePair struct {
	First  int
	Second int
}

func (l LetterAction) Len() int {
	return len(l)
}

// Apply Returns the state reached from state.
func (l LetterAction) Apply(state int) int {
	return l[state]
}

// ApplyToPair Applies the letter to both states of the pair.
func (l LetterAction) ApplyToPair(p StatePair) StatePair {
	return StatePair{First: l.Apply(p.First), Second: l.Apply(p.Second)}
}

// ApplyToSet Returns the image {Apply(s) : s in states}. The image is never larger than
// states, and the empty set maps to the empty set.
func (l LetterAction) ApplyToSet(states *StateSet) *StateSet {
	image := bitset.New(uint(len(l)))
	for i, ok := states.bits.NextSet(0); ok; i, ok = states.bits.NextSet(i + 1) {
		image.Set(uint(l.Apply(int(i))))
	}
	return newStateSet(image)
}

// Valid Returns true if every entry is a state of the domain.
func (l LetterAction) Valid() bool {
	for _, s := range l {
		if s < 0 || s >= len(l) {
			return false
		}
	}
	return true
}

func (l LetterAction) Clone() LetterAction {
	c := make(LetterAction, len(l))
	copy(c, l)
	return c
}

func (l LetterAction) String() string {
	parts := make([]string, len(l))
	for i, s := range l {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, " ")
}
