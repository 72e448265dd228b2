package cerny

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Automaton A complete deterministic finite automaton given by the actions of its letters.
// Letter i is the i-th action; every action has the same length, the number of states.
// There is no initial or accepting state: synchronization concerns the whole state set.
type Automaton struct {
	letters []LetterAction
}

// NewAutomaton Builds an automaton from its letter actions. The actions are used as given,
// not copied.
func NewAutomaton(letters ...LetterAction) (*Automaton, error) {
	for i, l := range letters {
		if len(l) != len(letters[0]) {
			return nil, fmt.Errorf("%w: letter %d has %d states, letter 0 has %d",
				ErrUnequalLetters, i, len(l), len(letters[0]))
		}
		if !l.Valid() {
			return nil, fmt.Errorf("%w: letter %d is %v", ErrStateOutOfRange, i, l)
		}
	}
	return &Automaton{letters: letters}, nil
}

// MustAutomaton Like NewAutomaton but panics on error. Intended for tests and literals.
func MustAutomaton(letters ...LetterAction) *Automaton {
	a, err := NewAutomaton(letters...)
	if err != nil {
		panic(err)
	}
	return a
}

// Cerny Returns the n-state Černý automaton: letter a is the cyclic shift i -> i+1 mod n,
// letter b maps 0 to 1 and fixes every other state. Its shortest synchronizing word has
// length (n-1)^2.
func Cerny(n int) (*Automaton, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: Černý automaton needs at least one state, got %d",
			ErrInvalidDimensions, n)
	}
	a := make(LetterAction, n)
	b := make(LetterAction, n)
	for i := 0; i < n; i++ {
		a[i] = (i + 1) % n
		b[i] = i
	}
	b[0] = 1 % n
	return NewAutomaton(a, b)
}

func (a *Automaton) LettersCount() int {
	return len(a.letters)
}

// StatesCount Number of states, 0 if the automaton has no letters.
func (a *Automaton) StatesCount() int {
	if len(a.letters) == 0 {
		return 0
	}
	return len(a.letters[0])
}

// Letter Returns the action of letter i.
func (a *Automaton) Letter(i int) LetterAction {
	return a.letters[i]
}

// Letters Iterates over the letters in index order.
func (a *Automaton) Letters() iter.Seq2[int, LetterAction] {
	return func(yield func(int, LetterAction) bool) {
		for i, l := range a.letters {
			if !yield(i, l) {
				return
			}
		}
	}
}

// Apply Returns the state reached from state by letter.
func (a *Automaton) Apply(letter, state int) int {
	return a.letters[letter].Apply(state)
}

// ApplyToSet Returns the image of states under letter.
func (a *Automaton) ApplyToSet(letter int, states *StateSet) *StateSet {
	return a.letters[letter].ApplyToSet(states)
}

// ApplyWord Applies the letters in order, starting from states.
func (a *Automaton) ApplyWord(word []int, states *StateSet) *StateSet {
	for _, letter := range word {
		states = a.ApplyToSet(letter, states)
	}
	return states
}

// Clone Returns a deep copy that shares no memory with a.
func (a *Automaton) Clone() *Automaton {
	letters := make([]LetterAction, len(a.letters))
	for i, l := range a.letters {
		letters[i] = l.Clone()
	}
	return &Automaton{letters: letters}
}

// Equal Reports whether both automata have identical transition tables.
func (a *Automaton) Equal(other *Automaton) bool {
	return slices.EqualFunc(a.letters, other.letters, func(x, y LetterAction) bool {
		return slices.Equal(x, y)
	})
}

// String One line per letter, as printed by the reporting driver.
func (a *Automaton) String() string {
	lines := make([]string, len(a.letters))
	for i, l := range a.letters {
		lines[i] = l.String()
	}
	return strings.Join(lines, "\n")
}
