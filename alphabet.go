package cerny

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultAlphabet Eight symbols, enough for automata with up to eight letters.
var DefaultAlphabet = Alphabet{symbols: []rune("abcdefgh")}

// Alphabet Maps letter indices to the symbols used to spell words.
type Alphabet struct {
	symbols []rune
}

// NewAlphabet Returns the alphabet whose i-th symbol is the i-th rune of symbols.
func NewAlphabet(symbols string) (Alphabet, error) {
	runes := []rune(symbols)
	seen := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		if _, ok := seen[r]; ok {
			return Alphabet{}, fmt.Errorf("%w: %q", ErrDuplicateSymbol, r)
		}
		seen[r] = struct{}{}
	}
	return Alphabet{symbols: runes}, nil
}

func (a Alphabet) Size() int {
	return len(a.symbols)
}

func (a Alphabet) Symbol(letter int) rune {
	return a.symbols[letter]
}

// Check Returns ErrAlphabetTooSmall unless every one of letters indices has a symbol.
func (a Alphabet) Check(letters int) error {
	if letters > len(a.symbols) {
		return fmt.Errorf("%w: %d letters, %d symbols", ErrAlphabetTooSmall, letters, len(a.symbols))
	}
	return nil
}

// Spell Returns the word for the given letter indices.
func (a Alphabet) Spell(word []int) string {
	var sb strings.Builder
	for _, letter := range word {
		sb.WriteRune(a.symbols[letter])
	}
	return sb.String()
}

// Parse Returns the letter indices of word.
func (a Alphabet) Parse(word string) ([]int, error) {
	letters := make([]int, 0, len(word))
	for _, r := range word {
		i := slices.Index(a.symbols, r)
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, r)
		}
		letters = append(letters, i)
	}
	return letters, nil
}

func (a Alphabet) String() string {
	return string(a.symbols)
}
