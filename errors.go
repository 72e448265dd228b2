package cerny

import "errors"

var (
	// ErrUnequalLetters is returned when the letters of an automaton act on domains of
	// different sizes.
	ErrUnequalLetters = errors.New("cerny: letters have unequal lengths")

	// ErrStateOutOfRange is returned when a transition or start state is not in [0, n).
	ErrStateOutOfRange = errors.New("cerny: state out of range")

	// ErrInvalidDimensions is returned for negative letter or state counts.
	ErrInvalidDimensions = errors.New("cerny: invalid automaton dimensions")

	// ErrAlphabetTooSmall is returned when the alphabet has fewer symbols than the
	// automaton has letters.
	ErrAlphabetTooSmall = errors.New("cerny: alphabet too small")

	ErrDuplicateSymbol = errors.New("cerny: duplicate alphabet symbol")

	ErrUnknownSymbol = errors.New("cerny: unknown alphabet symbol")

	// ErrOptionViolation is returned when an invalid Option is supplied to Search.
	ErrOptionViolation = errors.New("cerny: invalid option supplied")

	ErrNilArgument = errors.New("cerny: nil argument")
)
