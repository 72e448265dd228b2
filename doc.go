// Package cerny searches complete deterministic automata for long shortest synchronizing
// words.
//
// An Automaton is a list of LetterActions over the states 0..n-1. An Enumerator walks
// every automaton with fixed letter and state counts. Search runs a breadth-first search
// in the subset automaton; FindSyncWord specializes it to drive the full state set to a
// single state.
package cerny
