// Package report prints automata whose shortest synchronizing word is at least a threshold.
package report

import (
	"fmt"
	"io"

	"github.com/geange/cerny"
)

// Summary counts what a Writer has seen.
type Summary struct {
	Scanned  uint64
	Reported uint64
	// Longest is the greatest word length seen, -1 if nothing was synchronizing.
	Longest int
}

// Writer writes each automaton meeting the threshold as its transition table, one letter
// per line, followed by "<length> <word>" and a blank line.
type Writer struct {
	out       io.Writer
	threshold int
	summary   Summary
}

func NewWriter(out io.Writer, threshold int) *Writer {
	return &Writer{
		out:       out,
		threshold: threshold,
		summary:   Summary{Longest: -1},
	}
}

// Report Records res for a and prints both when res.Length reaches the threshold. It
// returns whether the automaton was printed.
func (w *Writer) Report(a *cerny.Automaton, res cerny.Result) (bool, error) {
	w.summary.Scanned++
	w.summary.Longest = max(w.summary.Longest, res.Length)
	if !res.Found() || res.Length < w.threshold {
		return false, nil
	}
	if _, err := fmt.Fprintf(w.out, "%s\n%d %s\n\n", a, res.Length, res.Word); err != nil {
		return false, fmt.Errorf("report: write: %w", err)
	}
	w.summary.Reported++
	return true, nil
}

func (w *Writer) Summary() Summary {
	return w.summary
}
