package cerny

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Predicate A pure, total, deterministic test on state sets. Search may call it any number
// of times with the same set and relies on getting the same answer.
type Predicate func(states *StateSet) bool

// Never Matches no set.
func Never(*StateSet) bool { return false }

// IsSingleton Matches sets with exactly one state.
func IsSingleton(states *StateSet) bool { return states.Size() == 1 }

// Result The outcome of a search. Length is -1 and Word empty when no set matching the end
// predicate is reachable.
type Result struct {
	Length  int
	Word    string
	Letters []int
	// Visited is the number of distinct sets recorded before the search stopped.
	Visited int
}

// NoPath The result reported when the end predicate is never met.
var NoPath = Result{Length: -1}

// Found Reports whether a word was found.
func (r Result) Found() bool {
	return r.Length >= 0
}

// Option configures Search.
type Option func(*searchOptions)

type searchOptions struct {
	alphabet  Alphabet
	onDequeue func(states *StateSet, front int)
	logger    *slog.Logger
	err       error
}

func defaultOptions() searchOptions {
	return searchOptions{
		alphabet:  DefaultAlphabet,
		onDequeue: func(*StateSet, int) {},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithAlphabet Symbols used to spell the resulting word. It must have at least as many
// symbols as the automaton has letters.
func WithAlphabet(alphabet Alphabet) Option {
	return func(o *searchOptions) {
		if alphabet.Size() == 0 {
			o.err = fmt.Errorf("%w: empty alphabet", ErrOptionViolation)
			return
		}
		o.alphabet = alphabet
	}
}

// WithOnDequeue Registers a hook called with every set taken off the queue and its
// distance from the start set.
func WithOnDequeue(fn func(states *StateSet, front int)) Option {
	return func(o *searchOptions) {
		if fn != nil {
			o.onDequeue = fn
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *searchOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// record What the search knows about a visited set: its distance from the start set, the
// letter that first produced it and the set it was produced from. Written once.
type record struct {
	front    int
	letter   int
	previous *StateSet
}

// Search Breadth-first search in the subset automaton of a, from start to the nearest set
// satisfying isEnd. Sets satisfying isError are never entered.
//
// Sets are dequeued oldest first and expanded letter by letter in index order, so the
// first match is at minimum distance and ties are broken by the lexicographically least
// sequence of letter indices along the first-found predecessors. The start set itself is
// tested first and matches with the empty word.
//
// An error is returned only for invalid arguments or options; an unreachable end is
// reported as NoPath.
func Search(a *Automaton, start *StateSet, isEnd, isError Predicate, opts ...Option) (Result, error) {
	if a == nil || start == nil || isEnd == nil || isError == nil {
		return NoPath, ErrNilArgument
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return NoPath, o.err
	}
	if err := o.alphabet.Check(a.LettersCount()); err != nil {
		return NoPath, err
	}
	if m := start.Max(); m >= a.StatesCount() {
		return NoPath, fmt.Errorf("%w: start set %v, %d states", ErrStateOutOfRange, start, a.StatesCount())
	}

	w := &walker{
		automaton: a,
		isEnd:     isEnd,
		isError:   isError,
		opts:      o,
		visited:   NewHashMap[*StateSet, record](WithCapacity(64)),
	}
	res := w.run(start)
	o.logger.LogAttrs(context.Background(), slog.LevelDebug, "search finished",
		slog.Int("letters", a.LettersCount()),
		slog.Int("states", a.StatesCount()),
		slog.Int("length", res.Length),
		slog.String("word", res.Word),
		slog.Int("visited", res.Visited))
	return res, nil
}

// walker Mutable state of one search.
type walker struct {
	automaton *Automaton
	isEnd     Predicate
	isError   Predicate
	opts      searchOptions

	visited *HashMap[*StateSet, record]
	queue   []*StateSet
}

func (w *walker) run(start *StateSet) Result {
	w.visited.Set(start, record{front: 0, letter: -1})
	if w.isEnd(start) {
		return w.result(start)
	}
	w.queue = append(w.queue, start)

	for len(w.queue) > 0 {
		current := w.queue[0]
		w.queue[0] = nil
		w.queue = w.queue[1:]

		rec, _ := w.visited.Get(current)
		w.opts.onDequeue(current, rec.front)
		front := rec.front + 1

		for letter, action := range w.automaton.Letters() {
			image := action.ApplyToSet(current)
			if !w.visited.Contains(image) {
				if w.isError(image) {
					continue
				}
				w.visited.Set(image, record{front: front, letter: letter, previous: current})
				w.queue = append(w.queue, image)
			}

			if w.isEnd(image) {
				return w.result(image)
			}
		}
	}

	res := NoPath
	res.Visited = w.visited.Len()
	return res
}

// result Rebuilds the word by walking predecessors from end back to the start set.
func (w *walker) result(end *StateSet) Result {
	rec, _ := w.visited.Get(end)
	letters := make([]int, rec.front)
	for rec.front > 0 {
		letters[rec.front-1] = rec.letter
		rec, _ = w.visited.Get(rec.previous)
	}
	return Result{
		Length:  len(letters),
		Word:    w.opts.alphabet.Spell(letters),
		Letters: letters,
		Visited: w.visited.Len(),
	}
}
