package cerny

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetterAction(t *testing.T) {
	l := LetterAction{1, 1, 2}

	t.Run("Apply", func(t *testing.T) {
		assert.Equal(t, 1, l.Apply(0))
		assert.Equal(t, 2, l.Apply(2))
		assert.Equal(t, StatePair{1, 2}, l.ApplyToPair(StatePair{0, 2}))
	})

	t.Run("ApplyToSet", func(t *testing.T) {
		assert.Equal(t, []int{1, 2}, l.ApplyToSet(FullStateSet(3)).GetArray())
		assert.Equal(t, []int{1}, l.ApplyToSet(NewStateSet(0, 1)).GetArray())
		assert.True(t, l.ApplyToSet(NewStateSet()).IsEmpty())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "1 1 2", l.String())
	})

	t.Run("Clone", func(t *testing.T) {
		c := l.Clone()
		c[0] = 0
		assert.Equal(t, 1, l[0])
	})
}

// Image of a union is the union of images, and images never grow.
func TestApplyToSetHomomorphism(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	randomSet := func(n int) *StateSet {
		var states []int
		for s := 0; s < n; s++ {
			if rnd.Intn(2) == 0 {
				states = append(states, s)
			}
		}
		return NewStateSet(states...)
	}

	for round := 0; round < 200; round++ {
		n := 1 + rnd.Intn(9)
		l := make(LetterAction, n)
		for i := range l {
			l[i] = rnd.Intn(n)
		}
		a, b := randomSet(n), randomSet(n)

		assert.True(t, l.ApplyToSet(a.Union(b)).Equals(l.ApplyToSet(a).Union(l.ApplyToSet(b))),
			"letter %v, A=%v, B=%v", l, a, b)
		assert.LessOrEqual(t, l.ApplyToSet(a).Size(), a.Size())
	}
}

func TestNewAutomaton(t *testing.T) {
	t.Run("UnequalLetters", func(t *testing.T) {
		_, err := NewAutomaton(LetterAction{0, 1}, LetterAction{0, 1, 2})
		assert.ErrorIs(t, err, ErrUnequalLetters)
	})

	t.Run("StateOutOfRange", func(t *testing.T) {
		_, err := NewAutomaton(LetterAction{0, 2})
		assert.ErrorIs(t, err, ErrStateOutOfRange)
	})

	t.Run("Empty", func(t *testing.T) {
		a, err := NewAutomaton()
		require.NoError(t, err)
		assert.Equal(t, 0, a.LettersCount())
		assert.Equal(t, 0, a.StatesCount())
		assert.Equal(t, "", a.String())
	})

	t.Run("Counts", func(t *testing.T) {
		a := MustAutomaton(LetterAction{1, 2, 0}, LetterAction{1, 1, 2})
		assert.Equal(t, 2, a.LettersCount())
		assert.Equal(t, 3, a.StatesCount())
		assert.Equal(t, 2, a.Apply(0, 1))
		assert.Equal(t, []int{1, 2}, a.ApplyToSet(1, FullStateSet(3)).GetArray())
		assert.Equal(t, "1 2 0\n1 1 2", a.String())
	})

	t.Run("LettersInOrder", func(t *testing.T) {
		a := MustAutomaton(LetterAction{0}, LetterAction{0}, LetterAction{0})
		var indices []int
		for i := range a.Letters() {
			indices = append(indices, i)
		}
		assert.Equal(t, []int{0, 1, 2}, indices)
	})
}

func TestAutomatonClone(t *testing.T) {
	a := MustAutomaton(LetterAction{0, 1}, LetterAction{1, 0})
	c := a.Clone()
	assert.True(t, a.Equal(c))

	c.Letter(0)[0] = 1
	assert.False(t, a.Equal(c))
	assert.Equal(t, 0, a.Apply(0, 0))
}

func TestCerny(t *testing.T) {
	a, err := Cerny(3)
	require.NoError(t, err)
	assert.Equal(t, LetterAction{1, 2, 0}, a.Letter(0))
	assert.Equal(t, LetterAction{1, 1, 2}, a.Letter(1))

	one, err := Cerny(1)
	require.NoError(t, err)
	assert.Equal(t, 1, one.StatesCount())

	_, err = Cerny(0)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}
