package cerny

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateSet(t *testing.T) {
	t.Run("Members", func(t *testing.T) {
		s := NewStateSet(3, 1, 3, -1)
		assert.Equal(t, 2, s.Size())
		assert.Equal(t, []int{1, 3}, s.GetArray())
		assert.True(t, s.Contains(1))
		assert.False(t, s.Contains(2))
		assert.False(t, s.Contains(-1))
		assert.Equal(t, 3, s.Max())
		assert.Equal(t, "{1 3}", s.String())
	})

	t.Run("Empty", func(t *testing.T) {
		s := NewStateSet()
		assert.True(t, s.IsEmpty())
		assert.Equal(t, -1, s.Max())
		assert.Equal(t, []int{}, s.GetArray())
		assert.True(t, s.Equals(FullStateSet(0)))
	})

	t.Run("Full", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 2, 3}, FullStateSet(4).GetArray())
	})

	t.Run("EqualsIgnoresCapacity", func(t *testing.T) {
		a := FullStateSet(70)
		b := NewStateSet(FullStateSet(70).GetArray()...)
		assert.True(t, a.Equals(b))
		assert.True(t, b.Equals(a))
		assert.Equal(t, a.Hash(), b.Hash())

		small := NewStateSet(1)
		large := FullStateSet(100).bits.Clone()
		large.ClearAll()
		large.Set(1)
		assert.True(t, small.Equals(newStateSet(large)))
	})

	t.Run("NotEqual", func(t *testing.T) {
		assert.False(t, NewStateSet(0, 1).Equals(NewStateSet(0, 2)))
		assert.False(t, NewStateSet(0, 1).Equals(NewStateSet(0)))
		assert.False(t, NewStateSet(0).Equals(testKey{0, ""}))
	})

	t.Run("Union", func(t *testing.T) {
		u := NewStateSet(0, 4).Union(NewStateSet(1, 4))
		assert.Equal(t, []int{0, 1, 4}, u.GetArray())
	})
}
