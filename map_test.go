package cerny

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testKey struct {
	part1 int
	part2 string
}

func (k testKey) Hash() uint64 {
	return uint64(k.part1 + len(k.part2))
}

func (k testKey) Equals(other Hashable) bool {
	o, ok := other.(testKey)
	return ok && k.part1 == o.part1 && k.part2 == o.part2
}

// collidingKey always hashes to the same bucket.
type collidingKey int

func (k collidingKey) Hash() uint64 {
	return 7
}

func (k collidingKey) Equals(other Hashable) bool {
	o, ok := other.(collidingKey)
	return ok && k == o
}

func TestHashMapBasic(t *testing.T) {
	t.Run("InsertAndGet", func(t *testing.T) {
		hm := NewHashMap[testKey, string](WithCapacity(8))
		key := testKey{1, "a"}
		hm.Set(key, "value1")

		val, exists := hm.Get(key)
		assert.True(t, exists)
		assert.Equal(t, "value1", val)

		_, exists = hm.Get(testKey{2, "b"})
		assert.False(t, exists)
	})

	t.Run("UpdateValue", func(t *testing.T) {
		hm := NewHashMap[testKey, string](WithCapacity(8))
		key := testKey{1, "a"}
		hm.Set(key, "value1")
		hm.Set(key, "value2")

		val, exists := hm.Get(key)
		assert.True(t, exists)
		assert.Equal(t, "value2", val)
		assert.Equal(t, 1, hm.Len())
	})

	t.Run("Collisions", func(t *testing.T) {
		hm := NewHashMap[collidingKey, int]()
		for i := 0; i < 10; i++ {
			hm.Set(collidingKey(i), i*i)
		}
		assert.Equal(t, 10, hm.Len())
		for i := 0; i < 10; i++ {
			val, ok := hm.Get(collidingKey(i))
			assert.True(t, ok)
			assert.Equal(t, i*i, val)
		}
	})
}

func TestHashMapResize(t *testing.T) {
	hm := NewHashMap[testKey, int](WithCapacity(2), WithLoadFactor(0.5))
	const n = 1000
	for i := 0; i < n; i++ {
		hm.Set(testKey{i, "k"}, i)
	}
	assert.Equal(t, n, hm.Len())
	assert.GreaterOrEqual(t, len(hm.buckets), n*2)

	for i := 0; i < n; i++ {
		val, ok := hm.Get(testKey{i, "k"})
		if !assert.True(t, ok, "key %d lost after resize", i) {
			return
		}
		assert.Equal(t, i, val)
	}

	seen := 0
	for k, v := range hm.All() {
		assert.Equal(t, k.part1, v)
		seen++
	}
	assert.Equal(t, n, seen)
}

func TestHashMapStateSetKeys(t *testing.T) {
	hm := NewHashMap[*StateSet, int]()
	hm.Set(NewStateSet(0, 2), 1)
	hm.Set(NewStateSet(1), 2)

	val, ok := hm.Get(NewStateSet(2, 0))
	assert.True(t, ok)
	assert.Equal(t, 1, val)
	assert.True(t, hm.Contains(NewStateSet(1)))
	assert.False(t, hm.Contains(FullStateSet(2)))
}
