package cerny

import "iter"

// Hashable Keys of a HashMap. Equal keys must have equal hashes.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap A chained hash table keyed by Hashable values. It is not safe for concurrent
// use; a search owns its map for the duration of one invocation.
type HashMap[K Hashable, V any] struct {
	buckets    []*entry[K, V]
	size       int
	mask       uint64
	loadFactor float64
}

type entry[K Hashable, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

type hashMapOptions struct {
	capacity   int     // default 1
	loadFactor float64 // default 0.75
}

type HashMapOption func(*hashMapOptions)

// WithCapacity Initial number of buckets, rounded up to a power of two.
func WithCapacity(capacity int) HashMapOption {
	return func(o *hashMapOptions) {
		o.capacity = capacity
	}
}

func WithLoadFactor(loadFactor float64) HashMapOption {
	return func(o *hashMapOptions) {
		if loadFactor > 0 {
			o.loadFactor = loadFactor
		}
	}
}

// NewHashMap Creates an empty map.
func NewHashMap[K Hashable, V any](options ...HashMapOption) *HashMap[K, V] {
	opt := &hashMapOptions{
		capacity:   1,
		loadFactor: 0.75,
	}
	for _, o := range options {
		o(opt)
	}

	capacity := 1
	for capacity < opt.capacity {
		capacity <<= 1
	}

	return &HashMap[K, V]{
		buckets:    make([]*entry[K, V], capacity),
		mask:       uint64(capacity - 1),
		loadFactor: opt.loadFactor,
	}
}

// Set Inserts or replaces the value stored under key.
func (m *HashMap[K, V]) Set(key K, value V) {
	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	m.buckets[index] = &entry[K, V]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > m.loadFactor {
		m.resize()
	}
}

// Get Returns the value stored under key and whether it was present.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	var empty V
	return empty, false
}

func (m *HashMap[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Len Number of stored keys.
func (m *HashMap[K, V]) Len() int {
	return m.size
}

func (m *HashMap[K, V]) resize() {
	newCap := len(m.buckets) << 1
	newBuckets := make([]*entry[K, V], newCap)
	newMask := uint64(newCap - 1)

	for _, head := range m.buckets {
		for e := head; e != nil; {
			next := e.next
			index := e.key.Hash() & newMask
			e.next = newBuckets[index]
			newBuckets[index] = e
			e = next
		}
	}

	m.buckets = newBuckets
	m.mask = newMask
}

// All Iterates over every key/value pair in bucket order.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range m.buckets {
			for e := bucket; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}
