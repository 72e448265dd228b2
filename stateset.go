package cerny

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

var _ Hashable = &StateSet{}

// StateSet An immutable set of automaton states. It is the node type of the subset
// automaton explored by Search.
type StateSet struct {
	bits     *bitset.BitSet
	hashCode uint64
}

// NewStateSet Returns the set holding the given states. Negative states are ignored.
func NewStateSet(states ...int) *StateSet {
	bits := bitset.New(0)
	for _, s := range states {
		if s < 0 {
			continue
		}
		bits.Set(uint(s))
	}
	return newStateSet(bits)
}

// FullStateSet Returns {0, ..., n-1}.
func FullStateSet(n int) *StateSet {
	bits := bitset.New(uint(max(n, 0)))
	for s := 0; s < n; s++ {
		bits.Set(uint(s))
	}
	return newStateSet(bits)
}

func newStateSet(bits *bitset.BitSet) *StateSet {
	s := &StateSet{bits: bits}
	s.hashCode = uint64(bits.Count())
	for i, ok := bits.NextSet(0); ok; i, ok = bits.NextSet(i + 1) {
		s.hashCode += uint64(mix(int(i)))
	}
	return s
}

func (s *StateSet) Hash() uint64 {
	return s.hashCode
}

// Equals Reports whether other is a StateSet with exactly the same members.
func (s *StateSet) Equals(other Hashable) bool {
	o, ok := other.(*StateSet)
	if !ok || s == nil || o == nil {
		return ok && s == o
	}
	if s.hashCode != o.hashCode || s.bits.Count() != o.bits.Count() {
		return false
	}
	return s.bits.IsSuperSet(o.bits)
}

// Contains Returns true if state is a member.
func (s *StateSet) Contains(state int) bool {
	return state >= 0 && s.bits.Test(uint(state))
}

func (s *StateSet) Size() int {
	return int(s.bits.Count())
}

func (s *StateSet) IsEmpty() bool {
	return s.bits.None()
}

// GetArray Returns the members in ascending order.
func (s *StateSet) GetArray() []int {
	states := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		states = append(states, int(i))
	}
	return states
}

// Max Returns the largest member, or -1 for the empty set.
func (s *StateSet) Max() int {
	m := -1
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		m = int(i)
	}
	return m
}

func (s *StateSet) Union(other *StateSet) *StateSet {
	return newStateSet(s.bits.Union(other.bits))
}

func (s *StateSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, state := range s.GetArray() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(state))
	}
	sb.WriteByte('}')
	return sb.String()
}
