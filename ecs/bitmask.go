package ecs

import (
	"math/bits"
)

// Bitmask is a 256-bit set of component IDs present on an entity.
type Bitmask [4]uint64

// Set sets the bit for id.
func (m *Bitmask) Set(id ComponentID) {
	m[id/64] |= 1 << (id % 64)
}

// Clear clears the bit for id.
func (m *Bitmask) Clear(id ComponentID) {
	m[id/64] &^= 1 << (id % 64)
}

// Has reports whether the bit for id is set.
func (m *Bitmask) Has(id ComponentID) bool {
	return m[id/64]&(1<<(id%64)) != 0
}

// IsZero reports whether no bits are set.
func (m *Bitmask) IsZero() bool {
	return m[0] == 0 && m[1] == 0 && m[2] == 0 && m[3] == 0
}

// Count returns the number of bits set.
func (m *Bitmask) Count() int {
	return bits.OnesCount64(m[0]) +
		bits.OnesCount64(m[1]) +
		bits.OnesCount64(m[2]) +
		bits.OnesCount64(m[3])
}

// IDs returns the set component IDs in ascending order.
func (m *Bitmask) IDs() []ComponentID {
	ids := make([]ComponentID, 0, m.Count())
	for word := range m {
		w := m[word]
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			ids = append(ids, ComponentID(word*64+bit))
			w &= w - 1
		}
	}
	return ids
}
