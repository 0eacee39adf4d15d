package ecs

import (
	"strconv"
)

// Entity identifies one object in a World. An Entity stays unique for the
// lifetime of the World: a despawned slot is reused with a new generation.
type Entity struct {
	index      uint32
	generation uint32
}

// Index returns the entity's slot index.
func (e Entity) Index() uint32 {
	return e.index
}

// Generation returns how many times the slot has been handed out.
// Live entities always have a generation of at least 1.
func (e Entity) Generation() uint32 {
	return e.generation
}

// IsZero reports whether e is the zero Entity, which never refers to a live
// entity.
func (e Entity) IsZero() bool {
	return e.generation == 0
}

// String formats the entity as "<index>v<generation>", e.g. "42v3".
func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.index), 10) + "v" + strconv.FormatUint(uint64(e.generation), 10)
}

// entityRecord holds the storage for one entity slot.
type entityRecord struct {
	generation uint32
	alive      bool

	// mask tracks which components are present
	mask Bitmask

	// components stores component pointers indexed by ComponentID
	components map[ComponentID]any
}
