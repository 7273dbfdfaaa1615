package hashtable

import (
	"fmt"
	"github.com/gostonefire/speakerid/internal/model"
)

// tableFull - Internal error to inform that a probe sequence visited every slot without finding the key or an
// empty slot
type tableFull struct{}

// Error - Used to notify that the probe sequence is exhausted
func (E tableFull) Error() string {
	return "probe sequence exhausted"
}

// probe - Is the Linear Probing algorithm for both getting and setting an entry. It walks from the slot
// given by the hash algorithm until it finds either an occupied slot with a matching key or an empty slot.
// Tombstones neither match nor stop the walk.
//   - slots is the backing array to probe, the hash algorithm must be set to the same table size
//   - key is the identifier of the entry
//
// It returns:
//   - index is the slot holding key if found is true, otherwise the empty slot where key can be added
//   - found is true if key is in slots
//   - err is of type tableFull if every slot was visited without result
func (T *Table[V]) probe(slots []model.Slot[V], key string) (index int, found bool, err error) {
	size := int64(len(slots))
	hf1Value := inRange(T.hashAlgorithm.HashFunc1(key), size)

	for i := int64(0); i < size; i++ {
		probe := inRange(T.hashAlgorithm.ProbeIteration(hf1Value, i), size)

		switch slots[probe].State {
		case model.SlotEmpty:
			index = int(probe)
			return

		case model.SlotOccupied:
			if slots[probe].Matches(key) {
				index = int(probe)
				found = true
				return
			}
		}
	}

	err = tableFull{}
	return
}

// resize - Grows the backing array by the growth factor and moves every occupied entry to the new array in
// iteration order. Tombstones are dropped. Fields are only replaced once the new array is fully populated.
// If the hash algorithm cannot serve the new size it is set back to the current size before panicking, leaving
// the table as it was.
func (T *Table[V]) resize() {
	newCapacity := T.capacity * T.growthFactor
	slots := make([]model.Slot[V], newCapacity)

	T.hashAlgorithm.SetTableSize(int64(newCapacity))
	if T.hashAlgorithm.GetTableSize() != int64(newCapacity) {
		T.hashAlgorithm.SetTableSize(int64(T.capacity))
		panic(fmt.Sprintf("hashtable: hash algorithm does not support table size %d required for growing", newCapacity))
	}

	for _, slot := range T.slots {
		if !slot.IsOccupied() {
			continue
		}
		index, _, err := T.probe(slots, slot.Key)
		if err != nil {
			// Can only happen with a custom hash algorithm not visiting every slot
			T.hashAlgorithm.SetTableSize(int64(T.capacity))
			panic("hashtable: hash algorithm failed to find a free slot while growing")
		}
		slots[index] = slot
	}

	T.slots = slots
	T.capacity = newCapacity
	T.generation++
}

// probeDistance - Returns the number of probe iterations needed to reach slot index for key
func (T *Table[V]) probeDistance(key string, index int) int {
	size := int64(len(T.slots))
	hf1Value := inRange(T.hashAlgorithm.HashFunc1(key), size)

	for i := int64(0); i < size; i++ {
		if inRange(T.hashAlgorithm.ProbeIteration(hf1Value, i), size) == int64(index) {
			return int(i)
		}
	}

	return int(size)
}

// inRange - Folds a slot number from a hash algorithm into 0 -> size - 1
func inRange(value, size int64) int64 {
	value %= size
	if value < 0 {
		value += size
	}
	return value
}
