package model

// SlotState - Tag telling which of the three states a slot is in
type SlotState uint8

// SlotEmpty - State indicating a slot that has never been in use, it terminates every probe sequence
const SlotEmpty SlotState = 0

// SlotOccupied - State indicating a slot that holds a live key and value
const SlotOccupied SlotState = 1

// SlotTombstone - State indicating a slot that has been in use but was deleted.
// It keeps probe sequences intact for keys that were placed after it.
const SlotTombstone SlotState = 2

// Slot - Represents one slot in the backing array of a table
type Slot[V any] struct {
	State SlotState
	Key   string
	Value V
}

// IsOccupied - Returns true if the slot holds a live entry
func (S Slot[V]) IsOccupied() bool {
	return S.State == SlotOccupied
}

// Matches - Returns true if the slot is occupied by the given key. A tombstone never matches.
func (S Slot[V]) Matches(key string) bool {
	return S.State == SlotOccupied && S.Key == key
}
