package hashtable

import (
	"github.com/gostonefire/speakerid/internal/model"
)

// Iterator - Is used to iterate over table entries one by one in backing array order.
type Iterator[V any] struct {
	table      *Table[V]
	slots      []model.Slot[V]
	generation uint64
	index      int
}

// newIterator - Returns a pointer to a new Iterator positioned before the first entry of table
func newIterator[V any](table *Table[V]) *Iterator[V] {
	return &Iterator[V]{
		table:      table,
		slots:      table.slots,
		generation: table.generation,
	}
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
// It returns false once the table has grown since the iterator was created.
func (I *Iterator[V]) HasNext() bool {
	if I.generation != I.table.generation {
		I.index = len(I.slots)
		return false
	}

	for I.index < len(I.slots) && !I.slots[I.index].IsOccupied() {
		I.index++
	}
	return I.index < len(I.slots)
}

// Next - Returns the next entry.
// It returns:
//   - key and value of the next entry.
//   - err is of type IteratorInvalidated if the table has grown since the iterator was created, or of type KeyNotFound if there are no more entries.
func (I *Iterator[V]) Next() (key string, value V, err error) {
	if I.generation != I.table.generation {
		I.index = len(I.slots)
		err = IteratorInvalidated{}
		return
	}

	if !I.HasNext() {
		err = KeyNotFound{}
		return
	}

	slot := I.slots[I.index]
	I.index++

	key = slot.Key
	value = slot.Value

	return
}
