package hashtable

import (
	"fmt"
	"github.com/gostonefire/speakerid/hashfunc"
	"github.com/gostonefire/speakerid/internal/hash"
	"github.com/gostonefire/speakerid/internal/model"
)

// Table - The main implementation struct. It is an open addressing hash table with string keys, resolving
// collisions by linear probing. Deleted entries are left as tombstones that keep probe sequences intact until
// the table grows, which happens when the share of occupied slots exceeds the load factor.
//
// A Table is not safe for concurrent use.
type Table[V any] struct {
	slots         []model.Slot[V]
	capacity      int
	defaultValue  V
	loadFactor    float64
	growthFactor  int
	hashAlgorithm hashfunc.HashAlgorithm
	validCount    int
	generation    uint64
}

// TableStat - Statistics on the overall usage of the backing array
//   - Capacity is the number of slots
//   - Occupied is the number of slots holding live entries
//   - Tombstones is the number of slots holding deleted entries
//   - Empty is the number of slots never used since the last growth
//   - Load is Occupied / Capacity
//   - LongestProbe is the largest number of steps from the initial slot to where an occupied entry was placed
type TableStat struct {
	Capacity     int
	Occupied     int
	Tombstones   int
	Empty        int
	Load         float64
	LongestProbe int
}

// New - Returns a pointer to a new empty Table.
//   - tableConf is a Conf struct, see DefaultConf for a commonly used configuration
//
// It returns:
//   - table is a pointer to the created Table
//   - err is of type InvalidParameter if any configuration value is out of range
func New[V any](tableConf Conf[V]) (table *Table[V], err error) {
	// Check if the capacity is valid
	if tableConf.Capacity < 1 {
		err = InvalidParameter{msg: "capacity must be a positive value higher than 0 (zero)"}
		return
	}

	// Check if the load factor is valid, written so that NaN is rejected as well
	if !(tableConf.LoadFactor > 0 && tableConf.LoadFactor <= 1) {
		err = InvalidParameter{msg: "load factor must be greater than 0 and less than or equal to 1"}
		return
	}

	// Check if the growth factor is valid
	if tableConf.GrowthFactor <= 1 {
		err = InvalidParameter{msg: "growth factor must be an integer value greater than 1"}
		return
	}

	// If no HashAlgorithm was given then use the default internal
	if tableConf.HashAlgorithm == nil {
		tableConf.HashAlgorithm = hash.NewLinearProbingHashAlgorithm(int64(tableConf.Capacity))
	} else {
		tableConf.HashAlgorithm.SetTableSize(int64(tableConf.Capacity))
		if tableConf.HashAlgorithm.GetTableSize() != int64(tableConf.Capacity) {
			err = InvalidParameter{msg: fmt.Sprintf("hash algorithm must support table size %d as given", tableConf.Capacity)}
			return
		}
	}

	table = &Table[V]{
		slots:         make([]model.Slot[V], tableConf.Capacity),
		capacity:      tableConf.Capacity,
		defaultValue:  tableConf.DefaultValue,
		loadFactor:    tableConf.LoadFactor,
		growthFactor:  tableConf.GrowthFactor,
		hashAlgorithm: tableConf.HashAlgorithm,
	}

	return
}

// Get - Returns the value stored for key, or the configured default value if key is not in the table.
func (T *Table[V]) Get(key string) (value V) {
	index, found, err := T.probe(T.slots, key)
	if err != nil || !found {
		value = T.defaultValue
		return
	}

	value = T.slots[index].Value

	return
}

// Contains - Returns true if key is in the table
func (T *Table[V]) Contains(key string) bool {
	_, found, err := T.probe(T.slots, key)
	return err == nil && found
}

// Set - Updates an existing entry with a new value or adds it if no entry with the same key is found.
// Adding an entry may make the table grow.
//   - key is the identifier of the entry
//   - value is the value to store with it
func (T *Table[V]) Set(key string, value V) {
	index, found, err := T.probe(T.slots, key)
	for err != nil {
		// Every slot is taken by other keys or tombstones, growing drops the tombstones
		T.resize()
		index, found, err = T.probe(T.slots, key)
	}

	if !found {
		T.validCount++
	}

	T.slots[index] = model.Slot[V]{State: model.SlotOccupied, Key: key, Value: value}

	if float64(T.validCount)/float64(T.capacity) > T.loadFactor {
		T.resize()
	}
}

// Delete - Deletes the entry for key by turning its slot into a tombstone
//   - key is the identifier of the entry
//
// It returns:
//   - err is of type KeyNotFound if key is not in the table
func (T *Table[V]) Delete(key string) (err error) {
	index, found, err := T.probe(T.slots, key)
	if err != nil || !found {
		err = KeyNotFound{}
		return
	}

	T.slots[index].State = model.SlotTombstone
	T.slots[index].Value = T.defaultValue
	T.validCount--

	return
}

// Len - Returns the number of entries in the table
func (T *Table[V]) Len() int {
	return T.validCount
}

// Capacity - Returns the current number of slots in the backing array
func (T *Table[V]) Capacity() int {
	return T.capacity
}

// Iter - Returns an iterator over the entries in backing array order.
// The iterator is invalidated if the table grows before it is exhausted.
func (T *Table[V]) Iter() *Iterator[V] {
	return newIterator(T)
}

// Stat - Walks through the backing array and produces a TableStat struct
func (T *Table[V]) Stat() (tableStat TableStat) {
	tableStat.Capacity = T.capacity

	for i, slot := range T.slots {
		switch slot.State {
		case model.SlotEmpty:
			tableStat.Empty++
		case model.SlotTombstone:
			tableStat.Tombstones++
		case model.SlotOccupied:
			tableStat.Occupied++
			if d := T.probeDistance(slot.Key, i); d > tableStat.LongestProbe {
				tableStat.LongestProbe = d
			}
		}
	}

	tableStat.Load = float64(tableStat.Occupied) / float64(tableStat.Capacity)

	return
}
