package hashfunc

// HashAlgorithm - Interface that permits a user of hashtable.Table to supply a custom slot
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when the table is created and again every time the table grows. The implementation
	// must adopt the given size as is, the table verifies this through GetTableSize when it is created.
	//   - tableSize is the number of slots the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) is folded back into range by the table.
	HashFunc1(key string) int64

	// GetTableSize - Returns the table size the implemented hash function is currently supporting
	GetTableSize() int64

	// ProbeIteration - Returns the slot to visit in the given probe iteration, starting with iteration 0
	// for the slot returned by HashFunc1.
	// The table relies on the function visiting every slot exactly once during table size iterations.
	ProbeIteration(hf1Value, iteration int64) int64
}
