package hash

import (
	"github.com/gostonefire/speakerid/internal/conf"
)

// LinearProbingHashAlgorithm - The internally used slot selection algorithm. It computes a polynomial over
// the code points of the key using Horner's rule, hash = base*hash + code point, reduced modulo the table size.
// Collisions are resolved by visiting the following slots one by one, wrapping at the end of the table.
type LinearProbingHashAlgorithm struct {
	tableSize int64
	base      int64
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance using
// conf.PolynomialBase as multiplier.
func NewLinearProbingHashAlgorithm(tableSize int64) *LinearProbingHashAlgorithm {
	return NewLinearProbingHashAlgorithmWithBase(tableSize, conf.PolynomialBase)
}

// NewLinearProbingHashAlgorithmWithBase - Returns a pointer to a new LinearProbingHashAlgorithm instance
// with a custom polynomial multiplier.
func NewLinearProbingHashAlgorithmWithBase(tableSize, base int64) *LinearProbingHashAlgorithm {
	ha := &LinearProbingHashAlgorithm{base: base}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
func (L *LinearProbingHashAlgorithm) SetTableSize(tableSize int64) {
	L.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
// The reduction is applied in every step, which gives the same result as reducing the full polynomial
// once but without overflowing.
func (L *LinearProbingHashAlgorithm) HashFunc1(key string) int64 {
	if L.tableSize <= 0 {
		return 0
	}

	var h uint64
	size := uint64(L.tableSize)
	base := uint64(L.base) % size
	for _, r := range key {
		h = (base*h + uint64(r)) % size
	}

	return int64(h)
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (L *LinearProbingHashAlgorithm) GetTableSize() int64 {
	return L.tableSize
}

// ProbeIteration - Implements Linear Probing
func (L *LinearProbingHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	probe := hf1Value + iteration
	if probe >= L.tableSize {
		probe %= L.tableSize
	}

	return probe
}
