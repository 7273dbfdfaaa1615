package hashtable

import (
	"github.com/gostonefire/speakerid/hashfunc"
	"github.com/gostonefire/speakerid/internal/conf"
)

// Conf - Is a struct to be passed in the call to New and contains the table configuration.
//   - Capacity is the initial number of slots, it must be at least 1
//   - DefaultValue is returned by Get for keys that are not in the table
//   - LoadFactor is the fraction of occupied slots that, when exceeded, makes the table grow. It must be in (0, 1]
//   - GrowthFactor is the factor to multiply capacity with when growing, it must be at least 2
//   - HashAlgorithm is an optional custom slot selection algorithm, nil selects the internal polynomial linear probing
type Conf[V any] struct {
	Capacity      int
	DefaultValue  V
	LoadFactor    float64
	GrowthFactor  int
	HashAlgorithm hashfunc.HashAlgorithm
}

// DefaultConf - Returns a Conf using the default capacity, load factor and growth factor
//   - defaultValue is returned by Get for keys that are not in the table
func DefaultConf[V any](defaultValue V) Conf[V] {
	return Conf[V]{
		Capacity:     conf.HashCells,
		DefaultValue: defaultValue,
		LoadFactor:   conf.TooFull,
		GrowthFactor: conf.GrowthRatio,
	}
}
