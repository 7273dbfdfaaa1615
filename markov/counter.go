package markov

import (
	"fmt"
	"github.com/gostonefire/speakerid/hashtable"
	"strings"
)

// Counter - Interface for the frequency storage a Model counts slices in.
// A key that has never been set, or has been deleted, must read as 0 (zero).
type Counter interface {
	// Get - Returns the count for key, 0 (zero) if key is absent
	Get(key string) int
	// Set - Sets the count for key
	Set(key string, value int)
	// Delete - Removes key, it returns an error of type hashtable.KeyNotFound if key is absent
	Delete(key string) error
	// Len - Returns the number of keys
	Len() int
}

// Backend - Selects which Counter implementation a Model is built on
type Backend int

const (
	// BackendHashTable - Counts in a hashtable.Table
	BackendHashTable Backend = iota
	// BackendMap - Counts in a built-in Go map
	BackendMap
)

// String - Returns the name used for the backend in output and on the command line
func (B Backend) String() string {
	switch B {
	case BackendHashTable:
		return "hashtable"
	case BackendMap:
		return "dict"
	default:
		return fmt.Sprintf("Backend(%d)", int(B))
	}
}

// ParseBackend - Returns the Backend given its name, "hashtable" or "dict" ("map" is accepted as well)
func ParseBackend(name string) (backend Backend, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hashtable":
		backend = BackendHashTable
	case "dict", "map":
		backend = BackendMap
	default:
		err = fmt.Errorf("backend must be either 'hashtable' or 'dict', got %q", name)
	}

	return
}

// NewCounter - Returns a new empty Counter of the backend kind
func (B Backend) NewCounter() (counter Counter, err error) {
	switch B {
	case BackendHashTable:
		var table *hashtable.Table[int]
		table, err = hashtable.New(hashtable.DefaultConf(0))
		if err != nil {
			err = fmt.Errorf("error while creating hash table counter: %w", err)
			return
		}
		counter = table
	case BackendMap:
		counter = NewMapCounter()
	default:
		err = fmt.Errorf("unknown backend %s", B)
	}

	return
}

// MapCounter - Counter backed by a built-in map
type MapCounter map[string]int

// NewMapCounter - Returns a new empty MapCounter
func NewMapCounter() MapCounter {
	return make(MapCounter)
}

// Get - Returns the count for key, 0 (zero) if key is absent
func (M MapCounter) Get(key string) int {
	return M[key]
}

// Set - Sets the count for key
func (M MapCounter) Set(key string, value int) {
	M[key] = value
}

// Delete - Removes key, it returns an error of type hashtable.KeyNotFound if key is absent
func (M MapCounter) Delete(key string) error {
	if _, ok := M[key]; !ok {
		return hashtable.KeyNotFound{}
	}
	delete(M, key)
	return nil
}

// Len - Returns the number of keys
func (M MapCounter) Len() int {
	return len(M)
}
