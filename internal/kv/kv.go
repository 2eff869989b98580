// Package kv provides the local persistent key-value store the client
// keeps its state in: string keys, opaque byte values, synchronous
// reads and writes that survive process restarts.
package kv

// Store is the capability injected into everything that persists state.
// A missing key is not an error; Get reports presence separately.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}
