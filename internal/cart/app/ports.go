package app

// Storage is the slice of the local key-value store the cart service
// needs. Reads and writes are synchronous; a missing key is reported
// via the bool, not an error.
type Storage interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}
