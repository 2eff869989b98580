// Package session holds the bearer token between runs. The token is
// opaque: it is never parsed, only its presence drives behavior.
package session

const storageKey = "token"

// Storage is the slice of the local key-value store the session needs.
type Storage interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

type Manager struct {
	store Storage
}

func NewManager(store Storage) *Manager {
	return &Manager{store: store}
}

// Token returns the stored bearer token, if any. Read failures count
// as signed out.
func (m *Manager) Token() (string, bool) {
	raw, ok, err := m.store.Get(storageKey)
	if err != nil || !ok || len(raw) == 0 {
		return "", false
	}
	return string(raw), true
}

func (m *Manager) SetToken(token string) error {
	return m.store.Put(storageKey, []byte(token))
}

// Clear signs the user out. Clearing an absent token is a no-op.
func (m *Manager) Clear() error {
	return m.store.Delete(storageKey)
}
