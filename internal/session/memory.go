// ABOUTME: In-memory session store for tests and embedding
// ABOUTME: Same semantics as the SQLite store without durability

package session

import "sync"

// MemoryStore is a Store held in process memory
type MemoryStore struct {
	mu       sync.RWMutex
	loggedIn *bool
	token    *string
	userID   *int64
}

// NewMemoryStore returns an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) SaveLoginState(loggedIn bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loggedIn = &loggedIn
	return nil
}

func (m *MemoryStore) LoginState() (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.loggedIn == nil {
		return false, nil
	}
	return *m.loggedIn, nil
}

func (m *MemoryStore) SaveAuthToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = &token
	return nil
}

func (m *MemoryStore) AuthToken() (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == nil {
		return "", false, nil
	}
	return *m.token, true, nil
}

func (m *MemoryStore) SaveLoggedInUserID(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userID = &id
	return nil
}

func (m *MemoryStore) LoggedInUserID() (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.userID == nil {
		return NoUser, nil
	}
	return *m.userID, nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loggedIn = nil
	m.token = nil
	m.userID = nil
	return nil
}
