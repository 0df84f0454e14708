package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"contentforge/pkg/domain"
)

// MemoryStore keeps everything in-process. Used for local development
// and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	users       map[string]domain.User       // key: user ID
	email       map[string]string            // email -> user ID
	profiles    map[string]domain.Profile    // key: user ID
	generations map[string]domain.Generation // key: generation ID
	order       []string                     // generation IDs, insertion order
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       make(map[string]domain.User),
		email:       make(map[string]string),
		profiles:    make(map[string]domain.Profile),
		generations: make(map[string]domain.Generation),
	}
}

// SaveUser registers or updates a user.
func (m *MemoryStore) SaveUser(u domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
	m.email[u.Email] = u.ID
	return nil
}

// HasUserEmail checks if email exists.
func (m *MemoryStore) HasUserEmail(email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.email[email]
	return ok, nil
}

// GetUserByEmail looks up a user by email.
func (m *MemoryStore) GetUserByEmail(email string) (domain.User, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if id, ok := m.email[email]; ok {
		u, exists := m.users[id]
		return u, exists, nil
	}
	return domain.User{}, false, nil
}

// GetUserByID returns a user by ID.
func (m *MemoryStore) GetUserByID(id string) (domain.User, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	return u, ok, nil
}

// SaveProfile stores or updates a profile.
func (m *MemoryStore) SaveProfile(p domain.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.UserID] = p
	return nil
}

// GetProfile returns the profile bound to a user.
func (m *MemoryStore) GetProfile(userID string) (domain.Profile, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[userID]
	return p, ok, nil
}

// InsertGeneration persists a new record, assigning ID and creation
// time.
func (m *MemoryStore) InsertGeneration(g domain.Generation) (domain.Generation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g.ID = uuid.NewString()
	g.CreatedAt = time.Now().UTC()
	m.generations[g.ID] = g
	m.order = append(m.order, g.ID)
	return g, nil
}

// GetGeneration retrieves one record by ID.
func (m *MemoryStore) GetGeneration(id string) (domain.Generation, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.generations[id]
	return g, ok, nil
}

// ListGenerationsByOwner returns an owner's records, newest first.
func (m *MemoryStore) ListGenerationsByOwner(ownerID string) ([]domain.Generation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Generation, 0)
	for i := len(m.order) - 1; i >= 0; i-- {
		if g, ok := m.generations[m.order[i]]; ok && g.OwnerID == ownerID {
			res = append(res, g)
		}
	}
	return res, nil
}

// DeleteGeneration removes one record.
func (m *MemoryStore) DeleteGeneration(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.generations, id)
	filtered := m.order[:0]
	for _, item := range m.order {
		if item != id {
			filtered = append(filtered, item)
		}
	}
	m.order = filtered
	return nil
}

// CountGenerationsSince counts an owner's records created at or after
// the cutoff.
func (m *MemoryStore) CountGenerationsSince(ownerID string, since time.Time) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, g := range m.generations {
		if g.OwnerID == ownerID && !g.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}
