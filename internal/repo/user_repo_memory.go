package repo

import (
	"errors"
	"sync"

	"go-gin-account-portal/internal/domain"
)

// MemoryUserRepo is a map-backed UserRepository for tests and local
// runs without a database. It enforces the same email uniqueness the
// gorm schema does.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	byID  map[string]domain.User
	FailG error // when set, reads fail with this error
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{byID: make(map[string]domain.User)}
}

func (m *MemoryUserRepo) Create(u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.byID {
		if ex.Email == u.Email {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	m.byID[u.ID] = *u
	return nil
}

func (m *MemoryUserRepo) FindByID(id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailG != nil {
		return nil, m.FailG
	}
	u, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := u
	return &cp, nil
}

func (m *MemoryUserRepo) FindByEmail(email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailG != nil {
		return nil, m.FailG
	}
	for _, u := range m.byID {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MemoryUserRepo) Update(u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[u.ID]; !ok {
		return errors.New("no such user")
	}
	m.byID[u.ID] = *u
	return nil
}

// Delete exists for tests that simulate an account vanishing out from
// under a live session; the application itself never deletes users.
func (m *MemoryUserRepo) Delete(id string) {
	m.mu.Lock()
	delete(m.byID, id)
	m.mu.Unlock()
}

func (m *MemoryUserRepo) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}
