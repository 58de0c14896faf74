package user

import (
	"sync"

	"github.com/norbert15/CostTracker2Backend/internal/apperrors"
	"github.com/norbert15/CostTracker2Backend/internal/identity"
)

// MockRepository is an in-memory Repository used by unit tests and the
// end-to-end test. It enforces the same uniqueness constraints as the
// database schema.
type MockRepository struct {
	mu     sync.Mutex
	nextID int64
	Users  map[int64]*User
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		nextID: 1,
		Users:  map[int64]*User{},
	}
}

func (m *MockRepository) Create(user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.Users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return apperrors.ErrDuplicate
		}
	}
	user.ID = m.nextID
	m.nextID++
	copied := *user
	m.Users[user.ID] = &copied
	return nil
}

func (m *MockRepository) Update(user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.Users[user.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	for id, other := range m.Users {
		if id == user.ID {
			continue
		}
		if other.Username == user.Username || other.Email == user.Email {
			return apperrors.ErrDuplicate
		}
	}
	existing.FirstName = user.FirstName
	existing.LastName = user.LastName
	existing.Email = user.Email
	existing.Username = user.Username
	return nil
}

func (m *MockRepository) UpdatePassword(id int64, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.Users[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	existing.PasswordHash = passwordHash
	return nil
}

func (m *MockRepository) FindByUsername(username string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.Users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *MockRepository) FindByEmail(email string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.Users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *MockRepository) FindByID(id int64) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.Users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *MockRepository) FindPasswordHashByUsername(username string) (string, error) {
	user, err := m.FindByUsername(username)
	if err != nil {
		return "", err
	}
	return user.PasswordHash, nil
}

func (m *MockRepository) FindIdentityByUsername(username string) (*identity.Principal, error) {
	user, err := m.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	return &identity.Principal{ID: user.ID, Username: user.Username}, nil
}
