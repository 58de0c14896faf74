package category

import (
	"sync"

	"github.com/norbert15/CostTracker2Backend/internal/apperrors"
)

// MockRepository is an in-memory Repository for unit tests and the
// end-to-end test. Name uniqueness is enforced the way the schema does it.
type MockRepository struct {
	mu         sync.Mutex
	nextID     int64
	Categories map[int64]*Category
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		nextID:     1,
		Categories: map[int64]*Category{},
	}
}

// Seed inserts a category with a fixed id, bypassing uniqueness checks.
// Used to install default categories in tests.
func (m *MockRepository) Seed(c Category) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Categories[c.ID] = &c
	if c.ID >= m.nextID {
		m.nextID = c.ID + 1
	}
}

func (m *MockRepository) FindAllByOwner(ownerID int64) ([]Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []Category
	for _, c := range m.Categories {
		if c.UserID == DefaultOwnerID || c.UserID == ownerID {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *MockRepository) FindByTypeAndOwner(categoryType, ownerID int64) ([]Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []Category
	for _, c := range m.Categories {
		if (c.UserID == DefaultOwnerID || c.UserID == ownerID) && c.Type == categoryType {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *MockRepository) FindByID(id int64) (*Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Categories[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *MockRepository) FindByIDAndOwner(id, ownerID int64) (*Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Categories[id]
	if !ok || c.UserID != ownerID {
		return nil, apperrors.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *MockRepository) Create(category *Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.Categories {
		if existing.Name == category.Name {
			return apperrors.ErrDuplicate
		}
	}
	category.ID = m.nextID
	m.nextID++
	copied := *category
	m.Categories[category.ID] = &copied
	return nil
}

func (m *MockRepository) Update(category *Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.Categories[category.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	for id, other := range m.Categories {
		if id != category.ID && other.Name == category.Name {
			return apperrors.ErrDuplicate
		}
	}
	existing.Name = category.Name
	existing.Color = category.Color
	existing.Icon = category.Icon
	existing.Type = category.Type
	return nil
}

func (m *MockRepository) DeleteByID(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Categories, id)
	return nil
}
