package record

import (
	"strings"
	"sync"

	"github.com/norbert15/CostTracker2Backend/internal/category"
)

// MockRepository is an in-memory Repository for unit tests and the
// end-to-end test. The yearly aggregate needs category types, so it is backed
// by a category repository.
type MockRepository struct {
	mu         sync.Mutex
	nextID     int64
	Records    map[int64]*Record
	categories category.Repository
}

func NewMockRepository(categories category.Repository) *MockRepository {
	return &MockRepository{
		nextID:     1,
		Records:    map[int64]*Record{},
		categories: categories,
	}
}

func (m *MockRepository) filter(keep func(*Record) bool) []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []Record
	for _, rec := range m.Records {
		if keep(rec) {
			result = append(result, *rec)
		}
	}
	return result
}

func (m *MockRepository) FindByOwnerAndMonth(ownerID int64, month string) ([]Record, error) {
	return m.filter(func(r *Record) bool {
		return r.UserID == ownerID && r.Month == month
	}), nil
}

func (m *MockRepository) FindByOwnerAndYear(ownerID, year int64) ([]Record, error) {
	prefix := yearPrefix(year)
	return m.filter(func(r *Record) bool {
		return r.UserID == ownerID && strings.HasPrefix(r.Month, prefix)
	}), nil
}

func (m *MockRepository) FindByOwnerAndMonthAndCategory(ownerID int64, month string, categoryID int64) ([]Record, error) {
	return m.filter(func(r *Record) bool {
		return r.UserID == ownerID && r.Month == month && r.CategoryID == categoryID
	}), nil
}

func (m *MockRepository) SumByMonthAndType(ownerID, categoryType, year int64) ([]MonthlyTotal, error) {
	prefix := yearPrefix(year)
	byMonth := map[string]int64{}
	var months []string

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range m.Records {
		if rec.UserID != ownerID || !strings.HasPrefix(rec.Month, prefix) {
			continue
		}
		c, err := m.categories.FindByID(rec.CategoryID)
		if err != nil || c.Type != categoryType {
			continue
		}
		if _, seen := byMonth[rec.Month]; !seen {
			months = append(months, rec.Month)
		}
		byMonth[rec.Month] += rec.Value
	}

	var totals []MonthlyTotal
	for _, month := range months {
		totals = append(totals, MonthlyTotal{Month: month, Total: byMonth[month]})
	}
	return totals, nil
}

func (m *MockRepository) Create(record *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	record.ID = m.nextID
	m.nextID++
	copied := *record
	m.Records[record.ID] = &copied
	return nil
}
