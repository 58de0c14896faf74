package record

import (
	"time"

	"github.com/norbert15/CostTracker2Backend/internal/category"
)

const (
	maxAbsValue int64 = 1_000_000_000
	minYear           = 2020
)

// Record is one dated income or expense entry against a category.
type Record struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	CategoryID int64     `json:"categoryId"`
	Value      int64     `json:"value"`
	Comment    string    `json:"comment,omitempty"`
	Month      string    `json:"month"`
	CreatedAt  time.Time `json:"created"`
}

// CreateRequest carries the creation payload.
type CreateRequest struct {
	CategoryID int64  `json:"categoryId"`
	Value      int64  `json:"value"`
	Month      string `json:"month"`
	Comment    string `json:"comment"`
}

// RecordsByCategory is one group of the month listing: a category, the
// caller's records in it and their sum.
type RecordsByCategory struct {
	Category category.Category `json:"category"`
	Records  []Record          `json:"records"`
	Sum      int64             `json:"sum"`
}

// MonthlyTotal is one row of the yearly aggregate query.
type MonthlyTotal struct {
	Month string `json:"month"`
	Total int64  `json:"total"`
}

type Repository interface {
	FindByOwnerAndMonth(ownerID int64, month string) ([]Record, error)
	FindByOwnerAndYear(ownerID, year int64) ([]Record, error)
	FindByOwnerAndMonthAndCategory(ownerID int64, month string, categoryID int64) ([]Record, error)
	SumByMonthAndType(ownerID, categoryType, year int64) ([]MonthlyTotal, error)
	Create(record *Record) error
}
