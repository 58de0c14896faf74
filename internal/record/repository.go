package record

import (
	"database/sql"
	"fmt"
)

type recordRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &recordRepository{db: db}
}

func (r *recordRepository) queryMany(query string, args ...interface{}) ([]Record, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query records: %v", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.CategoryID, &rec.Value, &rec.Comment, &rec.Month, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan record: %v", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *recordRepository) FindByOwnerAndMonth(ownerID int64, month string) ([]Record, error) {
	return r.queryMany(`
		SELECT id, user_id, category_id, value, comment, month, created_at
		FROM records
		WHERE user_id = $1 AND month = $2
		ORDER BY id
	`, ownerID, month)
}

func (r *recordRepository) FindByOwnerAndYear(ownerID, year int64) ([]Record, error) {
	return r.queryMany(`
		SELECT id, user_id, category_id, value, comment, month, created_at
		FROM records
		WHERE user_id = $1 AND month LIKE $2
		ORDER BY id
	`, ownerID, fmt.Sprintf("%d-%%", year))
}

func (r *recordRepository) FindByOwnerAndMonthAndCategory(ownerID int64, month string, categoryID int64) ([]Record, error) {
	return r.queryMany(`
		SELECT id, user_id, category_id, value, comment, month, created_at
		FROM records
		WHERE user_id = $1 AND month = $2 AND category_id = $3
		ORDER BY id
	`, ownerID, month, categoryID)
}

// SumByMonthAndType aggregates the owner's records of one category type over
// a year, one total per month.
func (r *recordRepository) SumByMonthAndType(ownerID, categoryType, year int64) ([]MonthlyTotal, error) {
	rows, err := r.db.Query(`
		SELECT r.month, SUM(r.value)
		FROM records r
		JOIN categories c ON r.category_id = c.id
		WHERE r.user_id = $1 AND c.type = $2 AND r.month LIKE $3
		GROUP BY r.month
		ORDER BY r.month
	`, ownerID, categoryType, fmt.Sprintf("%d-%%", year))
	if err != nil {
		return nil, fmt.Errorf("could not query monthly totals: %v", err)
	}
	defer rows.Close()

	var totals []MonthlyTotal
	for rows.Next() {
		var t MonthlyTotal
		if err := rows.Scan(&t.Month, &t.Total); err != nil {
			return nil, fmt.Errorf("could not scan monthly total: %v", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

func (r *recordRepository) Create(record *Record) error {
	query := `
		INSERT INTO records (user_id, category_id, value, comment, month, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	err := r.db.QueryRow(query, record.UserID, record.CategoryID, record.Value, record.Comment, record.Month, record.CreatedAt).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("could not create record: %v", err)
	}
	return nil
}
