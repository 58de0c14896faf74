package category

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/norbert15/CostTracker2Backend/internal/apperrors"
)

type categoryRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &categoryRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *categoryRepository) queryMany(query string, args ...interface{}) ([]Category, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query categories: %v", err)
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.Icon, &c.Type); err != nil {
			return nil, fmt.Errorf("could not scan category: %v", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// FindAllByOwner returns the union of the owner's categories and the shared
// defaults. Passing DefaultOwnerID returns the defaults alone.
func (r *categoryRepository) FindAllByOwner(ownerID int64) ([]Category, error) {
	return r.queryMany(`
		SELECT id, user_id, name, color, icon, type
		FROM categories
		WHERE user_id = 0 OR user_id = $1
		ORDER BY id
	`, ownerID)
}

func (r *categoryRepository) FindByTypeAndOwner(categoryType, ownerID int64) ([]Category, error) {
	return r.queryMany(`
		SELECT id, user_id, name, color, icon, type
		FROM categories
		WHERE (user_id = 0 OR user_id = $1) AND type = $2
		ORDER BY id
	`, ownerID, categoryType)
}

func (r *categoryRepository) scanOne(query string, args ...interface{}) (*Category, error) {
	var c Category
	err := r.db.QueryRow(query, args...).Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.Icon, &c.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("could not find category: %v", err)
	}
	return &c, nil
}

func (r *categoryRepository) FindByID(id int64) (*Category, error) {
	return r.scanOne(`
		SELECT id, user_id, name, color, icon, type
		FROM categories
		WHERE id = $1
	`, id)
}

func (r *categoryRepository) FindByIDAndOwner(id, ownerID int64) (*Category, error) {
	return r.scanOne(`
		SELECT id, user_id, name, color, icon, type
		FROM categories
		WHERE id = $1 AND user_id = $2
	`, id, ownerID)
}

func (r *categoryRepository) Create(category *Category) error {
	query := `
		INSERT INTO categories (user_id, name, color, icon, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := r.db.QueryRow(query, category.UserID, category.Name, category.Color, category.Icon, category.Type).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("could not create category: %v", err)
	}
	return nil
}

func (r *categoryRepository) Update(category *Category) error {
	query := `
		UPDATE categories
		SET name = $1, color = $2, icon = $3, type = $4
		WHERE id = $5
	`
	_, err := r.db.Exec(query, category.Name, category.Color, category.Icon, category.Type, category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("could not update category: %v", err)
	}
	return nil
}

func (r *categoryRepository) DeleteByID(id int64) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not delete category: %v", err)
	}
	return nil
}
