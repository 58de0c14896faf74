package user

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/norbert15/CostTracker2Backend/internal/apperrors"
	"github.com/norbert15/CostTracker2Backend/internal/identity"
)

type Repository interface {
	Create(user *User) error
	Update(user *User) error
	UpdatePassword(id int64, passwordHash string) error
	FindByUsername(username string) (*User, error)
	FindByEmail(email string) (*User, error)
	FindByID(id int64) (*User, error)

	// Collaborator lookups for the auth pipeline.
	FindPasswordHashByUsername(username string) (string, error)
	FindIdentityByUsername(username string) (*identity.Principal, error)
}

type userRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &userRepository{db: db}
}

// isUniqueViolation reports whether err is a storage-level uniqueness
// conflict. Validation performs a best-effort pre-check, but concurrent
// requests can both pass it; the constraint is the source of truth.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *userRepository) Create(user *User) error {
	query := `
		INSERT INTO users (first_name, last_name, email, username, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := r.db.QueryRow(query, user.FirstName, user.LastName, user.Email, user.Username, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("could not create user: %v", err)
	}
	return nil
}

func (r *userRepository) Update(user *User) error {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, username = $4
		WHERE id = $5
	`
	_, err := r.db.Exec(query, user.FirstName, user.LastName, user.Email, user.Username, user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("could not update user: %v", err)
	}
	return nil
}

func (r *userRepository) UpdatePassword(id int64, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $1
		WHERE id = $2
	`
	_, err := r.db.Exec(query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("could not update password: %v", err)
	}
	return nil
}

func (r *userRepository) scanOne(query string, arg interface{}) (*User, error) {
	var user User
	err := r.db.QueryRow(query, arg).Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*User, error) {
	return r.scanOne(`
		SELECT id, first_name, last_name, email, username, password_hash
		FROM users
		WHERE username = $1
	`, username)
}

func (r *userRepository) FindByEmail(email string) (*User, error) {
	return r.scanOne(`
		SELECT id, first_name, last_name, email, username, password_hash
		FROM users
		WHERE email = $1
	`, email)
}

func (r *userRepository) FindByID(id int64) (*User, error) {
	return r.scanOne(`
		SELECT id, first_name, last_name, email, username, password_hash
		FROM users
		WHERE id = $1
	`, id)
}

func (r *userRepository) FindPasswordHashByUsername(username string) (string, error) {
	user, err := r.FindByUsername(username)
	if err != nil {
		return "", err
	}
	return user.PasswordHash, nil
}

func (r *userRepository) FindIdentityByUsername(username string) (*identity.Principal, error) {
	user, err := r.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	return &identity.Principal{ID: user.ID, Username: user.Username}, nil
}
