package repository

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"beautybooking/internal/db"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(database *sql.DB) *UserRepository {
	return &UserRepository{DB: database}
}

func (r *UserRepository) Create(user *db.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, phone, role, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, NOW())
		RETURNING created_at`
	return r.DB.QueryRow(query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Phone,
		user.Role,
	).Scan(&user.CreatedAt)
}

// GetByEmail returns (nil, nil) when no user matches.
func (r *UserRepository) GetByEmail(email string) (*db.User, error) {
	var u db.User
	err := r.DB.QueryRow(
		`SELECT id, email, password_hash, name, COALESCE(phone, ''), role, created_at
		 FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Phone, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(id uuid.UUID) (*db.User, error) {
	var u db.User
	err := r.DB.QueryRow(
		`SELECT id, email, password_hash, name, COALESCE(phone, ''), role, created_at
		 FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Phone, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) UpdateProfile(id uuid.UUID, name, phone string) error {
	_, err := r.DB.Exec(
		`UPDATE users SET name = $1, phone = NULLIF($2, '') WHERE id = $3`,
		name, phone, id)
	return err
}

func (r *UserRepository) UpdatePassword(id uuid.UUID, passwordHash string) error {
	_, err := r.DB.Exec(`UPDATE users SET password_hash = $1 WHERE id = $2`, passwordHash, id)
	return err
}
