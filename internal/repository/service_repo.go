package repository

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"beautybooking/internal/db"
)

type ServiceRepository struct {
	DB *sql.DB
}

func NewServiceRepository(database *sql.DB) *ServiceRepository {
	return &ServiceRepository{DB: database}
}

func (r *ServiceRepository) List(activeOnly bool) ([]db.Service, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), price, duration_minutes,
		       COALESCE(image_url, ''), active, created_at
		FROM services`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []db.Service
	for rows.Next() {
		var s db.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.DurationMinutes,
			&s.ImageURL, &s.Active, &s.CreatedAt); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// GetByID returns (nil, nil) when no service matches.
func (r *ServiceRepository) GetByID(id uuid.UUID) (*db.Service, error) {
	var s db.Service
	err := r.DB.QueryRow(
		`SELECT id, name, COALESCE(description, ''), price, duration_minutes,
		        COALESCE(image_url, ''), active, created_at
		 FROM services WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.DurationMinutes,
			&s.ImageURL, &s.Active, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) Create(s *db.Service) error {
	query := `
		INSERT INTO services (id, name, description, price, duration_minutes, image_url, active, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), $7, NOW())
		RETURNING created_at`
	return r.DB.QueryRow(query,
		s.ID, s.Name, s.Description, s.Price, s.DurationMinutes, s.ImageURL, s.Active,
	).Scan(&s.CreatedAt)
}

func (r *ServiceRepository) Update(s *db.Service) error {
	_, err := r.DB.Exec(`
		UPDATE services
		SET name = $1, description = NULLIF($2, ''), price = $3, duration_minutes = $4,
		    image_url = NULLIF($5, ''), active = $6
		WHERE id = $7`,
		s.Name, s.Description, s.Price, s.DurationMinutes, s.ImageURL, s.Active, s.ID)
	return err
}

// Deactivate soft-deletes: the service disappears from the public catalog but
// existing appointments keep referencing it.
func (r *ServiceRepository) Deactivate(id uuid.UUID) error {
	_, err := r.DB.Exec(`UPDATE services SET active = FALSE WHERE id = $1`, id)
	return err
}
