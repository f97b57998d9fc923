package entities

import (
	"time"

	"beautybooking/internal/db"
)

type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"`
	ImageURL    string    `json:"image_url,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

func ServiceResponseFrom(s db.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.DurationMinutes,
		ImageURL:    s.ImageURL,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
	}
}

// ServiceRequest serves both create and update; pointer fields distinguish
// "absent" from zero values on partial updates.
type ServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	ImageURL    *string  `json:"image_url"`
	Active      *bool    `json:"active"`
}
