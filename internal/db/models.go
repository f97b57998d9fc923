package db

import (
	"time"

	"github.com/google/uuid"

	"beautybooking/internal/schedule"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Phone        string
	Role         string // "client" or "admin"
	CreatedAt    time.Time
}

type Service struct {
	ID              uuid.UUID
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	ImageURL        string
	Active          bool
	CreatedAt       time.Time
}

type Appointment struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	ServiceID uuid.UUID
	Date      time.Time
	StartTime schedule.TimeOfDay
	Status    schedule.Status
	Notes     string
	CreatedAt time.Time
}

type AvailabilityWindow struct {
	ID        uuid.UUID
	DayOfWeek int // 0=Sunday .. 6=Saturday
	StartTime schedule.TimeOfDay
	EndTime   schedule.TimeOfDay
	Active    bool
}

type BlockedDate struct {
	ID        uuid.UUID
	Date      time.Time
	Reason    string
	CreatedAt time.Time
}
