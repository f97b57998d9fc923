package entities

import (
	"time"

	"beautybooking/internal/db"
	"beautybooking/internal/utils"
)

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

type AvailabilityResponse struct {
	ID        string `json:"id"`
	DayOfWeek int    `json:"day_of_week"`
	DayName   string `json:"day_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`
}

func AvailabilityResponseFrom(w db.AvailabilityWindow) AvailabilityResponse {
	name := "Unknown"
	if w.DayOfWeek >= 0 && w.DayOfWeek <= 6 {
		name = dayNames[w.DayOfWeek]
	}
	return AvailabilityResponse{
		ID:        w.ID.String(),
		DayOfWeek: w.DayOfWeek,
		DayName:   name,
		StartTime: w.StartTime.String(),
		EndTime:   w.EndTime.String(),
		Active:    w.Active,
	}
}

// AvailabilityRequest serves both create and update; nil means "leave as is".
type AvailabilityRequest struct {
	DayOfWeek *int    `json:"day_of_week"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Active    *bool   `json:"active"`
}

type BlockedDateResponse struct {
	ID          string    `json:"id"`
	BlockedDate string    `json:"blocked_date"`
	Reason      string    `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func BlockedDateResponseFrom(b db.BlockedDate) BlockedDateResponse {
	return BlockedDateResponse{
		ID:          b.ID.String(),
		BlockedDate: utils.FormatDate(b.Date),
		Reason:      b.Reason,
		CreatedAt:   b.CreatedAt,
	}
}

type BlockedDateRequest struct {
	BlockedDate *string `json:"blocked_date"`
	Reason      *string `json:"reason"`
}
