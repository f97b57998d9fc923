package entities

import "time"

type AppointmentClient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type AppointmentResponse struct {
	ID              string             `json:"id"`
	ClientID        string             `json:"client_id"`
	ServiceID       string             `json:"service_id"`
	AppointmentDate string             `json:"appointment_date"`
	AppointmentTime string             `json:"appointment_time"`
	Status          string             `json:"status"`
	Notes           string             `json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	Client          *AppointmentClient `json:"client,omitempty"`
	Service         *ServiceResponse   `json:"service,omitempty"`
}

type CreateAppointmentRequest struct {
	ServiceID       string `json:"service_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Notes           string `json:"notes"`
}

// UpdateAppointmentRequest carries partial updates; nil means "leave as is".
type UpdateAppointmentRequest struct {
	Status          *string `json:"status"`
	Notes           *string `json:"notes"`
	AppointmentDate *string `json:"appointment_date"`
	AppointmentTime *string `json:"appointment_time"`
}

type SlotsResponse struct {
	Date           string   `json:"date"`
	ServiceID      string   `json:"service_id"`
	ServiceName    string   `json:"service_name"`
	AvailableSlots []string `json:"available_slots"`
	Count          int      `json:"count"`
}

type StatsResponse struct {
	ByStatus          map[string]int `json:"by_status"`
	Today             int            `json:"today"`
	UpcomingWeek      int            `json:"upcoming_week"`
	TotalRevenue      float64        `json:"total_revenue"`
	TotalAppointments int            `json:"total_appointments"`
}
