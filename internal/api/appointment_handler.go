package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"beautybooking/internal/auth"
	"beautybooking/internal/entities"
	"beautybooking/internal/service"
)

type AppointmentHandler struct {
	Booking *service.BookingService
}

func NewAppointmentHandler(booking *service.BookingService) *AppointmentHandler {
	return &AppointmentHandler{Booking: booking}
}

// AvailableSlots is public so clients can browse before logging in.
// GET /appointments/available-slots?service_id=...&date=YYYY-MM-DD
func (h *AppointmentHandler) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	serviceID, err := uuid.Parse(r.URL.Query().Get("service_id"))
	if err != nil {
		http.Error(w, "Invalid or missing service_id", http.StatusBadRequest)
		return
	}
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		http.Error(w, "Missing date", http.StatusBadRequest)
		return
	}
	slots, err := h.Booking.AvailableSlots(serviceID, dateStr)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, slots)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req entities.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	resp, err := h.Booking.CreateAppointment(claims.UserID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// ListAppointments returns the caller's own appointments.
// Optional filters: ?status=, ?upcoming=true, ?today=true.
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	q := r.URL.Query()
	resp, err := h.Booking.ListClientAppointments(claims.UserID, q.Get("status"),
		q.Get("upcoming") == "true", q.Get("today") == "true")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListAllAppointments is the admin view across all clients.
func (h *AppointmentHandler) ListAllAppointments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp, err := h.Booking.ListAllAppointments(q.Get("status"), q.Get("date"), q.Get("client_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid appointment id", http.StatusBadRequest)
		return
	}
	resp, err := h.Booking.GetAppointment(id, claims.UserID, claims.Role == auth.RoleAdmin)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid appointment id", http.StatusBadRequest)
		return
	}
	var req entities.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	resp, err := h.Booking.UpdateAppointment(id, claims.UserID, claims.Role == auth.RoleAdmin, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid appointment id", http.StatusBadRequest)
		return
	}
	if err := h.Booking.DeleteAppointment(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "appointment deleted"})
}

func (h *AppointmentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Booking.Stats()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
