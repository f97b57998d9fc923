package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"beautybooking/internal/entities"
	"beautybooking/internal/service"
)

type CalendarHandler struct {
	Calendar *service.CalendarService
}

func NewCalendarHandler(calendar *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{Calendar: calendar}
}

// ListAvailability is public: the booking page shows opening hours.
// ?active=false includes inactive windows.
func (h *CalendarHandler) ListAvailability(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") != "false"
	windows, err := h.Calendar.ListAvailability(activeOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, windows)
}

func (h *CalendarHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid availability id", http.StatusBadRequest)
		return
	}
	window, err := h.Calendar.GetAvailability(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, window)
}

func (h *CalendarHandler) CreateAvailability(w http.ResponseWriter, r *http.Request) {
	var req entities.AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	window, err := h.Calendar.CreateAvailability(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, window)
}

func (h *CalendarHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid availability id", http.StatusBadRequest)
		return
	}
	var req entities.AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	window, err := h.Calendar.UpdateAvailability(id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, window)
}

func (h *CalendarHandler) DeleteAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid availability id", http.StatusBadRequest)
		return
	}
	if err := h.Calendar.DeleteAvailability(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "availability window deleted"})
}

// ListBlockedDates is public so the booking page can grey out closed days.
// ?upcoming=true limits the list to today onward.
func (h *CalendarHandler) ListBlockedDates(w http.ResponseWriter, r *http.Request) {
	blocked, err := h.Calendar.ListBlockedDates(r.URL.Query().Get("upcoming") == "true")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blocked)
}

func (h *CalendarHandler) GetBlockedDate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid blocked date id", http.StatusBadRequest)
		return
	}
	blocked, err := h.Calendar.GetBlockedDate(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blocked)
}

func (h *CalendarHandler) CreateBlockedDate(w http.ResponseWriter, r *http.Request) {
	var req entities.BlockedDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	blocked, err := h.Calendar.CreateBlockedDate(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, blocked)
}

func (h *CalendarHandler) UpdateBlockedDate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid blocked date id", http.StatusBadRequest)
		return
	}
	var req entities.BlockedDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	blocked, err := h.Calendar.UpdateBlockedDate(id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blocked)
}

func (h *CalendarHandler) DeleteBlockedDate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid blocked date id", http.StatusBadRequest)
		return
	}
	if err := h.Calendar.DeleteBlockedDate(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "blocked date removed"})
}
