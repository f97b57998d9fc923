package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"beautybooking/internal/auth"
	"beautybooking/internal/entities"
	"beautybooking/internal/service"
)

type AIHandler struct {
	AI *service.AIService
}

func NewAIHandler(ai *service.AIService) *AIHandler {
	return &AIHandler{AI: ai}
}

func (h *AIHandler) Chatbot(w http.ResponseWriter, r *http.Request) {
	var req entities.ChatbotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	resp, err := h.AI.Chatbot(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AIHandler) GenerateReminder(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req struct {
		AppointmentID string `json:"appointment_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	id, err := uuid.Parse(req.AppointmentID)
	if err != nil {
		http.Error(w, "Invalid appointment_id", http.StatusBadRequest)
		return
	}
	resp, err := h.AI.GenerateReminder(r.Context(), id, claims.UserID, claims.Role == auth.RoleAdmin)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AIHandler) ServiceSuggestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	resp, err := h.AI.ServiceSuggestions(r.Context(), req.Query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
