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

type ServiceHandler struct {
	Catalog *service.CatalogService
}

func NewServiceHandler(catalog *service.CatalogService) *ServiceHandler {
	return &ServiceHandler{Catalog: catalog}
}

// ListServices is public. Admins may pass ?active=false to see the full
// catalog including deactivated services.
func (h *ServiceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	includeInactive := false
	if r.URL.Query().Get("active") == "false" {
		claims, ok := auth.FromContext(r.Context())
		includeInactive = ok && claims.Role == auth.RoleAdmin
	}
	services, err := h.Catalog.ListServices(includeInactive)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

func (h *ServiceHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid service id", http.StatusBadRequest)
		return
	}
	svc, err := h.Catalog.GetService(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req entities.ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	svc, err := h.Catalog.CreateService(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, svc)
}

func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid service id", http.StatusBadRequest)
		return
	}
	var req entities.ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	svc, err := h.Catalog.UpdateService(id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid service id", http.StatusBadRequest)
		return
	}
	if err := h.Catalog.DeleteService(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "service deactivated"})
}
