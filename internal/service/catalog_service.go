package service

import (
	"github.com/google/uuid"

	"beautybooking/internal/db"
	"beautybooking/internal/entities"
	"beautybooking/internal/errors"
	"beautybooking/internal/repository"
)

// CatalogService manages the service menu shown to clients.
type CatalogService struct {
	Repo *repository.ServiceRepository
}

func NewCatalogService(repo *repository.ServiceRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

func (s *CatalogService) ListServices(includeInactive bool) ([]entities.ServiceResponse, error) {
	services, err := s.Repo.List(!includeInactive)
	if err != nil {
		return nil, err
	}
	responses := make([]entities.ServiceResponse, 0, len(services))
	for _, svc := range services {
		responses = append(responses, entities.ServiceResponseFrom(svc))
	}
	return responses, nil
}

func (s *CatalogService) GetService(id uuid.UUID) (*entities.ServiceResponse, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, errors.NotFound("service not found")
	}
	resp := entities.ServiceResponseFrom(*svc)
	return &resp, nil
}

func validateServiceFields(name string, price float64, duration int) error {
	if name == "" || len(name) > 100 {
		return errors.BadRequest("service name must be between 1 and 100 characters")
	}
	if price < 0 {
		return errors.BadRequest("price cannot be negative")
	}
	if duration < 1 || duration > 480 {
		return errors.BadRequest("duration must be between 1 and 480 minutes")
	}
	return nil
}

func (s *CatalogService) CreateService(req entities.ServiceRequest) (*entities.ServiceResponse, error) {
	if req.Name == nil || req.Price == nil || req.Duration == nil {
		return nil, errors.BadRequest("name, price and duration are required")
	}
	if err := validateServiceFields(*req.Name, *req.Price, *req.Duration); err != nil {
		return nil, err
	}

	svc := &db.Service{
		ID:              uuid.New(),
		Name:            *req.Name,
		Price:           *req.Price,
		DurationMinutes: *req.Duration,
		Active:          true,
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.ImageURL != nil {
		svc.ImageURL = *req.ImageURL
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := s.Repo.Create(svc); err != nil {
		return nil, err
	}
	resp := entities.ServiceResponseFrom(*svc)
	return &resp, nil
}

func (s *CatalogService) UpdateService(id uuid.UUID, req entities.ServiceRequest) (*entities.ServiceResponse, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, errors.NotFound("service not found")
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Duration != nil {
		svc.DurationMinutes = *req.Duration
	}
	if req.ImageURL != nil {
		svc.ImageURL = *req.ImageURL
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}
	if err := validateServiceFields(svc.Name, svc.Price, svc.DurationMinutes); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(svc); err != nil {
		return nil, err
	}
	resp := entities.ServiceResponseFrom(*svc)
	return &resp, nil
}

// DeleteService deactivates rather than deletes, so past appointments keep
// their service reference.
func (s *CatalogService) DeleteService(id uuid.UUID) error {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if svc == nil {
		return errors.NotFound("service not found")
	}
	return s.Repo.Deactivate(id)
}
