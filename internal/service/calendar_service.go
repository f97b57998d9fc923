package service

import (
	"github.com/google/uuid"

	"beautybooking/internal/db"
	"beautybooking/internal/entities"
	"beautybooking/internal/errors"
	"beautybooking/internal/repository"
	"beautybooking/internal/schedule"
	"beautybooking/internal/utils"
)

// CalendarService manages the weekly availability windows and blocked dates
// the booking flow reads from.
type CalendarService struct {
	Repo *repository.CalendarRepository
}

func NewCalendarService(repo *repository.CalendarRepository) *CalendarService {
	return &CalendarService{Repo: repo}
}

func (s *CalendarService) ListAvailability(activeOnly bool) ([]entities.AvailabilityResponse, error) {
	windows, err := s.Repo.ListWindows(activeOnly)
	if err != nil {
		return nil, err
	}
	responses := make([]entities.AvailabilityResponse, 0, len(windows))
	for _, w := range windows {
		responses = append(responses, entities.AvailabilityResponseFrom(w))
	}
	return responses, nil
}

func (s *CalendarService) GetAvailability(id uuid.UUID) (*entities.AvailabilityResponse, error) {
	window, err := s.Repo.GetWindow(id)
	if err != nil {
		return nil, err
	}
	if window == nil {
		return nil, errors.NotFound("availability window not found")
	}
	resp := entities.AvailabilityResponseFrom(*window)
	return &resp, nil
}

func parseWindowTimes(startStr, endStr string) (schedule.TimeOfDay, schedule.TimeOfDay, error) {
	start, err := schedule.ParseTimeOfDay(startStr)
	if err != nil {
		return 0, 0, errors.BadRequest("invalid start_time, expected HH:MM")
	}
	end, err := schedule.ParseTimeOfDay(endStr)
	if err != nil {
		return 0, 0, errors.BadRequest("invalid end_time, expected HH:MM")
	}
	if start >= end {
		return 0, 0, errors.BadRequest("start_time must be before end_time")
	}
	return start, end, nil
}

func (s *CalendarService) CreateAvailability(req entities.AvailabilityRequest) (*entities.AvailabilityResponse, error) {
	if req.DayOfWeek == nil || req.StartTime == nil || req.EndTime == nil {
		return nil, errors.BadRequest("day_of_week, start_time and end_time are required")
	}
	if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
		return nil, errors.BadRequest("day_of_week must be between 0 (Sunday) and 6 (Saturday)")
	}
	start, end, err := parseWindowTimes(*req.StartTime, *req.EndTime)
	if err != nil {
		return nil, err
	}

	exists, err := s.Repo.WindowExists(*req.DayOfWeek, start, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Conflict("an availability window already starts at this time on this day")
	}

	window := &db.AvailabilityWindow{
		ID:        uuid.New(),
		DayOfWeek: *req.DayOfWeek,
		StartTime: start,
		EndTime:   end,
		Active:    true,
	}
	if req.Active != nil {
		window.Active = *req.Active
	}
	if err := s.Repo.CreateWindow(window); err != nil {
		return nil, err
	}
	resp := entities.AvailabilityResponseFrom(*window)
	return &resp, nil
}

func (s *CalendarService) UpdateAvailability(id uuid.UUID, req entities.AvailabilityRequest) (*entities.AvailabilityResponse, error) {
	window, err := s.Repo.GetWindow(id)
	if err != nil {
		return nil, err
	}
	if window == nil {
		return nil, errors.NotFound("availability window not found")
	}

	if req.DayOfWeek != nil {
		if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
			return nil, errors.BadRequest("day_of_week must be between 0 (Sunday) and 6 (Saturday)")
		}
		window.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		start, err := schedule.ParseTimeOfDay(*req.StartTime)
		if err != nil {
			return nil, errors.BadRequest("invalid start_time, expected HH:MM")
		}
		window.StartTime = start
	}
	if req.EndTime != nil {
		end, err := schedule.ParseTimeOfDay(*req.EndTime)
		if err != nil {
			return nil, errors.BadRequest("invalid end_time, expected HH:MM")
		}
		window.EndTime = end
	}
	if window.StartTime >= window.EndTime {
		return nil, errors.BadRequest("start_time must be before end_time")
	}
	if req.Active != nil {
		window.Active = *req.Active
	}

	exists, err := s.Repo.WindowExists(window.DayOfWeek, window.StartTime, window.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Conflict("an availability window already starts at this time on this day")
	}

	if err := s.Repo.UpdateWindow(window); err != nil {
		return nil, err
	}
	resp := entities.AvailabilityResponseFrom(*window)
	return &resp, nil
}

func (s *CalendarService) DeleteAvailability(id uuid.UUID) error {
	window, err := s.Repo.GetWindow(id)
	if err != nil {
		return err
	}
	if window == nil {
		return errors.NotFound("availability window not found")
	}
	return s.Repo.DeleteWindow(id)
}

func (s *CalendarService) ListBlockedDates(upcomingOnly bool) ([]entities.BlockedDateResponse, error) {
	blocked, err := s.Repo.ListBlockedDates(upcomingOnly, utils.Today())
	if err != nil {
		return nil, err
	}
	responses := make([]entities.BlockedDateResponse, 0, len(blocked))
	for _, b := range blocked {
		responses = append(responses, entities.BlockedDateResponseFrom(b))
	}
	return responses, nil
}

func (s *CalendarService) GetBlockedDate(id uuid.UUID) (*entities.BlockedDateResponse, error) {
	blocked, err := s.Repo.GetBlockedDate(id)
	if err != nil {
		return nil, err
	}
	if blocked == nil {
		return nil, errors.NotFound("blocked date not found")
	}
	resp := entities.BlockedDateResponseFrom(*blocked)
	return &resp, nil
}

func (s *CalendarService) CreateBlockedDate(req entities.BlockedDateRequest) (*entities.BlockedDateResponse, error) {
	if req.BlockedDate == nil {
		return nil, errors.BadRequest("blocked_date is required")
	}
	date, err := utils.ParseDate(*req.BlockedDate)
	if err != nil {
		return nil, errors.BadRequest("invalid blocked_date, expected YYYY-MM-DD")
	}

	exists, err := s.Repo.BlockedDateExists(date, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Conflict("this date is already blocked")
	}

	blocked := &db.BlockedDate{ID: uuid.New(), Date: date}
	if req.Reason != nil {
		blocked.Reason = *req.Reason
	}
	if err := s.Repo.CreateBlockedDate(blocked); err != nil {
		return nil, err
	}
	resp := entities.BlockedDateResponseFrom(*blocked)
	return &resp, nil
}

func (s *CalendarService) UpdateBlockedDate(id uuid.UUID, req entities.BlockedDateRequest) (*entities.BlockedDateResponse, error) {
	blocked, err := s.Repo.GetBlockedDate(id)
	if err != nil {
		return nil, err
	}
	if blocked == nil {
		return nil, errors.NotFound("blocked date not found")
	}

	if req.BlockedDate != nil {
		date, err := utils.ParseDate(*req.BlockedDate)
		if err != nil {
			return nil, errors.BadRequest("invalid blocked_date, expected YYYY-MM-DD")
		}
		exists, err := s.Repo.BlockedDateExists(date, blocked.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errors.Conflict("this date is already blocked")
		}
		blocked.Date = date
	}
	if req.Reason != nil {
		blocked.Reason = *req.Reason
	}

	if err := s.Repo.UpdateBlockedDate(blocked); err != nil {
		return nil, err
	}
	resp := entities.BlockedDateResponseFrom(*blocked)
	return &resp, nil
}

func (s *CalendarService) DeleteBlockedDate(id uuid.UUID) error {
	blocked, err := s.Repo.GetBlockedDate(id)
	if err != nil {
		return err
	}
	if blocked == nil {
		return errors.NotFound("blocked date not found")
	}
	return s.Repo.DeleteBlockedDate(id)
}
