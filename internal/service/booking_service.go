package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"beautybooking/internal/db"
	"beautybooking/internal/entities"
	"beautybooking/internal/errors"
	"beautybooking/internal/repository"
	"beautybooking/internal/schedule"
	"beautybooking/internal/utils"
)

// BookingService implements the appointment lifecycle: slot discovery,
// booking, rescheduling and cancellation.
type BookingService struct {
	Appointments *repository.AppointmentRepository
	Services     *repository.ServiceRepository
	Calendar     *repository.CalendarRepository
	Sender       *SenderService
}

func NewBookingService(appointments *repository.AppointmentRepository, services *repository.ServiceRepository,
	calendar *repository.CalendarRepository, sender *SenderService) *BookingService {
	return &BookingService{
		Appointments: appointments,
		Services:     services,
		Calendar:     calendar,
		Sender:       sender,
	}
}

func detailToResponse(d repository.AppointmentDetail, includeClient bool) entities.AppointmentResponse {
	resp := entities.AppointmentResponse{
		ID:              d.Appointment.ID.String(),
		ClientID:        d.Appointment.ClientID.String(),
		ServiceID:       d.Appointment.ServiceID.String(),
		AppointmentDate: utils.FormatDate(d.Appointment.Date),
		AppointmentTime: d.Appointment.StartTime.String(),
		Status:          string(d.Appointment.Status),
		Notes:           d.Appointment.Notes,
		CreatedAt:       d.Appointment.CreatedAt,
	}
	svc := entities.ServiceResponseFrom(d.Service)
	resp.Service = &svc
	if includeClient {
		resp.Client = &entities.AppointmentClient{
			ID:    d.Client.ID.String(),
			Name:  d.Client.Name,
			Email: d.Client.Email,
			Phone: d.Client.Phone,
		}
	}
	return resp
}

func (s *BookingService) activeService(id uuid.UUID) (*db.Service, error) {
	svc, err := s.Services.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil || !svc.Active {
		return nil, errors.NotFound("service not found")
	}
	return svc, nil
}

// AvailableSlots computes the bookable start times for a service on a date.
func (s *BookingService) AvailableSlots(serviceID uuid.UUID, dateStr string) (*entities.SlotsResponse, error) {
	svc, err := s.Services.GetByID(serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, errors.NotFound("service not found")
	}
	if !svc.Active {
		return nil, errors.BadRequest("service is not active")
	}
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return nil, errors.BadRequest("invalid date, expected YYYY-MM-DD")
	}
	if date.Before(utils.Today()) {
		return nil, errors.BadRequest("date is in the past")
	}

	resp := &entities.SlotsResponse{
		Date:           utils.FormatDate(date),
		ServiceID:      svc.ID.String(),
		ServiceName:    svc.Name,
		AvailableSlots: []string{},
	}

	windows, err := s.Calendar.WindowsSnapshot()
	if err != nil {
		return nil, err
	}
	blocked, err := s.Calendar.BlockedSnapshot(date)
	if err != nil {
		return nil, err
	}
	if !schedule.IsDateOpen(date, blocked, windows) {
		return resp, nil
	}

	booked, err := s.Appointments.BookedIntervalsForDate(date)
	if err != nil {
		return nil, err
	}

	for _, slot := range schedule.GenerateSlots(date, svc.DurationMinutes, windows, booked, schedule.DefaultSlotStep) {
		resp.AvailableSlots = append(resp.AvailableSlots, slot.String())
	}
	resp.Count = len(resp.AvailableSlots)
	return resp, nil
}

// reserve runs the check-then-write bracket for one appointment. The advisory
// lock on the date keeps concurrent bookings from interleaving between the
// conflict check and the write.
func (s *BookingService) reserve(appt *db.Appointment, duration int, isNew bool) error {
	windows, err := s.Calendar.WindowsSnapshot()
	if err != nil {
		return err
	}
	blocked, err := s.Calendar.BlockedSnapshot(appt.Date)
	if err != nil {
		return err
	}
	if !schedule.IsDateOpen(appt.Date, blocked, windows) {
		return errors.BadRequest("the salon is closed on this date")
	}
	if appt.StartTime.Add(duration) > schedule.TimeOfDay(24*60) {
		return errors.BadRequest("the appointment would run past midnight")
	}

	tx, err := s.Appointments.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.Appointments.LockDateTx(tx, appt.Date); err != nil {
		return err
	}

	booked, err := s.Appointments.BookedIntervalsForDateTx(tx, appt.Date)
	if err != nil {
		return err
	}
	excludeID := appt.ID
	if isNew {
		excludeID = uuid.Nil
	}
	if result := schedule.CheckConflict(appt.Date, appt.StartTime, duration, booked, excludeID); result.Conflict {
		return errors.Conflict(fmt.Sprintf("this time overlaps an existing appointment at %s", result.With))
	}

	if isNew {
		err = s.Appointments.CreateTx(tx, appt)
	} else {
		err = s.Appointments.UpdateTx(tx, appt)
	}
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (s *BookingService) CreateAppointment(clientID uuid.UUID, req entities.CreateAppointmentRequest) (*entities.AppointmentResponse, error) {
	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, errors.BadRequest("invalid service_id")
	}
	svc, err := s.activeService(serviceID)
	if err != nil {
		return nil, err
	}

	date, err := utils.ParseDate(req.AppointmentDate)
	if err != nil {
		return nil, errors.BadRequest("invalid appointment_date, expected YYYY-MM-DD")
	}
	if date.Before(utils.Today()) {
		return nil, errors.BadRequest("cannot book an appointment in the past")
	}
	start, err := schedule.ParseTimeOfDay(req.AppointmentTime)
	if err != nil {
		return nil, errors.BadRequest("invalid appointment_time, expected HH:MM")
	}

	appt := &db.Appointment{
		ID:        uuid.New(),
		ClientID:  clientID,
		ServiceID: svc.ID,
		Date:      date,
		StartTime: start,
		Status:    schedule.StatusPending,
		Notes:     req.Notes,
	}
	if err := s.reserve(appt, svc.DurationMinutes, true); err != nil {
		return nil, err
	}

	detail, err := s.Appointments.GetByID(appt.ID)
	if err != nil || detail == nil {
		log.Printf("Could not reload appointment %s after booking: %v", appt.ID, err)
		resp := entities.AppointmentResponse{
			ID:              appt.ID.String(),
			ClientID:        appt.ClientID.String(),
			ServiceID:       appt.ServiceID.String(),
			AppointmentDate: utils.FormatDate(appt.Date),
			AppointmentTime: appt.StartTime.String(),
			Status:          string(appt.Status),
			Notes:           appt.Notes,
			CreatedAt:       appt.CreatedAt,
		}
		return &resp, nil
	}

	s.Sender.SendAppointmentEmail(*detail, "booked")
	resp := detailToResponse(*detail, false)
	return &resp, nil
}

func (s *BookingService) ListClientAppointments(clientID uuid.UUID, status string, upcoming, today bool) ([]entities.AppointmentResponse, error) {
	if status != "" && !schedule.Status(status).Valid() {
		return nil, errors.BadRequest("invalid status filter")
	}
	details, err := s.Appointments.ListByClient(clientID, status, upcoming, today, utils.Today())
	if err != nil {
		return nil, err
	}
	responses := make([]entities.AppointmentResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, detailToResponse(d, false))
	}
	return responses, nil
}

func (s *BookingService) ListAllAppointments(status, dateStr, clientIDStr string) ([]entities.AppointmentResponse, error) {
	if status != "" && !schedule.Status(status).Valid() {
		return nil, errors.BadRequest("invalid status filter")
	}
	var date *time.Time
	if dateStr != "" {
		parsed, err := utils.ParseDate(dateStr)
		if err != nil {
			return nil, errors.BadRequest("invalid date filter, expected YYYY-MM-DD")
		}
		date = &parsed
	}
	var clientID *uuid.UUID
	if clientIDStr != "" {
		parsed, err := uuid.Parse(clientIDStr)
		if err != nil {
			return nil, errors.BadRequest("invalid client_id filter")
		}
		clientID = &parsed
	}

	details, err := s.Appointments.ListAll(status, date, clientID)
	if err != nil {
		return nil, err
	}
	responses := make([]entities.AppointmentResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, detailToResponse(d, true))
	}
	return responses, nil
}

// GetAppointment enforces ownership: clients see only their own bookings.
func (s *BookingService) GetAppointment(id, requesterID uuid.UUID, isAdmin bool) (*entities.AppointmentResponse, error) {
	detail, err := s.Appointments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, errors.NotFound("appointment not found")
	}
	if !isAdmin && detail.Appointment.ClientID != requesterID {
		return nil, errors.Forbidden("you can only view your own appointments")
	}
	resp := detailToResponse(*detail, isAdmin)
	return &resp, nil
}

// UpdateAppointment applies a partial update. Admins may change anything;
// clients may only cancel their own booking or edit its notes.
func (s *BookingService) UpdateAppointment(id, requesterID uuid.UUID, isAdmin bool, req entities.UpdateAppointmentRequest) (*entities.AppointmentResponse, error) {
	detail, err := s.Appointments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, errors.NotFound("appointment not found")
	}
	appt := detail.Appointment
	previousStatus := appt.Status

	if !isAdmin {
		if appt.ClientID != requesterID {
			return nil, errors.Forbidden("you can only modify your own appointments")
		}
		if req.AppointmentDate != nil || req.AppointmentTime != nil {
			return nil, errors.Forbidden("contact the salon to reschedule an appointment")
		}
		if req.Status != nil && *req.Status != string(schedule.StatusCancelled) {
			return nil, errors.Forbidden("you can only cancel an appointment")
		}
	}

	if req.Status != nil {
		status := schedule.Status(*req.Status)
		if !status.Valid() {
			return nil, errors.BadRequest("invalid status")
		}
		appt.Status = status
	}
	if req.Notes != nil {
		appt.Notes = *req.Notes
	}

	rescheduled := false
	if req.AppointmentDate != nil {
		date, err := utils.ParseDate(*req.AppointmentDate)
		if err != nil {
			return nil, errors.BadRequest("invalid appointment_date, expected YYYY-MM-DD")
		}
		appt.Date = date
		rescheduled = true
	}
	if req.AppointmentTime != nil {
		start, err := schedule.ParseTimeOfDay(*req.AppointmentTime)
		if err != nil {
			return nil, errors.BadRequest("invalid appointment_time, expected HH:MM")
		}
		appt.StartTime = start
		rescheduled = true
	}

	if rescheduled && appt.Status.Occupies() {
		if appt.Date.Before(utils.Today()) {
			return nil, errors.BadRequest("cannot reschedule into the past")
		}
		if err := s.reserve(&appt, detail.Service.DurationMinutes, false); err != nil {
			return nil, err
		}
	} else {
		if err := s.Appointments.Update(&appt); err != nil {
			return nil, err
		}
	}

	updated, err := s.Appointments.GetByID(appt.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errors.NotFound("appointment not found")
	}

	if appt.Status != previousStatus {
		s.Sender.SendAppointmentEmail(*updated, string(appt.Status))
		s.Sender.SendAppointmentSMS(*updated, string(appt.Status))
	}
	resp := detailToResponse(*updated, isAdmin)
	return &resp, nil
}

func (s *BookingService) DeleteAppointment(id uuid.UUID) error {
	detail, err := s.Appointments.GetByID(id)
	if err != nil {
		return err
	}
	if detail == nil {
		return errors.NotFound("appointment not found")
	}
	return s.Appointments.Delete(id)
}

func (s *BookingService) Stats() (*entities.StatsResponse, error) {
	return s.Appointments.Stats(utils.Today())
}
