package repository

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"beautybooking/internal/db"
	"beautybooking/internal/entities"
	"beautybooking/internal/schedule"
)

// AppointmentDetail is an appointment joined with its client and service rows.
type AppointmentDetail struct {
	Appointment db.Appointment
	Client      db.User
	Service     db.Service
}

type AppointmentRepository struct {
	DB *sql.DB
}

func NewAppointmentRepository(database *sql.DB) *AppointmentRepository {
	return &AppointmentRepository{DB: database}
}

const appointmentDetailColumns = `
	a.id, a.client_id, a.service_id, a.appointment_date, a.appointment_time::text,
	a.status, COALESCE(a.notes, ''), a.created_at,
	u.id, u.email, u.password_hash, u.name, COALESCE(u.phone, ''), u.role, u.created_at,
	s.id, s.name, COALESCE(s.description, ''), s.price, s.duration_minutes,
	COALESCE(s.image_url, ''), s.active, s.created_at`

func scanAppointmentDetail(scan func(dest ...any) error) (AppointmentDetail, error) {
	var d AppointmentDetail
	var startTime string
	err := scan(
		&d.Appointment.ID, &d.Appointment.ClientID, &d.Appointment.ServiceID,
		&d.Appointment.Date, &startTime, &d.Appointment.Status,
		&d.Appointment.Notes, &d.Appointment.CreatedAt,
		&d.Client.ID, &d.Client.Email, &d.Client.PasswordHash, &d.Client.Name,
		&d.Client.Phone, &d.Client.Role, &d.Client.CreatedAt,
		&d.Service.ID, &d.Service.Name, &d.Service.Description, &d.Service.Price,
		&d.Service.DurationMinutes, &d.Service.ImageURL, &d.Service.Active,
		&d.Service.CreatedAt,
	)
	if err != nil {
		return d, err
	}
	if d.Appointment.StartTime, err = schedule.ParseTimeOfDay(startTime); err != nil {
		return d, err
	}
	return d, nil
}

func (r *AppointmentRepository) queryDetails(query string, args ...any) ([]AppointmentDetail, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []AppointmentDetail
	for rows.Next() {
		d, err := scanAppointmentDetail(rows.Scan)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// ListByClient returns the client's appointments, newest date first. The
// status, upcoming and today filters are all optional.
func (r *AppointmentRepository) ListByClient(clientID uuid.UUID, status string, upcoming, today bool, now time.Time) ([]AppointmentDetail, error) {
	query := `
		SELECT` + appointmentDetailColumns + `
		FROM appointments a
		JOIN users u ON u.id = a.client_id
		JOIN services s ON s.id = a.service_id
		WHERE a.client_id = $1`
	args := []any{clientID}

	if status != "" {
		args = append(args, status)
		query += ` AND a.status = $2`
	}
	if upcoming {
		args = append(args, now)
		query += ` AND a.appointment_date >= $` + strconv.Itoa(len(args)) + `::date AND a.status IN ('pending', 'confirmed')`
	}
	if today {
		args = append(args, now)
		query += ` AND a.appointment_date = $` + strconv.Itoa(len(args)) + `::date`
	}
	query += ` ORDER BY a.appointment_date DESC, a.appointment_time DESC`

	return r.queryDetails(query, args...)
}

// ListAll is the admin view. date and clientID narrow the result when set.
func (r *AppointmentRepository) ListAll(status string, date *time.Time, clientID *uuid.UUID) ([]AppointmentDetail, error) {
	query := `
		SELECT` + appointmentDetailColumns + `
		FROM appointments a
		JOIN users u ON u.id = a.client_id
		JOIN services s ON s.id = a.service_id
		WHERE 1 = 1`
	args := []any{}

	if status != "" {
		args = append(args, status)
		query += ` AND a.status = $` + strconv.Itoa(len(args))
	}
	if date != nil {
		args = append(args, *date)
		query += ` AND a.appointment_date = $` + strconv.Itoa(len(args)) + `::date`
	}
	if clientID != nil {
		args = append(args, *clientID)
		query += ` AND a.client_id = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY a.appointment_date DESC, a.appointment_time DESC`

	return r.queryDetails(query, args...)
}

// GetByID returns (nil, nil) when no appointment matches.
func (r *AppointmentRepository) GetByID(id uuid.UUID) (*AppointmentDetail, error) {
	d, err := scanAppointmentDetail(r.DB.QueryRow(`
		SELECT`+appointmentDetailColumns+`
		FROM appointments a
		JOIN users u ON u.id = a.client_id
		JOIN services s ON s.id = a.service_id
		WHERE a.id = $1`, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *AppointmentRepository) Delete(id uuid.UUID) error {
	_, err := r.DB.Exec(`DELETE FROM appointments WHERE id = $1`, id)
	return err
}

// LockDateTx serializes bookings for one calendar day. Writers for the same
// date queue behind the advisory lock until the transaction ends, so the
// conflict check and the insert happen against a stable view of the day.
func (r *AppointmentRepository) LockDateTx(tx *sql.Tx, date time.Time) error {
	_, err := tx.Exec(`SELECT pg_advisory_xact_lock(hashtext($1::date::text))`, date)
	return err
}

const bookedIntervalsQuery = `
	SELECT a.id, a.appointment_date, a.appointment_time::text, s.duration_minutes, a.status
	FROM appointments a
	JOIN services s ON s.id = a.service_id
	WHERE a.appointment_date = $1::date AND a.status IN ('pending', 'confirmed')`

func scanBookedIntervals(rows *sql.Rows) ([]schedule.BookedInterval, error) {
	defer rows.Close()

	var booked []schedule.BookedInterval
	for rows.Next() {
		var b schedule.BookedInterval
		var startTime string
		if err := rows.Scan(&b.AppointmentID, &b.Date, &startTime, &b.DurationMinutes, &b.Status); err != nil {
			return nil, err
		}
		var err error
		if b.Start, err = schedule.ParseTimeOfDay(startTime); err != nil {
			return nil, err
		}
		booked = append(booked, b)
	}
	return booked, rows.Err()
}

// BookedIntervalsForDate returns the occupying appointments on a date as
// engine values.
func (r *AppointmentRepository) BookedIntervalsForDate(date time.Time) ([]schedule.BookedInterval, error) {
	rows, err := r.DB.Query(bookedIntervalsQuery, date)
	if err != nil {
		return nil, err
	}
	return scanBookedIntervals(rows)
}

// BookedIntervalsForDateTx is the transactional variant, used together with
// LockDateTx while booking.
func (r *AppointmentRepository) BookedIntervalsForDateTx(tx *sql.Tx, date time.Time) ([]schedule.BookedInterval, error) {
	rows, err := tx.Query(bookedIntervalsQuery, date)
	if err != nil {
		return nil, err
	}
	return scanBookedIntervals(rows)
}

func (r *AppointmentRepository) CreateTx(tx *sql.Tx, appt *db.Appointment) error {
	return tx.QueryRow(`
		INSERT INTO appointments (id, client_id, service_id, appointment_date, appointment_time, status, notes, created_at)
		VALUES ($1, $2, $3, $4::date, $5::time, $6, NULLIF($7, ''), NOW())
		RETURNING created_at`,
		appt.ID, appt.ClientID, appt.ServiceID, appt.Date, appt.StartTime.String(),
		string(appt.Status), appt.Notes,
	).Scan(&appt.CreatedAt)
}

func (r *AppointmentRepository) Update(appt *db.Appointment) error {
	_, err := r.DB.Exec(`
		UPDATE appointments
		SET service_id = $1, appointment_date = $2::date, appointment_time = $3::time,
		    status = $4, notes = NULLIF($5, '')
		WHERE id = $6`,
		appt.ServiceID, appt.Date, appt.StartTime.String(), string(appt.Status), appt.Notes, appt.ID)
	return err
}

func (r *AppointmentRepository) UpdateTx(tx *sql.Tx, appt *db.Appointment) error {
	_, err := tx.Exec(`
		UPDATE appointments
		SET service_id = $1, appointment_date = $2::date, appointment_time = $3::time,
		    status = $4, notes = NULLIF($5, '')
		WHERE id = $6`,
		appt.ServiceID, appt.Date, appt.StartTime.String(), string(appt.Status), appt.Notes, appt.ID)
	return err
}

// Stats aggregates the numbers shown on the admin dashboard.
func (r *AppointmentRepository) Stats(today time.Time) (*entities.StatsResponse, error) {
	stats := &entities.StatsResponse{ByStatus: map[string]int{}}

	rows, err := r.DB.Query(`SELECT status, COUNT(*) FROM appointments GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.ByStatus[status] = count
		stats.TotalAppointments += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = r.DB.QueryRow(`
		SELECT COUNT(*) FROM appointments
		WHERE appointment_date = $1::date AND status IN ('pending', 'confirmed')`, today).
		Scan(&stats.Today)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRow(`
		SELECT COUNT(*) FROM appointments
		WHERE appointment_date >= $1::date AND appointment_date < $1::date + 7
		  AND status IN ('pending', 'confirmed')`, today).
		Scan(&stats.UpcomingWeek)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRow(`
		SELECT COALESCE(SUM(s.price), 0)
		FROM appointments a
		JOIN services s ON s.id = a.service_id
		WHERE a.status = 'completed'`).
		Scan(&stats.TotalRevenue)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
