package repository

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// JobRepository backs the scheduled maintenance jobs.
type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// PastOccupyingAppointmentIDs returns pending and confirmed appointments whose
// end time has already passed.
func (r *JobRepository) PastOccupyingAppointmentIDs(now time.Time) ([]string, error) {
	rows, err := r.DB.Query(`
		SELECT a.id
		FROM appointments a
		JOIN services s ON s.id = a.service_id
		WHERE a.status IN ('pending', 'confirmed')
		  AND a.appointment_date + a.appointment_time + make_interval(mins => s.duration_minutes) < $1`,
		now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *JobRepository) UpdateAppointmentStatuses(ids []string, status string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.DB.Exec(
		`UPDATE appointments SET status = $1 WHERE id = ANY($2::uuid[])`,
		status, pq.Array(ids))
	return err
}

// RemindersForDate returns the occupying appointments on a date, with client
// and service attached, for the reminder job.
func (r *JobRepository) RemindersForDate(date time.Time) ([]AppointmentDetail, error) {
	appointments := &AppointmentRepository{DB: r.DB}
	return appointments.queryDetails(`
		SELECT`+appointmentDetailColumns+`
		FROM appointments a
		JOIN users u ON u.id = a.client_id
		JOIN services s ON s.id = a.service_id
		WHERE a.appointment_date = $1::date AND a.status IN ('pending', 'confirmed')
		ORDER BY a.appointment_time`, date)
}
