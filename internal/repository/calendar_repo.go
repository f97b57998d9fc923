package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"beautybooking/internal/db"
	"beautybooking/internal/schedule"
)

// CalendarRepository owns the business-hours configuration: weekly
// availability windows and blocked dates.
type CalendarRepository struct {
	DB *sql.DB
}

func NewCalendarRepository(database *sql.DB) *CalendarRepository {
	return &CalendarRepository{DB: database}
}

func scanWindow(scan func(dest ...any) error) (db.AvailabilityWindow, error) {
	var w db.AvailabilityWindow
	var start, end string
	if err := scan(&w.ID, &w.DayOfWeek, &start, &end, &w.Active); err != nil {
		return w, err
	}
	var err error
	if w.StartTime, err = schedule.ParseTimeOfDay(start); err != nil {
		return w, err
	}
	if w.EndTime, err = schedule.ParseTimeOfDay(end); err != nil {
		return w, err
	}
	return w, nil
}

func (r *CalendarRepository) ListWindows(activeOnly bool) ([]db.AvailabilityWindow, error) {
	query := `SELECT id, day_of_week, start_time::text, end_time::text, active FROM availability`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY day_of_week, start_time`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var windows []db.AvailabilityWindow
	for rows.Next() {
		w, err := scanWindow(rows.Scan)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, rows.Err()
}

// GetWindow returns (nil, nil) when no window matches.
func (r *CalendarRepository) GetWindow(id uuid.UUID) (*db.AvailabilityWindow, error) {
	w, err := scanWindow(r.DB.QueryRow(
		`SELECT id, day_of_week, start_time::text, end_time::text, active
		 FROM availability WHERE id = $1`, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *CalendarRepository) CreateWindow(w *db.AvailabilityWindow) error {
	_, err := r.DB.Exec(
		`INSERT INTO availability (id, day_of_week, start_time, end_time, active)
		 VALUES ($1, $2, $3::time, $4::time, $5)`,
		w.ID, w.DayOfWeek, w.StartTime.String(), w.EndTime.String(), w.Active)
	return err
}

func (r *CalendarRepository) UpdateWindow(w *db.AvailabilityWindow) error {
	_, err := r.DB.Exec(
		`UPDATE availability SET day_of_week = $1, start_time = $2::time, end_time = $3::time, active = $4
		 WHERE id = $5`,
		w.DayOfWeek, w.StartTime.String(), w.EndTime.String(), w.Active, w.ID)
	return err
}

func (r *CalendarRepository) DeleteWindow(id uuid.UUID) error {
	_, err := r.DB.Exec(`DELETE FROM availability WHERE id = $1`, id)
	return err
}

// WindowExists reports whether another window already covers the same weekday
// and start time (the upstream uniqueness rule).
func (r *CalendarRepository) WindowExists(dayOfWeek int, start schedule.TimeOfDay, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(
		`SELECT EXISTS (
			SELECT 1 FROM availability
			WHERE day_of_week = $1 AND start_time = $2::time AND id <> $3
		 )`,
		dayOfWeek, start.String(), excludeID).Scan(&exists)
	return exists, err
}

func (r *CalendarRepository) ListBlockedDates(upcomingOnly bool, from time.Time) ([]db.BlockedDate, error) {
	query := `SELECT id, blocked_date, COALESCE(reason, ''), created_at FROM blocked_dates`
	args := []any{}
	if upcomingOnly {
		query += ` WHERE blocked_date >= $1::date`
		args = append(args, from)
	}
	query += ` ORDER BY blocked_date`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocked []db.BlockedDate
	for rows.Next() {
		var b db.BlockedDate
		if err := rows.Scan(&b.ID, &b.Date, &b.Reason, &b.CreatedAt); err != nil {
			return nil, err
		}
		blocked = append(blocked, b)
	}
	return blocked, rows.Err()
}

// GetBlockedDate returns (nil, nil) when no record matches.
func (r *CalendarRepository) GetBlockedDate(id uuid.UUID) (*db.BlockedDate, error) {
	var b db.BlockedDate
	err := r.DB.QueryRow(
		`SELECT id, blocked_date, COALESCE(reason, ''), created_at FROM blocked_dates WHERE id = $1`, id).
		Scan(&b.ID, &b.Date, &b.Reason, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *CalendarRepository) CreateBlockedDate(b *db.BlockedDate) error {
	return r.DB.QueryRow(
		`INSERT INTO blocked_dates (id, blocked_date, reason, created_at)
		 VALUES ($1, $2, NULLIF($3, ''), NOW())
		 RETURNING created_at`,
		b.ID, b.Date, b.Reason).Scan(&b.CreatedAt)
}

func (r *CalendarRepository) UpdateBlockedDate(b *db.BlockedDate) error {
	_, err := r.DB.Exec(
		`UPDATE blocked_dates SET blocked_date = $1, reason = NULLIF($2, '') WHERE id = $3`,
		b.Date, b.Reason, b.ID)
	return err
}

func (r *CalendarRepository) DeleteBlockedDate(id uuid.UUID) error {
	_, err := r.DB.Exec(`DELETE FROM blocked_dates WHERE id = $1`, id)
	return err
}

func (r *CalendarRepository) BlockedDateExists(date time.Time, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM blocked_dates WHERE blocked_date = $1::date AND id <> $2)`,
		date, excludeID).Scan(&exists)
	return exists, err
}

// WindowsSnapshot returns the active windows as engine values.
func (r *CalendarRepository) WindowsSnapshot() ([]schedule.Window, error) {
	windows, err := r.ListWindows(true)
	if err != nil {
		return nil, err
	}
	snapshot := make([]schedule.Window, 0, len(windows))
	for _, w := range windows {
		snapshot = append(snapshot, schedule.Window{
			DayOfWeek: w.DayOfWeek,
			Start:     w.StartTime,
			End:       w.EndTime,
			Active:    w.Active,
		})
	}
	return snapshot, nil
}

// BlockedSnapshot returns the blocked dates matching the given date (zero or
// one entries), which is all the engine needs when checking a single day.
func (r *CalendarRepository) BlockedSnapshot(date time.Time) ([]time.Time, error) {
	rows, err := r.DB.Query(`SELECT blocked_date FROM blocked_dates WHERE blocked_date = $1::date`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocked []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		blocked = append(blocked, d)
	}
	return blocked, rows.Err()
}
