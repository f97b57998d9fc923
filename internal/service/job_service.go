package service

import (
	"fmt"
	"log"
	"time"

	"beautybooking/internal/repository"
)

type JobService struct {
	Repo   *repository.JobRepository
	Sender *SenderService
}

func NewJobService(repo *repository.JobRepository, sender *SenderService) *JobService {
	return &JobService{Repo: repo, Sender: sender}
}

// CompletePastAppointments marks pending and confirmed appointments whose end
// time has passed as completed.
func (s *JobService) CompletePastAppointments() error {
	log.Println("Cron Job: Checking for appointments to mark as 'completed'...")

	ids, err := s.Repo.PastOccupyingAppointmentIDs(time.Now().UTC())
	if err != nil {
		return fmt.Errorf("cron job: failed to get appointments past their end time: %w", err)
	}

	if len(ids) == 0 {
		log.Println("Cron Job: No appointments found past their end time.")
		return nil
	}

	log.Printf("Cron Job: Found %d appointments to mark as 'completed'. IDs: %v", len(ids), ids)

	if err := s.Repo.UpdateAppointmentStatuses(ids, "completed"); err != nil {
		return fmt.Errorf("cron job: failed to update appointment statuses: %w", err)
	}

	log.Printf("Cron Job: Successfully updated %d appointments to 'completed'.", len(ids))
	return nil
}

// SendTomorrowReminders emails and texts every client with an occupying
// appointment tomorrow.
func (s *JobService) SendTomorrowReminders() error {
	tomorrow := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	log.Printf("Cron Job: Sending reminders for appointments on %s...", tomorrow.Format("2006-01-02"))

	details, err := s.Repo.RemindersForDate(tomorrow)
	if err != nil {
		return fmt.Errorf("cron job: failed to load tomorrow's appointments: %w", err)
	}

	for _, detail := range details {
		s.Sender.SendAppointmentEmail(detail, "reminder")
		s.Sender.SendAppointmentSMS(detail, "reminder")
	}

	log.Printf("Cron Job: Queued reminders for %d appointments.", len(details))
	return nil
}
