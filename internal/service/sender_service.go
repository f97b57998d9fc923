package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"

	"beautybooking/internal/entities"
	"beautybooking/internal/repository"
)

// SenderService turns appointment events into client notifications. Sends run
// in the background so the booking flow never waits on SendGrid or Twilio.
type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

func statusPhrase(status string) string {
	switch status {
	case "booked", "pending":
		return "has been received and is pending confirmation"
	case "confirmed":
		return "has been confirmed"
	case "cancelled":
		return "has been cancelled"
	case "completed":
		return "is completed. Thank you for visiting us"
	case "reminder":
		return "is coming up tomorrow"
	default:
		return "has been updated"
	}
}

func (s *SenderService) SendAppointmentEmail(detail repository.AppointmentDetail, status string) {
	emailData := entities.AppointmentEmailData{
		ClientName:    detail.Client.Name,
		ServiceName:   detail.Service.Name,
		DateFormatted: detail.Appointment.Date.Format("Monday, 02 Jan 2006"),
		TimeFormatted: detail.Appointment.StartTime.String(),
		Duration:      detail.Service.DurationMinutes,
		Price:         detail.Service.Price,
		Status:        statusPhrase(status),
		CurrentYear:   time.Now().Year(),
	}

	emailSubject := fmt.Sprintf("Your %s appointment %s", emailData.ServiceName, emailData.Status)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nYour appointment %s.\n\n"+
			"Appointment details:\n"+
			"Service: %s\n"+
			"Date: %s\n"+
			"Time: %s\n"+
			"Duration: %d minutes\n"+
			"Price: $%.2f\n\n"+
			"Thank you for choosing us.\n",
		emailData.ClientName, emailData.Status, emailData.ServiceName,
		emailData.DateFormatted, emailData.TimeFormatted, emailData.Duration, emailData.Price,
	)

	htmlBody := plainTextBody
	tmplPath := filepath.Join("internal", "templates", "appointment_email.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("Could not parse email template (%s): %v", tmplPath, err)
	} else {
		var htmlBodyBuffer bytes.Buffer
		if err := tmpl.Execute(&htmlBodyBuffer, emailData); err != nil {
			log.Printf("Could not render email template for appointment %s: %v", detail.Appointment.ID, err)
		} else {
			htmlBody = htmlBodyBuffer.String()
		}
	}

	go func(toEmail, toName, subject, plainBody, htmlBodyContent string) {
		if err := SendEmailWithSendGrid(toEmail, toName, subject, plainBody, htmlBodyContent); err != nil {
			log.Printf("Email delivery failed for appointment %s: %v", detail.Appointment.ID, err)
		}
	}(detail.Client.Email, emailData.ClientName, emailSubject, plainTextBody, htmlBody)
}

func (s *SenderService) SendAppointmentSMS(detail repository.AppointmentDetail, status string) {
	if detail.Client.Phone == "" {
		return
	}

	smsMessage := fmt.Sprintf("Beauty Salon: your %s appointment on %s at %s %s.",
		detail.Service.Name,
		detail.Appointment.Date.Format("02/01"),
		detail.Appointment.StartTime.String(),
		statusPhrase(status),
	)

	go func(toNumber, body string) {
		if err := SendSMS(toNumber, body); err != nil {
			log.Printf("SMS delivery failed for appointment %s: %v", detail.Appointment.ID, err)
		}
	}(detail.Client.Phone, smsMessage)
}
