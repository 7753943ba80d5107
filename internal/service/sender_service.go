package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"

	"autorent/internal/db"
	"autorent/internal/entities"
)

// SenderService turns reservation events into email and SMS notices.
// Everything here is best-effort: a booking is never rolled back because a
// message could not be delivered.
type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

// SendReservationNotices emails the renter and, when a phone number is on
// file, also texts them. Delivery runs in the background.
func (s *SenderService) SendReservationNotices(user db.User, vehicleName string, res entities.ReservationResponse, status string) {
	emailData := entities.ReservationEmailData{
		UserName:      user.Username,
		VehicleName:   vehicleName,
		StartDate:     res.StartDate,
		EndDate:       res.EndDate,
		CostFormatted: fmt.Sprintf("$%.2f", float64(res.CostCents)/100),
		Status:        status,
		CurrentYear:   time.Now().Year(),
	}

	emailSubject := fmt.Sprintf("Your AutoRent reservation is %s - %s", status, vehicleName)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nYour reservation at AutoRent is %s.\n\n"+
			"Reservation Details:\n"+
			"Vehicle: %s\n"+
			"Pick-up: %s\n"+
			"Return: %s\n"+
			"Total: %s\n\n"+
			"Thank you for choosing AutoRent.\n\n"+
			"AutoRent %d. All rights reserved.",
		emailData.UserName, status, emailData.VehicleName,
		emailData.StartDate, emailData.EndDate, emailData.CostFormatted,
		emailData.CurrentYear,
	)

	htmlBody := ""
	tmplPath := filepath.Join("internal", "templates", "reservation_email.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("could not parse email template (%s), falling back to plain text: %v", tmplPath, err)
	} else {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, emailData); err != nil {
			log.Printf("could not render email template for reservation %d: %v", res.ID, err)
		} else {
			htmlBody = buf.String()
		}
	}

	go func() {
		if err := SendEmailWithSendGrid(user.Email, user.Username, emailSubject, plainTextBody, htmlBody); err != nil {
			log.Printf("email for reservation %d failed: %v", res.ID, err)
		}
	}()

	if user.Phone == "" {
		return
	}
	smsMessage := fmt.Sprintf("AutoRent: your reservation for %s is %s!\nPick-up: %s.\nMore details in your email.",
		vehicleName, status, res.StartDate)
	go func() {
		if err := SendSMS(user.Phone, smsMessage); err != nil {
			log.Printf("reservation %d is %s, but the SMS to %s failed: %v", res.ID, status, user.Phone, err)
		}
	}()
}

// SendPickupReminder is the day-before nudge sent by the scheduled job.
func (s *SenderService) SendPickupReminder(toEmail, userName, vehicleName string, startDate time.Time) {
	subject := fmt.Sprintf("Reminder: your %s pick-up is tomorrow", vehicleName)
	body := fmt.Sprintf(
		"Hello %s,\n\nA reminder that your reservation for %s starts tomorrow, %s.\n\n"+
			"Thank you for choosing AutoRent.",
		userName, vehicleName, startDate.Format("02 Jan 2006"),
	)
	go func() {
		if err := SendEmailWithSendGrid(toEmail, userName, subject, body, ""); err != nil {
			log.Printf("pickup reminder to %s failed: %v", toEmail, err)
		}
	}()
}
