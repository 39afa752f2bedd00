package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
	"time"
)

type ItfSmtp interface {
	SendBookingConfirmation(userEmail string, guestName string, roomName string, checkIn time.Time, checkOut time.Time) error
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
	host string
	addr string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	auth := smtpPkg.PlainAuth("", mail, password, host)

	return &smtp{
		auth: auth,
		mail: mail,
		host: host,
		addr: fmt.Sprintf("%s:587", host),
	}
}

func (s *smtp) SendBookingConfirmation(userEmail string, guestName string, roomName string, checkIn time.Time, checkOut time.Time) error {
	to := []string{userEmail}

	message := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: Booking received\r\n\r\nHello %s, we received your booking for %s from %s to %s. Your booking is pending confirmation by our staff.",
		userEmail, guestName, roomName,
		checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02")))

	if err := smtpPkg.SendMail(s.addr, s.auth, s.mail, to, message); err != nil {
		return err
	}

	return nil
}
