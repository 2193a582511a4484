package mail

import (
	"context"
	"log"
	"os"
	"strconv"

	"maison_brioche/internal/usecase/interfaces"

	gomail "gopkg.in/gomail.v2"
)

// GomailSender delivers transactional mail over SMTP.
//
// Env:
//   - SMTP_HOST (default: localhost)
//   - SMTP_PORT (default: 587)
//   - SMTP_USER, SMTP_PASSWORD
//   - SMTP_FROM (default: SMTP_USER)

type GomailSender struct {
	host     string
	port     int
	user     string
	password string
	from     string
}

var _ interfaces.IEmailSender = (*GomailSender)(nil)

func NewGomailSender() *GomailSender {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "localhost"
	}
	port := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			port = n
		}
	}
	user := os.Getenv("SMTP_USER")
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = user
	}
	return &GomailSender{
		host:     host,
		port:     port,
		user:     user,
		password: os.Getenv("SMTP_PASSWORD"),
		from:     from,
	}
}

func (s *GomailSender) Send(ctx context.Context, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.host, s.port, s.user, s.password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("[mail][smtp] send failed to=%s err=%v", to, err)
		return err
	}
	log.Printf("[mail][smtp] sent to=%s subject=%q", to, subject)
	return nil
}
