package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPNotifier sends plain-text mail through a single SMTP relay.
type SMTPNotifier struct {
	Addr string // host:port of the relay
	From string
	Auth smtp.Auth // nil for unauthenticated relays
}

func NewSMTPNotifier(addr, from, username, password string) *SMTPNotifier {
	n := &SMTPNotifier{Addr: addr, From: from}
	if username != "" {
		host := addr
		if i := strings.IndexByte(addr, ':'); i >= 0 {
			host = addr[:i]
		}
		n.Auth = smtp.PlainAuth("", username, password, host)
	}
	return n
}

// GradePosted mails the student their new grade. net/smtp has no context
// support; the ctx parameter is accepted for interface symmetry and
// cancellation is bounded by the SMTP dial timeout of the platform.
func (n *SMTPNotifier) GradePosted(ctx context.Context, notice GradeNotice) error {
	subject := "Grade Update"
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nA grade was posted for course %d: %s\r\n",
		notice.StudentName, notice.CourseID, notice.Grade,
	)

	msg := strings.Join([]string{
		"From: " + n.From,
		"To: " + notice.StudentEmail,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(n.Addr, n.Auth, n.From, []string{notice.StudentEmail}, []byte(msg)); err != nil {
		return fmt.Errorf("notify: send grade mail: %w", err)
	}
	return nil
}
