package model

import "context"

// Mail is a rendered outgoing message.
type Mail struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer delivers mail.
type Mailer interface {
	Send(ctx context.Context, m Mail) error
}

// MailComposer renders the messages the service sends.
type MailComposer interface {
	TestEmail(to string) (Mail, error)
	ResetPassword(user User, token string, validHours int) (Mail, error)
	NewAccount(user User, token string, validHours int) (Mail, error)
}
