package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	mail "github.com/go-mail/mail"

	"github.com/flarewebs/flarewebs-server/internal/config"
	"github.com/flarewebs/flarewebs-server/internal/logger"
	"github.com/flarewebs/flarewebs-server/internal/model"
)

const (
	TLSModeAuto     = "auto"
	TLSModeStartTLS = "starttls"
	TLSModeSSL      = "ssl"
	TLSModeNone     = "none"
)

var (
	_ model.Mailer = (*SMTPSender)(nil)
	_ model.Mailer = (*LogSender)(nil)
)

// New returns an SMTP sender, or a log-only sender when no SMTP host is configured.
func New(cfg config.SMTP, l *logger.Logger) model.Mailer {
	if cfg.Host == "" {
		return NewLogSender(l)
	}
	return NewSMTPSender(cfg, l)
}

type SMTPSender struct {
	host      string
	port      int
	user      string
	password  string
	tlsMode   string
	fromEmail string
	fromName  string
	timeout   time.Duration
	logger    *logger.Logger
}

func NewSMTPSender(cfg config.SMTP, l *logger.Logger) *SMTPSender {
	mode := cfg.TLSMode
	if mode == "" {
		mode = TLSModeAuto
	}
	return &SMTPSender{
		host:      cfg.Host,
		port:      cfg.Port,
		user:      cfg.User,
		password:  cfg.Password,
		tlsMode:   mode,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		timeout:   10 * time.Second,
		logger:    l,
	}
}

func (s *SMTPSender) dialer() *mail.Dialer {
	d := mail.NewDialer(s.host, s.port, s.user, s.password)
	d.Timeout = s.timeout
	d.TLSConfig = &tls.Config{ServerName: s.host}

	switch s.tlsMode {
	case TLSModeSSL:
		d.SSL = true
	case TLSModeStartTLS:
		d.StartTLSPolicy = mail.MandatoryStartTLS
	case TLSModeNone:
		d.StartTLSPolicy = mail.NoStartTLS
	default:
		d.StartTLSPolicy = mail.OpportunisticStartTLS
	}
	return d
}

func (s *SMTPSender) Send(ctx context.Context, m model.Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := mail.NewMessage()
	msg.SetAddressHeader("From", s.fromEmail, s.fromName)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", m.Subject)

	switch {
	case m.Text != "" && m.HTML != "":
		msg.SetBody("text/plain", m.Text)
		msg.AddAlternative("text/html", m.HTML)
	case m.HTML != "":
		msg.SetBody("text/html", m.HTML)
	default:
		msg.SetBody("text/plain", m.Text)
	}

	s.logger.Debug("Mailer: sending", "to", m.To, "subject", m.Subject, "tls_mode", s.tlsMode)
	if err := s.dialer().DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	s.logger.Info("Mailer: sent", "to", m.To)

	return nil
}

// LogSender writes messages to the log instead of delivering them.
type LogSender struct {
	logger *logger.Logger
}

func NewLogSender(l *logger.Logger) *LogSender {
	return &LogSender{logger: l}
}

func (s *LogSender) Send(_ context.Context, m model.Mail) error {
	s.logger.Info("Mailer: delivery disabled, dropping message", "to", m.To, "subject", m.Subject, "text", m.Text)
	return nil
}
