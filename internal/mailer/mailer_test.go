package mailer

import (
	"context"
	"testing"
	"time"

	mail "github.com/go-mail/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flarewebs/flarewebs-server/internal/config"
	"github.com/flarewebs/flarewebs-server/internal/model"
	"github.com/flarewebs/flarewebs-server/internal/testutil"
)

func newComposer(t *testing.T) *Composer {
	t.Helper()
	c, err := NewComposer("flarewebs", "https://app.example.com/")
	require.NoError(t, err)
	return c
}

func TestComposer_ResetPassword(t *testing.T) {
	c := newComposer(t)

	m, err := c.ResetPassword(model.User{ID: 7, Email: "bob@example.com"}, "tok.en", 48)
	require.NoError(t, err)

	assert.Equal(t, "bob@example.com", m.To)
	assert.Equal(t, "flarewebs - Password recovery for user bob@example.com", m.Subject)
	assert.Contains(t, m.HTML, `href="https://app.example.com/7/reset-password?token=tok.en"`)
	assert.Contains(t, m.Text, "https://app.example.com/7/reset-password?token=tok.en")
	assert.Contains(t, m.Text, "48 hours")
}

func TestComposer_NewAccount(t *testing.T) {
	c := newComposer(t)

	m, err := c.NewAccount(model.User{ID: 3, Email: "ann@example.com"}, "abc", 48)
	require.NoError(t, err)

	assert.Equal(t, "Complete Your Registration for flarewebs", m.Subject)
	assert.Contains(t, m.Text, "https://app.example.com/3/activate-account?token=abc")
	assert.Contains(t, m.HTML, "ann@example.com")
}

func TestComposer_TestEmail(t *testing.T) {
	c := newComposer(t)

	m, err := c.TestEmail("ops@example.com")
	require.NoError(t, err)

	assert.Equal(t, "flarewebs - Test email", m.Subject)
	assert.Contains(t, m.Text, "ops@example.com")
}

func TestComposer_EscapesHTML(t *testing.T) {
	c := newComposer(t)

	m, err := c.ResetPassword(model.User{ID: 1, Email: "<script>@example.com"}, "t", 1)
	require.NoError(t, err)

	assert.NotContains(t, m.HTML, "<script>")
	assert.Contains(t, m.HTML, "&lt;script&gt;")
}

func TestNew(t *testing.T) {
	l := testutil.MakeNoopLogger()

	assert.IsType(t, &LogSender{}, New(config.SMTP{}, l))
	assert.IsType(t, &SMTPSender{}, New(config.SMTP{Host: "smtp.example.com", Port: 587}, l))
}

func TestLogSender(t *testing.T) {
	s := NewLogSender(testutil.MakeNoopLogger())
	assert.NoError(t, s.Send(context.Background(), model.Mail{To: "a@b.com"}))
}

func TestSMTPSender_Dialer(t *testing.T) {
	tests := []struct {
		mode   string
		ssl    bool
		policy mail.StartTLSPolicy
	}{
		{mode: TLSModeSSL, ssl: true, policy: mail.OpportunisticStartTLS},
		{mode: TLSModeStartTLS, policy: mail.MandatoryStartTLS},
		{mode: TLSModeAuto, policy: mail.OpportunisticStartTLS},
		{mode: TLSModeNone, policy: mail.NoStartTLS},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			s := NewSMTPSender(config.SMTP{Host: "smtp.example.com", Port: 465, TLSMode: tt.mode}, testutil.MakeNoopLogger())
			d := s.dialer()
			assert.Equal(t, tt.ssl, d.SSL)
			assert.Equal(t, tt.policy, d.StartTLSPolicy)
			assert.Equal(t, "smtp.example.com", d.TLSConfig.ServerName)
		})
	}
}

func TestSMTPSender_SendFails(t *testing.T) {
	s := NewSMTPSender(config.SMTP{Host: "127.0.0.1", Port: 1, TLSMode: TLSModeNone}, testutil.MakeNoopLogger())
	s.timeout = 200 * time.Millisecond

	err := s.Send(context.Background(), model.Mail{To: "a@b.com", Subject: "s", Text: "t"})
	assert.ErrorContains(t, err, "smtp send")
}

func TestSMTPSender_CanceledContext(t *testing.T) {
	s := NewSMTPSender(config.SMTP{Host: "127.0.0.1", Port: 1}, testutil.MakeNoopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Send(ctx, model.Mail{To: "a@b.com"}), context.Canceled)
}
