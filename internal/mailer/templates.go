package mailer

import (
	"bytes"
	"embed"
	"fmt"
	htmltpl "html/template"
	"net/url"
	"strings"
	texttpl "text/template"

	"github.com/flarewebs/flarewebs-server/internal/model"
)

//go:embed templates/*
var templatesFS embed.FS

const (
	TemplateResetPassword = "reset_password"
	TemplateNewAccount    = "new_account"
	TemplateTestEmail     = "test_email"
)

type vars struct {
	ProjectName string
	Email       string
	Link        string
	ValidHours  int
}

// Composer renders outgoing messages.
type Composer struct {
	projectName string
	serverHost  string
	html        *htmltpl.Template
	text        *texttpl.Template
}

func NewComposer(projectName, serverHost string) (*Composer, error) {
	html, err := htmltpl.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse html templates: %w", err)
	}
	text, err := texttpl.ParseFS(templatesFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	return &Composer{
		projectName: projectName,
		serverHost:  strings.TrimRight(serverHost, "/"),
		html:        html,
		text:        text,
	}, nil
}

func (c *Composer) TestEmail(to string) (model.Mail, error) {
	subject := fmt.Sprintf("%s - Test email", c.projectName)
	return c.render(TemplateTestEmail, to, subject, vars{ProjectName: c.projectName, Email: to})
}

// ResetPassword links to <server host>/<uid>/reset-password.
func (c *Composer) ResetPassword(user model.User, token string, validHours int) (model.Mail, error) {
	subject := fmt.Sprintf("%s - Password recovery for user %s", c.projectName, user.Email)
	return c.render(TemplateResetPassword, user.Email, subject, vars{
		ProjectName: c.projectName,
		Email:       user.Email,
		Link:        c.link(user.ID, "reset-password", token),
		ValidHours:  validHours,
	})
}

// NewAccount links to <server host>/<uid>/activate-account.
func (c *Composer) NewAccount(user model.User, token string, validHours int) (model.Mail, error) {
	subject := fmt.Sprintf("Complete Your Registration for %s", c.projectName)
	return c.render(TemplateNewAccount, user.Email, subject, vars{
		ProjectName: c.projectName,
		Email:       user.Email,
		Link:        c.link(user.ID, "activate-account", token),
		ValidHours:  validHours,
	})
}

func (c *Composer) link(uid int64, page, token string) string {
	return fmt.Sprintf("%s/%d/%s?token=%s", c.serverHost, uid, page, url.QueryEscape(token))
}

func (c *Composer) render(name, to, subject string, v vars) (model.Mail, error) {
	var html, text bytes.Buffer
	if err := c.html.ExecuteTemplate(&html, name+".html", v); err != nil {
		return model.Mail{}, fmt.Errorf("failed to render %s html: %w", name, err)
	}
	if err := c.text.ExecuteTemplate(&text, name+".txt", v); err != nil {
		return model.Mail{}, fmt.Errorf("failed to render %s text: %w", name, err)
	}

	return model.Mail{
		To:      to,
		Subject: subject,
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
