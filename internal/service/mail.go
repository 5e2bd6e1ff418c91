package service

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

type passwordMail struct {
	subject string
	tmpl    *template.Template
}

var (
	setupMail = passwordMail{
		subject: "Account Setup - IT Division",
		tmpl: template.Must(template.New("setup").Parse(`
<h3>Welcome to the IT Asset Management System</h3>
<p>Hello {{.Name}},</p>
<p>Your account has been created. Please click the link below to set your password:</p>
<a href="{{.Link}}" style="padding: 10px 20px; background-color: #007bff; color: white; text-decoration: none; border-radius: 5px;">Set Password</a>
<p>Or copy this link: {{.Link}}</p>
<p>This link will expire in {{.Expires}}.</p>
`)),
	}

	resetMail = passwordMail{
		subject: "Password Reset - IT Division",
		tmpl: template.Must(template.New("reset").Parse(`
<h3>Password Reset Request</h3>
<p>Hello {{.Name}},</p>
<p>You requested a password reset. Please click the link below to reset your password:</p>
<a href="{{.Link}}" style="padding: 10px 20px; background-color: #007bff; color: white; text-decoration: none; border-radius: 5px;">Reset Password</a>
<p>Or copy this link: {{.Link}}</p>
<p>This link will expire in {{.Expires}}. If you did not request this, please ignore this email.</p>
`)),
	}
)

func (s *Service) passwordLink(token string) string {
	return strings.TrimRight(s.cfg.FrontendURL, "/") + "/set-password?token=" + url.QueryEscape(token)
}

func (s *Service) sendPasswordMail(m passwordMail, u entity.User, token string, ttl time.Duration) error {
	if u.Email == nil || *u.Email == "" {
		return fmt.Errorf("user %s has no email", u.Username)
	}

	var body bytes.Buffer

	err := m.tmpl.Execute(&body, struct {
		Name    string
		Link    string
		Expires string
	}{
		Name:    u.DisplayName(),
		Link:    s.passwordLink(token),
		Expires: humanizeHours(ttl.Hours()),
	})
	if err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	return s.mailer.SendMessage(m.subject, body.String(), []string{*u.Email}, "text/html")
}

func humanizeHours(h float64) string {
	if h == 1 {
		return "1 hour"
	}

	return fmt.Sprintf("%g hours", h)
}
