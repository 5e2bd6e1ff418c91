package mailer

import (
	"crypto/tls"
	"errors"
	"fmt"
	"regexp"

	"gopkg.in/gomail.v2"

	"github.com/Surajsachintha/itams-haci-project/pkg/config"
)

const (
	ContentTypeHTML  = "text/html"
	ContentTypePlain = "text/plain"
)

var ErrNotConfigured = errors.New("mailer is not configured")

var htmlRe = regexp.MustCompile("<[^>]+>")

type Client struct {
	cfg    config.MailerConfig
	dialer *gomail.Dialer
}

func New(cfg config.MailerConfig) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &Client{
		cfg:    cfg,
		dialer: dialer,
	}
}

// SendMessage sends one message to every recipient. An empty contentType picks html or plain from the body.
func (c *Client) SendMessage(subject, message string, recipients []string, contentType string) error {
	if c.cfg.Host == "" {
		return ErrNotConfigured
	}

	if len(recipients) == 0 {
		return errors.New("no recipients")
	}

	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.cfg.From, c.cfg.FromName)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody(resolveContentType(contentType, message), message)

	err := c.dialer.DialAndSend(msg)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func resolveContentType(contentType, message string) string {
	switch contentType {
	case ContentTypeHTML, ContentTypePlain:
		return contentType
	default:
		if htmlRe.MatchString(message) {
			return ContentTypeHTML
		}

		return ContentTypePlain
	}
}
