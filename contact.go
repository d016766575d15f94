package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"strings"

	"github.com/gin-gonic/gin"
)

var errSMTPNotConfigured = errors.New("SMTP credentials not configured")

type contactMessage struct {
	Name    string `json:"name" form:"name" binding:"required,max=200"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Message string `json:"message" form:"message" binding:"required,max=5000"`
}

type mailer interface {
	Send(msg contactMessage) error
}

type smtpMailer struct {
	host, port string
	user, pass string
	to         string
}

func newSMTPMailer(cfg serverConfig) *smtpMailer {
	return &smtpMailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		to:   cfg.ToEmail,
	}
}

func (m *smtpMailer) Send(msg contactMessage) error {
	if m.user == "" || m.pass == "" {
		return errSMTPNotConfigured
	}

	err := smtp.SendMail(m.host+":"+m.port,
		smtp.PlainAuth("", m.user, m.pass, m.host),
		m.user, []string{m.to}, composeContactEmail(msg, m.user, m.to))
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	return nil
}

func composeContactEmail(msg contactMessage, from, to string) []byte {
	// Header values come from the visitor; strip anything that could start
	// a new header line.
	clean := strings.NewReplacer("\r", " ", "\n", " ")
	subject := fmt.Sprintf(ContactSubject, clean.Replace(msg.Name))
	body := fmt.Sprintf(ContactBody, msg.Name, msg.Email, msg.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + clean.Replace(msg.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

func (s *server) handleContact(c *gin.Context) {
	var msg contactMessage
	if err := c.ShouldBind(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.mailer.Send(msg); err != nil {
		log.Printf("Error sending contact email: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": ContactFailure})
		return
	}

	log.Printf("Contact message sent for %s", hashIP(c.ClientIP(), s.salt))
	c.JSON(http.StatusOK, gin.H{"status": "sent", "message": ContactSuccess})
}
