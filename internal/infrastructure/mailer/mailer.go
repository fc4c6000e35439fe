package mailer

import (
	"fmt"

	"github.com/azor-ahai1/SwapSpace/config"
	"gopkg.in/gomail.v2"
)

// Mailer delivers transactional mail. The only message the platform sends
// today is the OTP code.
type Mailer interface {
	SendOTPEmail(to string, code string) error
}

type SMTPMailer struct {
	config config.SMTPConfig
}

func CreateSMTPMailer(config config.SMTPConfig) Mailer {
	return &SMTPMailer{config: config}
}

func (m *SMTPMailer) SendOTPEmail(to string, code string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", m.config.Sender)
	message.SetHeader("To", to)
	message.SetHeader("Subject", "Your SwapSpace verification code")
	message.SetBody("text/plain", fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code))

	d := gomail.NewDialer(m.config.Host, m.config.Port, m.config.Sender, m.config.Password)

	if err := d.DialAndSend(message); err != nil {
		return err
	}

	return nil
}
