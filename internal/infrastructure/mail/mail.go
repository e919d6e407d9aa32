package mail

import (
	"github.com/AsadUllahBilal/TechThrive/config"
	"github.com/AsadUllahBilal/TechThrive/pkg/utils"
	"gopkg.in/gomail.v2"
)

// Sender delivers messages through the configured SMTP server.
type Sender struct {
	config config.SMTPConfig
}

func CreateSender(config config.SMTPConfig) *Sender {
	return &Sender{config: config}
}

func (s *Sender) Send(message *gomail.Message) error {
	return utils.SendEmail(message, s.config.Sender, s.config.Password, s.config.Host, s.config.Port)
}
