package service

import (
	"context"
	"fmt"

	"github.com/AsadUllahBilal/TechThrive/config"
	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

type ContactServiceImpl struct {
	sender MailSender
	config config.Config
}

func CreateContactService(sender MailSender, config config.Config) ContactService {
	return &ContactServiceImpl{
		sender: sender,
		config: config,
	}
}

func (s *ContactServiceImpl) SendMessage(ctx context.Context, data dto.ContactRequest) (err error) {
	if data.Name == "" || data.Email == "" || data.Message == "" {
		return errs.ErrClient
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.config.SMTPConfig.Sender)
	m.SetHeader("To", s.config.SMTPConfig.ContactRecipient)
	m.SetHeader("Reply-To", data.Email)
	m.SetHeader("Subject", fmt.Sprintf("New contact form message from %s", data.Name))
	m.SetBody("text/plain", fmt.Sprintf("Name: %s\nEmail: %s\n\n%s\n", data.Name, data.Email, data.Message))

	if err = s.sender.Send(m); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SendMessage").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}
