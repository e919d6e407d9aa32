package service

import (
	"context"
	"testing"

	"github.com/AsadUllahBilal/TechThrive/config"
	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeMailSender struct {
	sent []*gomail.Message
	err  error
}

func (s *fakeMailSender) Send(message *gomail.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, message)
	return nil
}

func contactTestConfig() config.Config {
	return config.Config{
		SMTPConfig: config.SMTPConfig{
			Sender:           "noreply@techthrive.test",
			ContactRecipient: "support@techthrive.test",
		},
	}
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields are rejected before sending", func(t *testing.T) {
		cases := []dto.ContactRequest{
			{Email: "jo@example.com", Message: "hello"},
			{Name: "Jo", Message: "hello"},
			{Name: "Jo", Email: "jo@example.com"},
			{},
		}

		for _, payload := range cases {
			sender := &fakeMailSender{}
			svc := CreateContactService(sender, contactTestConfig())

			err := svc.SendMessage(ctx, payload)
			assert.ErrorIs(t, err, errs.ErrClient)
			assert.Empty(t, sender.sent)
		}
	})

	t.Run("valid message is delivered to the configured recipient", func(t *testing.T) {
		sender := &fakeMailSender{}
		svc := CreateContactService(sender, contactTestConfig())

		err := svc.SendMessage(ctx, dto.ContactRequest{
			Name:    "Jo",
			Email:   "jo@example.com",
			Message: "Where is my order?",
		})
		require.NoError(t, err)
		require.Len(t, sender.sent, 1)

		m := sender.sent[0]
		assert.Equal(t, []string{"support@techthrive.test"}, m.GetHeader("To"))
		assert.Equal(t, []string{"jo@example.com"}, m.GetHeader("Reply-To"))
		assert.Equal(t, []string{"New contact form message from Jo"}, m.GetHeader("Subject"))
	})

	t.Run("delivery failure surfaces as a server error", func(t *testing.T) {
		sender := &fakeMailSender{err: errStoreDown}
		svc := CreateContactService(sender, contactTestConfig())

		err := svc.SendMessage(ctx, dto.ContactRequest{
			Name:    "Jo",
			Email:   "jo@example.com",
			Message: "hello",
		})
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}
