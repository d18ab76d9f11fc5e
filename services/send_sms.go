package services

import (
	"context"
	"fmt"

	"github.com/abdhesh369/my-portfolio/models"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// smsPreviewLength caps how much of the message body goes into the text.
const smsPreviewLength = 140

// sendSMSFunc delivers one text and returns the provider's message id.
type sendSMSFunc func(to, from, body string) (string, error)

// SMSNotifier texts a short preview of each contact message through Twilio.
type SMSNotifier struct {
	From string
	To   string
	send sendSMSFunc
}

func NewSMSNotifier(accountSID, authToken, from, to string) *SMSNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &SMSNotifier{
		From: from,
		To:   to,
		send: func(to, from, body string) (string, error) {
			params := &twilioApi.CreateMessageParams{}
			params.SetTo(to)
			params.SetFrom(from)
			params.SetBody(body)

			resp, err := client.Api.CreateMessage(params)
			if err != nil {
				return "", err
			}
			if resp.Sid == nil {
				return "", nil
			}
			return *resp.Sid, nil
		},
	}
}

func (n *SMSNotifier) Channel() string {
	return "sms"
}

// NotifyContactMessage sends the text. The Twilio client has no context
// support, so ctx is only checked before the call.
func (n *SMSNotifier) NotifyContactMessage(ctx context.Context, message models.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n.From == "" || n.To == "" {
		return fmt.Errorf("sms sender and recipient numbers are required")
	}

	sid, err := n.send(n.To, n.From, contactSMSBody(message))
	if err != nil {
		return fmt.Errorf("failed to send sms via Twilio: %w", err)
	}
	log.Info().Str("messageSid", sid).Msg("Successfully sent sms via Twilio")
	return nil
}

func contactSMSBody(message models.Message) string {
	preview := []rune(message.Message)
	if len(preview) > smsPreviewLength {
		preview = append(preview[:smsPreviewLength], []rune("...")...)
	}
	return fmt.Sprintf("Portfolio message from %s <%s>: %s", message.Name, message.Email, string(preview))
}
