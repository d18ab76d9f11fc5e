package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/abdhesh369/my-portfolio/config"
	"github.com/abdhesh369/my-portfolio/models"
	"github.com/rs/zerolog/log"
)

// Notifier is one delivery channel for contact messages.
type Notifier interface {
	Channel() string
	NotifyContactMessage(ctx context.Context, message models.Message) error
}

// NotificationObserver records the outcome of each delivery attempt.
type NotificationObserver interface {
	ObserveNotification(channel string, err error)
}

// MultiNotifier fans a contact message out to every configured channel. A
// failing channel does not stop the others.
type MultiNotifier struct {
	notifiers []Notifier
	observer  NotificationObserver
}

func NewMultiNotifier(observer NotificationObserver, notifiers ...Notifier) *MultiNotifier {
	return &MultiNotifier{notifiers: notifiers, observer: observer}
}

func (m *MultiNotifier) Channels() []string {
	channels := make([]string, 0, len(m.notifiers))
	for _, n := range m.notifiers {
		channels = append(channels, n.Channel())
	}
	return channels
}

// NotifyContactMessage returns a combined error naming every failed channel.
func (m *MultiNotifier) NotifyContactMessage(ctx context.Context, message models.Message) error {
	if m == nil {
		return nil
	}

	var failures []string
	var successes []string

	for _, n := range m.notifiers {
		err := n.NotifyContactMessage(ctx, message)
		if m.observer != nil {
			m.observer.ObserveNotification(n.Channel(), err)
		}
		if err != nil {
			log.Error().Err(err).Str("channel", n.Channel()).Int("messageID", message.ID).Msg("Failed to deliver contact notification")
			failures = append(failures, fmt.Sprintf("%s: %v", n.Channel(), err))
			continue
		}
		successes = append(successes, n.Channel())
	}

	if len(successes) > 0 {
		log.Info().Strs("channels", successes).Int("messageID", message.ID).Msg("Delivered contact notification")
	}
	if len(failures) > 0 {
		return fmt.Errorf("some channels failed: %s", strings.Join(failures, "; "))
	}
	return nil
}

// FromConfig builds a notifier for every channel whose settings are present.
// It returns nil when nothing is configured.
func FromConfig(cfg map[string]string, observer NotificationObserver) *MultiNotifier {
	var notifiers []Notifier

	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	fromEmail := config.GetString(cfg, "RESEND_FROM_EMAIL", "")
	recipients := config.GetList(cfg, "CONTACT_NOTIFY_EMAIL", nil)
	switch {
	case apiKey != "" && fromEmail != "" && len(recipients) > 0:
		notifiers = append(notifiers, &EmailNotifier{
			APIKey:     apiKey,
			From:       fromEmail,
			Recipients: recipients,
			BaseURL:    config.GetString(cfg, "RESEND_BASE_URL", DefaultResendBaseURL),
		})
	case apiKey != "" || len(recipients) > 0:
		log.Warn().Msg("Email notifications disabled: RESEND_API_KEY, RESEND_FROM_EMAIL and CONTACT_NOTIFY_EMAIL are all required")
	}

	accountSID := config.GetString(cfg, "TWILIO_ACCOUNT_SID", "")
	authToken := config.GetString(cfg, "TWILIO_AUTH_TOKEN", "")
	fromNumber := config.GetString(cfg, "TWILIO_FROM_NUMBER", "")
	toNumber := config.GetString(cfg, "CONTACT_NOTIFY_PHONE", "")
	switch {
	case accountSID != "" && authToken != "" && fromNumber != "" && toNumber != "":
		notifiers = append(notifiers, NewSMSNotifier(accountSID, authToken, fromNumber, toNumber))
	case accountSID != "" || toNumber != "":
		log.Warn().Msg("SMS notifications disabled: TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN, TWILIO_FROM_NUMBER and CONTACT_NOTIFY_PHONE are all required")
	}

	if len(notifiers) == 0 {
		return nil
	}
	return NewMultiNotifier(observer, notifiers...)
}
