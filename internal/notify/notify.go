// Package notify informs the site owner about new contact messages.
//
// Delivery is best effort: Dispatch runs the notifier in its own goroutine,
// failures are logged and counted but never reach the visitor.
package notify

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
)

const (
	resultSent   = "sent"
	resultFailed = "failed"
)

var notifications = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "contact_notifications_total",
		Help: "Number of contact notifications, differentiated by result.",
	},
	[]string{"result"},
)

// Notifier delivers the notification of one contact message.
type Notifier interface {
	NotifyContact(ctx context.Context, contact *models.Contact) error
}

// New returns the mail notifier when mail is enabled, a logging notifier otherwise.
func New(cfg *config.Config) Notifier {
	if cfg.Mail.Enabled {
		return NewMailNotifier(cfg.Mail, cfg.Title)
	}

	return LogNotifier{}
}

// Dispatch notifies in the background, bounded by timeout. The returned
// channel is closed when the attempt finished.
func Dispatch(n Notifier, timeout time.Duration, contact *models.Contact) <-chan struct{} {
	done := make(chan struct{})

	// the contact is copied, the caller keeps using its own value
	c := *contact

	go func() {
		defer close(done)

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := n.NotifyContact(ctx, &c); err != nil {
			notifications.WithLabelValues(resultFailed).Inc()
			log.Error().Err(err).Uint64("contact_id", c.ID).Msg("failed to send contact notification")

			return
		}

		notifications.WithLabelValues(resultSent).Inc()
	}()

	return done
}

// LogNotifier only logs new messages. It is used when no mail transport is configured.
type LogNotifier struct{}

// NotifyContact implements Notifier.
func (LogNotifier) NotifyContact(_ context.Context, contact *models.Contact) error {
	log.Info().
		Uint64("contact_id", contact.ID).
		Str("name", contact.Name).
		Str("email", contact.Email).
		Msg("new contact message")

	return nil
}
