package notify

import (
	"context"
	"html/template"
	"time"

	"github.com/pkg/errors"
	"github.com/wneessen/go-mail"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
)

const (
	defaultPort    = 587
	defaultTimeout = 10 * time.Second
)

var contactTemplate = template.Must(template.New("contact").Parse(`<h3>New Contact Form Submission</h3>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
`))

// MailNotifier sends an HTML mail over SMTP for every contact message.
type MailNotifier struct {
	cfg   config.Mail
	title string
}

// NewMailNotifier creates a notifier for the given transport settings.
func NewMailNotifier(cfg config.Mail, title string) *MailNotifier {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &MailNotifier{cfg: cfg, title: title}
}

// Message builds the notification mail of a contact message.
func (n *MailNotifier) Message(contact *models.Contact) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.From(n.cfg.From); err != nil {
		return nil, errors.Wrap(err, "invalid sender")
	}

	if err := msg.To(n.cfg.To); err != nil {
		return nil, errors.Wrap(err, "invalid recipient")
	}

	// replies go straight to the visitor
	if err := msg.ReplyTo(contact.Email); err != nil {
		return nil, errors.Wrap(err, "invalid reply-to")
	}

	msg.Subject("New Portfolio Contact: " + contact.Name)

	if err := msg.SetBodyHTMLTemplate(contactTemplate, contact); err != nil {
		return nil, errors.Wrap(err, "failed to render mail body")
	}

	if n.title != "" {
		msg.SetGenHeader(mail.HeaderXMailer, n.title)
	}

	return msg, nil
}

// NotifyContact implements Notifier.
func (n *MailNotifier) NotifyContact(ctx context.Context, contact *models.Contact) error {
	msg, err := n.Message(contact)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(n.cfg.Host,
		mail.WithPort(n.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(n.cfg.Username),
		mail.WithPassword(n.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(n.cfg.Timeout),
	)
	if err != nil {
		return errors.Wrap(err, "failed to create mail client")
	}

	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}
