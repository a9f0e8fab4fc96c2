package notify

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
)

type recordingNotifier struct {
	mu       sync.Mutex
	contacts []models.Contact
	deadline bool
	err      error
}

func (r *recordingNotifier) NotifyContact(ctx context.Context, contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, r.deadline = ctx.Deadline()
	r.contacts = append(r.contacts, *contact)

	return r.err
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("notification did not finish")
	}
}

func TestNew(t *testing.T) {
	assert.IsType(t, LogNotifier{}, New(&config.Config{}))
	assert.IsType(t, &MailNotifier{}, New(&config.Config{Mail: config.Mail{Enabled: true}}))
}

func TestDispatch(t *testing.T) {
	n := &recordingNotifier{}
	contact := &models.Contact{ID: 1, Name: "A", Email: "a@x.com", Message: "hi"}

	before := promtest.ToFloat64(notifications.WithLabelValues(resultSent))

	waitDone(t, Dispatch(n, time.Second, contact))

	require.Len(t, n.contacts, 1)
	assert.Equal(t, *contact, n.contacts[0])
	assert.True(t, n.deadline, "notification should run with a deadline")
	assert.Equal(t, before+1, promtest.ToFloat64(notifications.WithLabelValues(resultSent)))
}

func TestDispatchFailureIsCounted(t *testing.T) {
	n := &recordingNotifier{err: errors.New("smtp down")}

	before := promtest.ToFloat64(notifications.WithLabelValues(resultFailed))

	waitDone(t, Dispatch(n, time.Second, &models.Contact{ID: 2}))

	assert.Equal(t, before+1, promtest.ToFloat64(notifications.WithLabelValues(resultFailed)))
}

func TestLogNotifier(t *testing.T) {
	assert.NoError(t, LogNotifier{}.NotifyContact(context.Background(), &models.Contact{ID: 1}))
}

func TestMailNotifierMessage(t *testing.T) {
	n := NewMailNotifier(config.Mail{From: "site@example.com", To: "owner@example.com"}, "Portfolio")

	msg, err := n.Message(&models.Contact{Name: "A <b>", Email: "a@x.com", Message: "hi"})
	require.NoError(t, err)

	assert.Equal(t, []string{"<owner@example.com>"}, msg.GetToString())
	assert.Equal(t, []string{"New Portfolio Contact: A <b>"}, msg.GetGenHeader(mail.HeaderSubject))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "A &lt;b&gt;")
	assert.NotContains(t, buf.String(), "<strong>Name:</strong> A <b>")
}

func TestMailNotifierMessageInvalidAddress(t *testing.T) {
	n := NewMailNotifier(config.Mail{From: "not an address", To: "owner@example.com"}, "")

	_, err := n.Message(&models.Contact{Email: "a@x.com"})
	assert.Error(t, err)
}

func TestMailNotifierDefaults(t *testing.T) {
	n := NewMailNotifier(config.Mail{}, "")
	assert.Equal(t, defaultPort, n.cfg.Port)
	assert.Equal(t, defaultTimeout, n.cfg.Timeout)
}

func TestMailNotifierUnreachable(t *testing.T) {
	n := NewMailNotifier(config.Mail{
		Host:    "127.0.0.1",
		Port:    1,
		From:    "site@example.com",
		To:      "owner@example.com",
		Timeout: time.Second,
	}, "")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := n.NotifyContact(ctx, &models.Contact{Name: "A", Email: "a@x.com", Message: "hi"})
	assert.Error(t, err)
}
