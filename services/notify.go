package services

import (
	"log/slog"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/mailer"
)

// Notifier queues outgoing mail; *mailer.Dispatcher in production.
type Notifier interface {
	Enqueue(m mailer.Message) error
}

// Publisher fans activity out to live admin dashboards; *ws.ActivityHub in production.
type Publisher interface {
	Publish(a entity.Activity)
}

type nopPublisher struct{}

func (nopPublisher) Publish(entity.Activity) {}

type nopNotifier struct{}

func (nopNotifier) Enqueue(mailer.Message) error { return nil }

// Side effects shared by the services. Mail failures never fail the request.
type effects struct {
	composer *mailer.Composer
	notifier Notifier
	events   Publisher
}

func newEffects(c *mailer.Composer, n Notifier, p Publisher) effects {
	if c == nil {
		c = mailer.NewComposer(mailer.DefaultBrand())
	}
	if n == nil {
		n = nopNotifier{}
	}
	if p == nil {
		p = nopPublisher{}
	}
	return effects{composer: c, notifier: n, events: p}
}

// send ส่งเมลแบบ fire-and-forget: render/enqueue พังแค่ log
func (e effects) send(kind string, m mailer.Message, err error) {
	if err == nil {
		err = e.notifier.Enqueue(m)
	}
	if err != nil {
		slog.Warn("mail not queued", "kind", kind, "error", err)
	}
}
