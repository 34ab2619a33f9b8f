package mailer

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"
)

// Message is one rendered mail ready for a Transport.
type Message struct {
	From    string
	To      []string
	Bcc     []string
	Subject string
	HTML    string
}

type button struct {
	Text  string
	Link  string
	Color string
}

type view struct {
	Brand  Brand
	Title  string
	Year   int
	Button *button
	Data   any
}

// Composer renders the transactional mails into the branded layout.
type Composer struct {
	brand Brand
	now   func() time.Time
}

func NewComposer(brand Brand) *Composer {
	return &Composer{brand: brand, now: time.Now}
}

func (c *Composer) Brand() Brand { return c.brand }

func (c *Composer) render(kind, title string, btn *button, data any) (string, error) {
	t, ok := templates[kind]
	if !ok {
		return "", fmt.Errorf("mailer: unknown template %q", kind)
	}
	var buf bytes.Buffer
	err := t.ExecuteTemplate(&buf, "layout", view{
		Brand:  c.brand,
		Title:  title,
		Year:   c.now().Year(),
		Button: btn,
		Data:   data,
	})
	if err != nil {
		return "", fmt.Errorf("mailer: render %s: %w", kind, err)
	}
	return buf.String(), nil
}

func (c *Composer) orderLink(o entity.Order) string {
	return strings.TrimRight(c.brand.URL, "/") + "/orders/" + o.Ref()
}

func (c *Composer) Welcome(name, email string) (Message, error) {
	html, err := c.render("welcome", "Welcome Aboard!",
		&button{Text: "Browse Our Menu", Link: strings.TrimRight(c.brand.URL, "/") + "/menu", Color: c.brand.PrimaryColor},
		struct{ Name string }{name})
	if err != nil {
		return Message{}, err
	}
	return Message{
		From:    c.brand.From,
		To:      []string{email},
		Subject: "Welcome to " + c.brand.Name + "!",
		HTML:    html,
	}, nil
}

func (c *Composer) AdminNotify(adminEmail string, u entity.User) (Message, error) {
	html, err := c.render("admin_notify", "New Admin Registered", nil,
		struct{ Name, Email, Phone string }{u.FullName, u.Email, u.PhoneNumber})
	if err != nil {
		return Message{}, err
	}
	return Message{
		From:    c.brand.From,
		To:      []string{adminEmail},
		Subject: "New Admin Registration",
		HTML:    html,
	}, nil
}

func (c *Composer) OrderConfirmed(name, email string, o entity.Order) (Message, error) {
	html, err := c.render("order_confirmed", "Order Confirmation",
		&button{Text: "View Your Order", Link: c.orderLink(o), Color: c.brand.SuccessColor},
		struct {
			Name, Ref, Total string
			Pickup           entity.PickupSlot
		}{name, o.Ref(), o.TotalAmount.StringFixed(2), o.PickupSlot})
	if err != nil {
		return Message{}, err
	}
	return Message{
		From:    c.brand.From,
		To:      []string{email},
		Subject: "Order Confirmed - #" + o.Ref(),
		HTML:    html,
	}, nil
}

type statusCopy struct {
	title string
	line  string
	tone  string // primary | success | danger
}

var statusCopies = map[entity.OrderStatus]statusCopy{
	entity.OrderPending:   {"Order #%s is Pending", "Your order #%s is pending. We'll update you as soon as it moves along.", "primary"},
	entity.OrderConfirmed: {"Order #%s Confirmed", "Good news! Your order #%s has been confirmed and our kitchen is on it.", "success"},
	entity.OrderApproved:  {"Order #%s Approved", "Your order #%s has been approved.", "success"},
	entity.OrderReady:     {"Order #%s is Ready for Pickup", "Your order #%s is ready. Please come by during your pickup slot.", "success"},
	entity.OrderDeclined:  {"Order #%s Declined", "We regret to inform you that your order #%s has been declined.", "danger"},
}

func (c *Composer) tone(t string) string {
	switch t {
	case "success":
		return c.brand.SuccessColor
	case "danger":
		return c.brand.DangerColor
	}
	return c.brand.PrimaryColor
}

func (c *Composer) OrderStatusChanged(name, email string, o entity.Order) (Message, error) {
	cp, ok := statusCopies[o.Status]
	if !ok {
		return Message{}, fmt.Errorf("mailer: no template for status %q", o.Status)
	}
	title := fmt.Sprintf(cp.title, o.Ref())
	html, err := c.render("order_status", title,
		&button{Text: "View Order Details", Link: c.orderLink(o), Color: c.tone(cp.tone)},
		struct{ Name, Line string }{name, fmt.Sprintf(cp.line, o.Ref())})
	if err != nil {
		return Message{}, err
	}
	return Message{
		From:    c.brand.From,
		To:      []string{email},
		Subject: title,
		HTML:    html,
	}, nil
}

// Waitlist renders an admin-authored blast. Body is plain text; blank lines
// split paragraphs. Every recipient goes in Bcc.
func (c *Composer) Waitlist(recipients []string, subject, body string) (Message, error) {
	var paras []string
	for _, p := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paras = append(paras, p)
		}
	}
	html, err := c.render("waitlist", subject, nil, struct{ Paragraphs []string }{paras})
	if err != nil {
		return Message{}, err
	}
	return Message{
		From:    c.brand.From,
		Bcc:     recipients,
		Subject: subject,
		HTML:    html,
	}, nil
}
