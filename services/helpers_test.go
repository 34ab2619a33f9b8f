package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/apperr"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/mailer"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNotifier struct {
	mu   sync.Mutex
	msgs []mailer.Message
	err  error
}

func (f *fakeNotifier) Enqueue(m mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, m)
	return nil
}

func (f *fakeNotifier) sent() []mailer.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]mailer.Message(nil), f.msgs...)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []entity.Activity
}

func (f *fakePublisher) Publish(a entity.Activity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, a)
}

func (f *fakePublisher) all() []entity.Activity {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.Activity(nil), f.events...)
}

var errQueue = errors.New("queue full")

func seedUser(t *testing.T, db *gorm.DB, u entity.User) *entity.User {
	t.Helper()
	if u.Password == "" {
		u.Password = "not-a-real-hash"
	}
	if u.Role == "" {
		u.Role = entity.RoleUser
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string) *entity.Product {
	t.Helper()
	p := entity.Product{
		ProductName: name,
		Description: name + " plate",
		Price:       decimal.RequireFromString(price),
		Images:      []string{"/uploads/" + name + ".jpg"},
	}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func requireKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, apperr.KindOf(err), "error: %v", err)
}
