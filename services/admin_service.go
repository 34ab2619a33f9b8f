package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/apperr"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/mailer"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/repository"
)

const recentLimit = 5

type AdminService struct {
	userRepo     *repository.UserRepository
	orderRepo    *repository.OrderRepository
	waitlistRepo *repository.WaitlistRepository
	fx           effects
	now          func() time.Time
}

func NewAdminService(
	users *repository.UserRepository,
	orders *repository.OrderRepository,
	waitlist *repository.WaitlistRepository,
	composer *mailer.Composer,
	notifier Notifier,
) *AdminService {
	return &AdminService{
		userRepo:     users,
		orderRepo:    orders,
		waitlistRepo: waitlist,
		fx:           newEffects(composer, notifier, nil),
		now:          time.Now,
	}
}

// WithClock swaps the clock used for "today".
func (s *AdminService) WithClock(now func() time.Time) *AdminService {
	s.now = now
	return s
}

type DashboardStats struct {
	PendingOrders     int64 `json:"pendingOrders"`
	NewCustomersToday int64 `json:"newCustomersToday"`
}

// DashboardStats counts pending orders and customers created since local midnight.
func (s *AdminService) DashboardStats(ctx context.Context) (DashboardStats, error) {
	pending, err := s.orderRepo.CountByStatus(ctx, entity.OrderPending)
	if err != nil {
		return DashboardStats{}, apperr.Internal(err)
	}

	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	fresh, err := s.userRepo.CountCreatedBetween(ctx, entity.RoleUser, start, start.AddDate(0, 0, 1))
	if err != nil {
		return DashboardStats{}, apperr.Internal(err)
	}
	return DashboardStats{PendingOrders: pending, NewCustomersToday: fresh}, nil
}

// RecentActivity merges the newest users and orders and keeps the newest five.
func (s *AdminService) RecentActivity(ctx context.Context) ([]entity.Activity, error) {
	users, err := s.userRepo.Recent(ctx, recentLimit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	orders, err := s.orderRepo.Recent(ctx, recentLimit)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	feed := make([]entity.Activity, 0, len(users)+len(orders))
	for _, u := range users {
		feed = append(feed, entity.Activity{
			Type:      entity.ActivityUser,
			Title:     "New user registered: " + u.FullName,
			Timestamp: u.CreatedAt,
		})
	}
	for _, o := range orders {
		feed = append(feed, entity.Activity{
			Type:      entity.ActivityOrder,
			Title:     "New order placed: " + o.Ref(),
			Timestamp: o.CreatedAt,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool { return feed[i].Timestamp.After(feed[j].Timestamp) })
	if len(feed) > recentLimit {
		feed = feed[:recentLimit]
	}
	return feed, nil
}

// SendWaitlistEmail queues one blast with every waitlist address in Bcc and
// returns the recipient count. Delivery itself is not awaited.
func (s *AdminService) SendWaitlistEmail(ctx context.Context, subject, body string) (int, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" || strings.TrimSpace(body) == "" {
		return 0, apperr.Validation("Subject and body are required")
	}

	emails, err := s.waitlistRepo.Emails(ctx)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	if len(emails) == 0 {
		return 0, apperr.NotFound("No one on the waitlist yet")
	}

	m, err := s.fx.composer.Waitlist(emails, subject, body)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	if err := s.fx.notifier.Enqueue(m); err != nil {
		return 0, apperr.Internal(fmt.Errorf("queue waitlist blast: %w", err))
	}
	return len(emails), nil
}

// Users lists customers only, without password hashes.
func (s *AdminService) Users(ctx context.Context) ([]entity.User, error) {
	users, err := s.userRepo.ListByRole(ctx, entity.RoleUser)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return users, nil
}

func (s *AdminService) Waitlist(ctx context.Context) ([]entity.WaitlistEntry, error) {
	entries, err := s.waitlistRepo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return entries, nil
}
