package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/apperr"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/mailer"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	SeqRepo  *repository.SequenceRepository
	UserRepo *repository.UserRepository
	fx       effects
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	seqRepo *repository.SequenceRepository,
	userRepo *repository.UserRepository,
	composer *mailer.Composer,
	notifier Notifier,
	events Publisher,
) *OrderService {
	return &OrderService{
		DB:       db,
		Repo:     repo,
		SeqRepo:  seqRepo,
		UserRepo: userRepo,
		fx:       newEffects(composer, notifier, events),
	}
}

// ----- DTOs from Controller -----
type OrderItemIn struct {
	ProductID uint `json:"productId"`
	Qty       int  `json:"qty"`
}

type PaymentIn struct {
	Method string `json:"method"`
	Detail string `json:"detail"`
}

type CreateOrderInput struct {
	Items      []OrderItemIn `json:"items"`
	Payment    PaymentIn     `json:"payment"`
	PickUpDate string        `json:"pickUpDate"`
	Notes      string        `json:"notes"`
}

// asAppErr keeps classified errors and hides the rest behind Internal.
func asAppErr(err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	return apperr.Internal(err)
}

// ----- Create -----
func (s *OrderService) Create(ctx context.Context, buyerID uint, in CreateOrderInput) (*entity.Order, error) {
	if len(in.Items) == 0 {
		return nil, apperr.Validation("No order items")
	}
	plan, err := entity.ParsePaymentPlan(in.Payment.Method, in.Payment.Detail)
	if err != nil {
		return nil, apperr.Validation(err.Error())
	}
	slot := entity.PickupSlot(in.PickUpDate)
	if !slot.Valid() {
		return nil, apperr.Validation("Pickup must be Morning or Afternoon")
	}

	order := entity.Order{
		UserID:     buyerID,
		PickupSlot: slot,
		Notes:      strings.TrimSpace(in.Notes),
		Status:     entity.OrderPending,
		Payment:    entity.NewPayment(plan),
	}

	// ราคา + เลข order + insert อยู่ใน tx เดียว; ใช้ tx เท่านั้น (sqlite มี conn เดียว)
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		items := make([]entity.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			p, err := s.Repo.GetProductBasics(tx, it.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound(fmt.Sprintf("Product not found : %d", it.ProductID))
				}
				return fmt.Errorf("load product %d: %w", it.ProductID, err)
			}
			if it.Qty <= 0 {
				return apperr.Validation("Quantity must be one or more")
			}
			item := entity.OrderItem{ProductID: p.ID, Qty: it.Qty, UnitPrice: p.Price}
			total = total.Add(item.LineTotal())
			items = append(items, item)
		}

		n, err := s.SeqRepo.Next(tx, entity.OrderNumberSeq)
		if err != nil {
			return fmt.Errorf("next order number: %w", err)
		}
		order.OrderNumber = n
		order.TotalAmount = total
		order.Items = items
		return s.Repo.CreateOrder(tx, &order)
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			slog.Error("create order failed", "buyer", buyerID, "error", err)
		}
		return nil, asAppErr(err)
	}

	if buyer, err := s.UserRepo.FindByID(ctx, buyerID); err != nil {
		slog.Warn("order mail skipped: buyer not loaded", "order", order.Ref(), "error", err)
	} else {
		m, err := s.fx.composer.OrderConfirmed(buyer.FullName, buyer.Email, order)
		s.fx.send("order_confirmed", m, err)
	}
	s.fx.events.Publish(entity.Activity{
		Type:      entity.ActivityOrder,
		Title:     "New order placed: " + order.Ref(),
		Timestamp: order.CreatedAt,
	})
	return &order, nil
}

// ----- Status -----

// UpdateStatus accepts any status in the enum; there is no transition table.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, status string) (*entity.Order, error) {
	st, ok := entity.ParseOrderStatus(status)
	if !ok {
		return nil, apperr.Validation("Status must be one of Pending, Ready, Confirmed, Approved, Declined")
	}

	if _, err := s.Repo.GetOrder(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Order not found")
		}
		return nil, apperr.Internal(err)
	}
	if err := s.Repo.UpdateStatus(ctx, orderID, st); err != nil {
		return nil, apperr.Internal(fmt.Errorf("update order %d: %w", orderID, err))
	}

	o, err := s.Repo.GetOrderWithBuyer(ctx, orderID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if o.User != nil {
		m, err := s.fx.composer.OrderStatusChanged(o.User.FullName, o.User.Email, *o)
		s.fx.send("order_status", m, err)
	}
	s.fx.events.Publish(entity.Activity{
		Type:      entity.ActivityOrder,
		Title:     fmt.Sprintf("Order %s marked %s", o.Ref(), o.Status),
		Timestamp: o.UpdatedAt,
	})
	return o, nil
}

// ----- List -----

// List returns every order newest first. Unpaginated.
func (s *OrderService) List(ctx context.Context) ([]entity.OrderView, error) {
	orders, err := s.Repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	out := make([]entity.OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.View())
	}
	return out, nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	orders, err := s.Repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return orders, nil
}
