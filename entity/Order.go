package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Order struct {
	Base
	OrderNumber int64           `gorm:"uniqueIndex;not null" json:"orderId"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalAmount"`
	PickupSlot  PickupSlot      `gorm:"type:varchar(16);not null" json:"pickUpDate"`
	Notes       string          `gorm:"type:text" json:"notes,omitempty"`
	Status      OrderStatus     `gorm:"type:varchar(16);not null;default:Pending;index" json:"status"`
	Payment     Payment         `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`

	UserID uint  `gorm:"not null;index" json:"userId"`
	User   *User `json:"-"` // preload เฉพาะตอนต้องการ buyer

	Items []OrderItem `json:"items"`
}

// Ref is the human-facing order number used in mails and the admin UI.
func (o Order) Ref() string {
	return fmt.Sprintf("ORD-%d", o.OrderNumber)
}

// OrderView is an order with its buyer projected to contact fields.
type OrderView struct {
	Order
	Buyer *Contact `json:"user,omitempty"`
}

func (o Order) View() OrderView {
	v := OrderView{Order: o}
	if o.User != nil {
		c := o.User.Contact()
		v.Buyer = &c
	}
	return v
}
