package entity

import "github.com/shopspring/decimal"

type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"-"`
	ProductID uint            `gorm:"not null;index" json:"productId"`
	Qty       int             `gorm:"not null" json:"qty"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unitPrice"` // catalog price when ordered

	Product *Product `json:"product,omitempty"` // preload เฉพาะตอน list
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Qty)))
}
